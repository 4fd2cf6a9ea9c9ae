package lightrig

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window used purely as a key event source. No graphics
// context is created; a renderer may attach its own surface to Handle().
type Window struct {
	win    *glfw.Window
	title  string
	logger Logger
}

// OpenWindow initialises glfw and creates the window. It must run on the main
// thread, and Close must be called to terminate glfw.
func OpenWindow(cfg WindowConfig, logger Logger) (*Window, error) {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.Title == "" {
		cfg.Title = "lightrig"
	}
	if logger == nil {
		logger = NewNopLogger()
	}

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	logger.Infof("opened %dx%d window %q", cfg.Width, cfg.Height, cfg.Title)

	return &Window{win: win, title: cfg.Title, logger: logger}, nil
}

func (w *Window) Handle() *glfw.Window { return w.win }

// Run feeds key events and frame times to ctrl until the window is closed or
// ctx is cancelled. The title shows the controller status.
func (w *Window) Run(ctx context.Context, ctrl *Controller) error {
	w.win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
			return
		}
		ctrl.KeyCallback(win, key, scancode, action, mods)
	})

	clock := NewFrameClock()
	last := ""
	for !w.win.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		glfw.WaitEventsTimeout(1.0 / 60.0)
		clock.Step(ctrl)

		if status := ctrl.Status().String(); status != last {
			w.win.SetTitle(w.title + " | " + status)
			w.logger.Debugf("status: %s", status)
			last = status
		}
	}
	w.logger.Infof("window closed")
	return nil
}

func (w *Window) Close() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
