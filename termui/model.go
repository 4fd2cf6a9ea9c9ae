package termui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lightrig/lightrig"
)

const frameInterval = time.Second / 30

type frameMsg time.Time

// Model is the bubbletea model. Terminals report no key repeat, so each
// keystroke is delivered to the controller as a press followed by a repeat;
// bindings fire on whichever of the two they are registered for.
type Model struct {
	ctrl  *lightrig.Controller
	clock *lightrig.FrameClock
	keys  keyMap
	help  help.Model
	width int
}

func New(ctrl *lightrig.Controller) Model {
	return Model{
		ctrl:  ctrl,
		clock: lightrig.NewFrameClock(),
		keys:  newKeyMap(ctrl.Keymap()),
		help:  help.New(),
	}
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return frame()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.clock.Step(m.ctrl)
		return m, frame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if k, ok := KeyFromTerminal(msg.String()); ok {
			m.ctrl.HandleKey(k, 0, glfw.Press, 0)
			m.ctrl.HandleKey(k, 0, glfw.Repeat, 0)
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	lights := m.ctrl.Lights()
	status := m.ctrl.Status()

	b.WriteString(titleStyle.Render("lightrig"))
	b.WriteString("\n")

	section := func(kind lightrig.LightType, rows []string) {
		style := sectionStyle
		if status.Active == kind {
			style = activeSectionStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s lights (%d)", kind, len(rows))))
		b.WriteString("\n")
		if len(rows) == 0 {
			b.WriteString(rowStyle.Render("none"))
			b.WriteString("\n")
		}
		for i, row := range rows {
			line := fmt.Sprintf("  #%d %s", i+1, row)
			if status.Active == kind && status.HasLight && status.Index == i {
				line = selectedRowStyle.Render(fmt.Sprintf("› #%d %s", i+1, row))
			}
			b.WriteString(rowStyle.Render(line))
			b.WriteString("\n")
		}
	}

	var points, spots, dirs []string
	if lights != nil {
		for _, l := range lights.Point {
			points = append(points, positioned(l.Position, l.Enabled))
		}
		for _, l := range lights.Spot {
			spots = append(spots, positioned(l.Position, l.Enabled))
		}
		for _, l := range lights.Directional {
			dirs = append(dirs, directed(l.Direction, l.Enabled))
		}
	}
	section(lightrig.LightPoint, points)
	section(lightrig.LightSpot, spots)
	section(lightrig.LightDirectional, dirs)

	if lights != nil {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("sun (%s)", m.ctrl.TimeOfDay())))
		b.WriteString("\n")
		b.WriteString(rowStyle.Render("  " + directed(lights.Sun.Direction, lights.Sun.Enabled)))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(status.String()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func positioned(p mgl32.Vec3, enabled bool) string {
	return fmt.Sprintf("at (%6.2f, %6.2f, %6.2f) %s", p.X(), p.Y(), p.Z(), state(enabled))
}

func directed(d mgl32.Vec3, enabled bool) string {
	return fmt.Sprintf("dir (%5.2f, %5.2f, %5.2f) %s", d.X(), d.Y(), d.Z(), state(enabled))
}

func state(enabled bool) string {
	if enabled {
		return onStyle.Render("on")
	}
	return offStyle.Render("off")
}

// Run starts the terminal program and blocks until the user quits.
func Run(ctrl *lightrig.Controller, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(ctrl), opts...).Run()
	return err
}
