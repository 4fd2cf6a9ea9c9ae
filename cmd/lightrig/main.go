// Command lightrig moves scene lights around from the keyboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lightrig/lightrig"
	"github.com/lightrig/lightrig/termui"
)

func init() {
	// glfw must be driven from the main thread.
	runtime.LockOSThread()
}

var (
	version = "dev"

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

type options struct {
	configPath string
	debug      bool
}

func main() {
	if err := lightrig.LoadEnvFiles(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "lightrig",
		Short: "Keyboard controller for scene lights",
		Long: titleStyle.Render("lightrig") + `

Select point, spot and directional lights, switch them on and off and
move them around the scene from the keyboard.

` + dimStyle.Render("Use 'lightrig [command] --help' for more information."),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./lightrig.yaml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log every controller action")

	root.AddCommand(
		newWindowCmd(opts),
		newTUICmd(opts),
		newKeysCmd(opts),
		newConfigCmd(),
	)
	return root
}

type session struct {
	cfg    *lightrig.Config
	logger lightrig.Logger
	ctrl   *lightrig.Controller
}

// setup loads the config and builds the controller. A nil logger selects the
// console logger.
func setup(opts *options, logger lightrig.Logger) (*session, error) {
	cfg, err := lightrig.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		cfg.Debug = true
	}

	if logger == nil {
		logger = lightrig.NewDefaultLogger("lightrig", cfg.Debug)
	}

	keymap, err := cfg.Keymap()
	if err != nil {
		return nil, err
	}
	lights, err := cfg.Lights()
	if err != nil {
		return nil, err
	}

	ctrl := lightrig.NewController(lights,
		lightrig.WithKeymap(keymap),
		lightrig.WithLogger(logger),
		lightrig.WithMovementSpeed(cfg.MovementSpeed),
		lightrig.WithBasis(cfg.Basis()),
	)
	logger.Infof("loaded %d point, %d spot, %d directional lights",
		len(lights.Point), len(lights.Spot), len(lights.Directional))
	if cfg.Camera != nil {
		logger.Infof("moving along camera axes (yaw %.0f, pitch %.0f)", cfg.Camera.Yaw, cfg.Camera.Pitch)
	}

	return &session{cfg: cfg, logger: logger, ctrl: ctrl}, nil
}

func newWindowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Drive the controller from a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(opts, nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			win, err := lightrig.OpenWindow(s.cfg.Window, s.logger)
			if err != nil {
				return err
			}
			defer win.Close()

			if err := win.Run(ctx, s.ctrl); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Drive the controller from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Console logging would tear the alt screen.
			s, err := setup(opts, lightrig.NewNopLogger())
			if err != nil {
				return err
			}
			return termui.Run(s.ctrl, tea.WithAltScreen())
		},
	}
}

func newKeysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the effective key bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := lightrig.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			km, err := cfg.Keymap()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%-8s %-20s %s", "KEY", "ACTION", "TRIGGER")))
			for _, line := range km.Describe() {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "lightrig.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := lightrig.DefaultConfig().WriteFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	return cfgCmd
}
