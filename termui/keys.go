package termui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lightrig/lightrig"
)

// terminal key strings that differ from lightrig key names
var terminalToName = map[string]string{
	"=":      "equal",
	"+":      "equal",
	"-":      "minus",
	"_":      "minus",
	",":      "comma",
	".":      "period",
	" ":      "space",
	"esc":    "escape",
	"pgup":   "pageup",
	"pgdown": "pagedown",
}

var nameToTerminal = map[string]string{
	"equal":    "=",
	"minus":    "-",
	"comma":    ",",
	"period":   ".",
	"space":    " ",
	"escape":   "esc",
	"pageup":   "pgup",
	"pagedown": "pgdown",
}

// KeyFromTerminal maps a bubbletea key string onto the glfw key the
// controller's keymap uses.
func KeyFromTerminal(s string) (glfw.Key, bool) {
	if name, ok := terminalToName[s]; ok {
		return lightrig.KeyFromName(name)
	}
	// Shifted letters arrive upper-case.
	return lightrig.KeyFromName(strings.ToLower(s))
}

func terminalKey(k glfw.Key) string {
	name := lightrig.KeyName(k)
	if t, ok := nameToTerminal[name]; ok {
		return t
	}
	return name
}

type keyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Select []key.Binding
	Cycle  []key.Binding
	Move   []key.Binding
	Speed  []key.Binding
	Toggle []key.Binding
}

var actionHelp = map[lightrig.Action]string{
	lightrig.ActionSelectPoint:       "point lights",
	lightrig.ActionSelectSpot:        "spot lights",
	lightrig.ActionSelectDirectional: "directional lights",
	lightrig.ActionPrevious:          "previous",
	lightrig.ActionNext:              "next",
	lightrig.ActionMoveUp:            "up",
	lightrig.ActionMoveDown:          "down",
	lightrig.ActionMoveFront:         "front",
	lightrig.ActionMoveBack:          "back",
	lightrig.ActionMoveLeft:          "left",
	lightrig.ActionMoveRight:         "right",
	lightrig.ActionSpeedUp:           "faster",
	lightrig.ActionSpeedDown:         "slower",
	lightrig.ActionToggleState:       "on/off",
	lightrig.ActionCycleTimeOfDay:    "time of day",
}

func newKeyMap(km *lightrig.Keymap) keyMap {
	k := keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}

	bind := func(a lightrig.Action) key.Binding {
		glfwKey, ok := km.KeyFor(a)
		if !ok {
			return key.NewBinding(key.WithDisabled())
		}
		t := terminalKey(glfwKey)
		label := t
		if label == " " {
			label = "space"
		}
		return key.NewBinding(key.WithKeys(t), key.WithHelp(label, actionHelp[a]))
	}

	k.Select = []key.Binding{
		bind(lightrig.ActionSelectPoint),
		bind(lightrig.ActionSelectSpot),
		bind(lightrig.ActionSelectDirectional),
	}
	k.Cycle = []key.Binding{
		bind(lightrig.ActionPrevious),
		bind(lightrig.ActionNext),
	}
	k.Move = []key.Binding{
		bind(lightrig.ActionMoveUp),
		bind(lightrig.ActionMoveDown),
		bind(lightrig.ActionMoveFront),
		bind(lightrig.ActionMoveBack),
		bind(lightrig.ActionMoveLeft),
		bind(lightrig.ActionMoveRight),
	}
	k.Speed = []key.Binding{
		bind(lightrig.ActionSpeedUp),
		bind(lightrig.ActionSpeedDown),
	}
	k.Toggle = []key.Binding{
		bind(lightrig.ActionToggleState),
		bind(lightrig.ActionCycleTimeOfDay),
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, k.Select...)
	out = append(out, k.Cycle...)
	out = append(out, k.Toggle[0], k.Help, k.Quit)
	return out
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Select,
		k.Cycle,
		k.Move,
		append(append([]key.Binding{}, k.Speed...), k.Toggle...),
		{k.Help, k.Quit},
	}
}
