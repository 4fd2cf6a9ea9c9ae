package lightrig

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Action int

const (
	ActionNone Action = iota
	ActionSelectPoint
	ActionSelectSpot
	ActionSelectDirectional
	ActionPrevious
	ActionNext
	ActionMoveUp
	ActionMoveDown
	ActionMoveFront
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionSpeedUp
	ActionSpeedDown
	ActionToggleState
	ActionCycleTimeOfDay
)

var actionNames = map[Action]string{
	ActionSelectPoint:       "select_point",
	ActionSelectSpot:        "select_spot",
	ActionSelectDirectional: "select_directional",
	ActionPrevious:          "previous",
	ActionNext:              "next",
	ActionMoveUp:            "move_up",
	ActionMoveDown:          "move_down",
	ActionMoveFront:         "move_front",
	ActionMoveBack:          "move_back",
	ActionMoveLeft:          "move_left",
	ActionMoveRight:         "move_right",
	ActionSpeedUp:           "speed_up",
	ActionSpeedDown:         "speed_down",
	ActionToggleState:       "toggle_state",
	ActionCycleTimeOfDay:    "cycle_time_of_day",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Trigger selects which glfw key action fires a binding.
type Trigger int

const (
	// OnPress fires once when the key goes down.
	OnPress Trigger = iota
	// OnRepeat fires for every auto-repeat event while the key is held.
	OnRepeat
)

func (t Trigger) String() string {
	if t == OnRepeat {
		return "repeat"
	}
	return "press"
}

func (t Trigger) matches(action glfw.Action) bool {
	switch t {
	case OnPress:
		return action == glfw.Press
	case OnRepeat:
		return action == glfw.Repeat
	}
	return false
}

type Binding struct {
	Key     glfw.Key
	Action  Action
	Trigger Trigger
}

// Keymap is an ordered binding table. Several bindings may share a key.
type Keymap struct {
	Bindings []Binding
}

func DefaultKeymap() *Keymap {
	return &Keymap{Bindings: []Binding{
		{glfw.Key1, ActionSelectPoint, OnPress},
		{glfw.Key2, ActionSelectSpot, OnPress},
		{glfw.Key3, ActionSelectDirectional, OnPress},
		{glfw.KeyLeft, ActionPrevious, OnPress},
		{glfw.KeyRight, ActionNext, OnPress},
		{glfw.KeyU, ActionMoveUp, OnRepeat},
		{glfw.KeyO, ActionMoveDown, OnRepeat},
		{glfw.KeyI, ActionMoveFront, OnRepeat},
		{glfw.KeyK, ActionMoveBack, OnRepeat},
		{glfw.KeyJ, ActionMoveLeft, OnRepeat},
		{glfw.KeyL, ActionMoveRight, OnRepeat},
		{glfw.KeyEqual, ActionSpeedUp, OnPress},
		{glfw.KeyMinus, ActionSpeedDown, OnPress},
		{glfw.KeyP, ActionToggleState, OnPress},
		{glfw.KeyT, ActionCycleTimeOfDay, OnPress},
	}}
}

// Lookup returns every action bound to key for the given glfw action, in
// table order.
func (k *Keymap) Lookup(key glfw.Key, action glfw.Action) []Action {
	var out []Action
	for _, b := range k.Bindings {
		if b.Key == key && b.Trigger.matches(action) {
			out = append(out, b.Action)
		}
	}
	return out
}

// KeyFor returns the first key bound to action.
func (k *Keymap) KeyFor(action Action) (glfw.Key, bool) {
	for _, b := range k.Bindings {
		if b.Action == action {
			return b.Key, true
		}
	}
	return glfw.KeyUnknown, false
}

// Rebind moves action to the named key, keeping its trigger.
func (k *Keymap) Rebind(actionName, keyName string) error {
	action, err := ParseAction(actionName)
	if err != nil {
		return err
	}
	key, ok := KeyFromName(keyName)
	if !ok {
		return fmt.Errorf("action %s: unknown key %q", action, keyName)
	}
	for i := range k.Bindings {
		if k.Bindings[i].Action == action {
			k.Bindings[i].Key = key
			return nil
		}
	}
	k.Bindings = append(k.Bindings, Binding{Key: key, Action: action, Trigger: defaultTrigger(action)})
	return nil
}

func defaultTrigger(a Action) Trigger {
	switch a {
	case ActionMoveUp, ActionMoveDown, ActionMoveFront, ActionMoveBack, ActionMoveLeft, ActionMoveRight:
		return OnRepeat
	}
	return OnPress
}

// Names returns action name -> key name for every binding, suitable for
// writing back into a config file.
func (k *Keymap) Names() map[string]string {
	out := make(map[string]string, len(k.Bindings))
	for _, b := range k.Bindings {
		out[b.Action.String()] = KeyName(b.Key)
	}
	return out
}

// Describe renders the table as aligned text lines sorted by action order.
func (k *Keymap) Describe() []string {
	bindings := append([]Binding(nil), k.Bindings...)
	sort.SliceStable(bindings, func(i, j int) bool { return bindings[i].Action < bindings[j].Action })
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("%-8s %-20s %s", KeyName(b.Key), b.Action, b.Trigger))
	}
	return lines
}

var keyNames = map[string]glfw.Key{
	"a":         glfw.KeyA,
	"b":         glfw.KeyB,
	"c":         glfw.KeyC,
	"d":         glfw.KeyD,
	"e":         glfw.KeyE,
	"f":         glfw.KeyF,
	"g":         glfw.KeyG,
	"h":         glfw.KeyH,
	"i":         glfw.KeyI,
	"j":         glfw.KeyJ,
	"k":         glfw.KeyK,
	"l":         glfw.KeyL,
	"m":         glfw.KeyM,
	"n":         glfw.KeyN,
	"o":         glfw.KeyO,
	"p":         glfw.KeyP,
	"q":         glfw.KeyQ,
	"r":         glfw.KeyR,
	"s":         glfw.KeyS,
	"t":         glfw.KeyT,
	"u":         glfw.KeyU,
	"v":         glfw.KeyV,
	"w":         glfw.KeyW,
	"x":         glfw.KeyX,
	"y":         glfw.KeyY,
	"z":         glfw.KeyZ,
	"0":         glfw.Key0,
	"1":         glfw.Key1,
	"2":         glfw.Key2,
	"3":         glfw.Key3,
	"4":         glfw.Key4,
	"5":         glfw.Key5,
	"6":         glfw.Key6,
	"7":         glfw.Key7,
	"8":         glfw.Key8,
	"9":         glfw.Key9,
	"space":     glfw.KeySpace,
	"enter":     glfw.KeyEnter,
	"escape":    glfw.KeyEscape,
	"tab":       glfw.KeyTab,
	"backspace": glfw.KeyBackspace,
	"insert":    glfw.KeyInsert,
	"delete":    glfw.KeyDelete,
	"right":     glfw.KeyRight,
	"left":      glfw.KeyLeft,
	"down":      glfw.KeyDown,
	"up":        glfw.KeyUp,
	"pageup":    glfw.KeyPageUp,
	"pagedown":  glfw.KeyPageDown,
	"home":      glfw.KeyHome,
	"end":       glfw.KeyEnd,
	"f1":        glfw.KeyF1,
	"f2":        glfw.KeyF2,
	"f3":        glfw.KeyF3,
	"f4":        glfw.KeyF4,
	"f5":        glfw.KeyF5,
	"f6":        glfw.KeyF6,
	"f7":        glfw.KeyF7,
	"f8":        glfw.KeyF8,
	"f9":        glfw.KeyF9,
	"f10":       glfw.KeyF10,
	"f11":       glfw.KeyF11,
	"f12":       glfw.KeyF12,
	"minus":     glfw.KeyMinus,
	"equal":     glfw.KeyEqual,
	"comma":     glfw.KeyComma,
	"period":    glfw.KeyPeriod,
	"kp_add":    glfw.KeyKPAdd,
	"kp_sub":    glfw.KeyKPSubtract,
}

// KeyFromName resolves a lowercase key name such as "p", "left" or "equal".
func KeyFromName(name string) (glfw.Key, bool) {
	key, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return key, ok
}

func KeyName(key glfw.Key) string {
	for name, k := range keyNames {
		if k == key {
			return name
		}
	}
	return fmt.Sprintf("key(%d)", int(key))
}
