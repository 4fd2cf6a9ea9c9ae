package lightrig

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// HandleKey runs every action the keymap binds to key for this glfw action.
// Scancode and modifiers are accepted to match the glfw callback but are not
// used for matching.
func (c *Controller) HandleKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	for _, a := range c.keymap.Lookup(key, action) {
		c.Perform(a)
	}
}

// KeyCallback has the glfw.KeyCallback signature.
func (c *Controller) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	c.HandleKey(key, scancode, action, mods)
}

func (c *Controller) Perform(a Action) {
	switch a {
	case ActionSelectPoint:
		c.SwitchLightType(LightPoint)
	case ActionSelectSpot:
		c.SwitchLightType(LightSpot)
	case ActionSelectDirectional:
		c.SwitchLightType(LightDirectional)
	case ActionPrevious:
		c.SwitchToPrevious()
	case ActionNext:
		c.SwitchToNext()
	case ActionMoveUp:
		c.TranslateCurrentLight(DirUp)
	case ActionMoveDown:
		c.TranslateCurrentLight(DirDown)
	case ActionMoveFront:
		c.TranslateCurrentLight(DirFront)
	case ActionMoveBack:
		c.TranslateCurrentLight(DirBack)
	case ActionMoveLeft:
		c.TranslateCurrentLight(DirLeft)
	case ActionMoveRight:
		c.TranslateCurrentLight(DirRight)
	case ActionSpeedUp:
		c.IncreaseSpeed()
	case ActionSpeedDown:
		c.DecreaseSpeed()
	case ActionToggleState:
		c.SwitchLightState()
	case ActionCycleTimeOfDay:
		c.SwitchTimeOfDay()
	}
}
