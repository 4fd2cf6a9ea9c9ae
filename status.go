package lightrig

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Status is a snapshot for HUDs and window titles. Lit counts the lights a
// renderer would receive from PackLights.
type Status struct {
	Active    LightType
	Index     int
	Count     int
	Speed     float32
	TimeOfDay TimeOfDay
	Lit       int

	// Set only when a light is selected.
	HasLight    bool
	HasPosition bool
	Position    mgl32.Vec3
	Enabled     bool
}

// Status reports the controller state without modifying it. A stale index is
// resolved against the live collection the same way the next key event will.
func (c *Controller) Status() Status {
	s := Status{
		Active:    c.selection.Active(),
		Speed:     c.movementSpeed,
		TimeOfDay: c.timeOfDay,
		Lit:       len(PackLights(c.lights)),
	}
	s.Count = c.lights.Len(s.Active)
	if s.Count == 0 {
		return s
	}

	sel := c.selection
	index, ok := sel.Normalize(s.Count)
	if !ok {
		return s
	}
	s.Index = index
	s.HasLight = true
	switch s.Active {
	case LightPoint:
		l := c.lights.Point[index]
		s.HasPosition, s.Position, s.Enabled = true, l.Position, l.Enabled
	case LightSpot:
		l := c.lights.Spot[index]
		s.HasPosition, s.Position, s.Enabled = true, l.Position, l.Enabled
	case LightDirectional:
		s.Enabled = c.lights.Directional[index].Enabled
	}
	return s
}

func (s Status) String() string {
	head := fmt.Sprintf("speed %.0f | %s | %d lit", s.Speed, s.TimeOfDay, s.Lit)
	if s.Active == LightNone {
		return "no selection | " + head
	}
	if !s.HasLight {
		return fmt.Sprintf("%s: empty | %s", s.Active, head)
	}
	state := "off"
	if s.Enabled {
		state = "on"
	}
	sel := fmt.Sprintf("%s %d/%d [%s]", s.Active, s.Index+1, s.Count, state)
	if s.HasPosition {
		sel += fmt.Sprintf(" at (%.2f, %.2f, %.2f)", s.Position.X(), s.Position.Y(), s.Position.Z())
	}
	return sel + " | " + head
}
