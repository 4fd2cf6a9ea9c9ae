package lightrig

import "github.com/go-gl/mathgl/mgl32"

type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Midday
	Evening
	Night
)

func (t TimeOfDay) String() string {
	switch t {
	case Morning:
		return "morning"
	case Midday:
		return "midday"
	case Evening:
		return "evening"
	case Night:
		return "night"
	}
	return "unknown"
}

// Next returns the following time of day, wrapping from Night to Morning.
func (t TimeOfDay) Next() TimeOfDay {
	switch t {
	case Morning:
		return Midday
	case Midday:
		return Evening
	case Evening:
		return Night
	}
	return Morning
}

type sunPreset struct {
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

var sunPresets = map[TimeOfDay]sunPreset{
	Morning: {
		Direction: mgl32.Vec3{1, -0.35, 0}.Normalize(),
		Color:     mgl32.Vec3{1.0, 0.8, 0.6},
		Intensity: 0.6,
	},
	Midday: {
		Direction: mgl32.Vec3{0.1, -1, -0.2}.Normalize(),
		Color:     mgl32.Vec3{1.0, 1.0, 0.95},
		Intensity: 1.0,
	},
	Evening: {
		Direction: mgl32.Vec3{-1, -0.3, 0}.Normalize(),
		Color:     mgl32.Vec3{1.0, 0.5, 0.3},
		Intensity: 0.5,
	},
	Night: {
		Direction: mgl32.Vec3{0, -1, 0.3}.Normalize(),
		Color:     mgl32.Vec3{0.2, 0.25, 0.4},
		Intensity: 0.1,
	},
}

func (l *DirectionalLight) apply(p sunPreset) {
	l.Direction = p.Direction
	l.Color = p.Color
	l.Intensity = p.Intensity
}
