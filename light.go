package lightrig

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type LightType uint32

const (
	LightNone LightType = iota
	LightPoint
	LightSpot
	LightDirectional
	LightSun
)

func (t LightType) String() string {
	switch t {
	case LightPoint:
		return "point"
	case LightSpot:
		return "spot"
	case LightDirectional:
		return "directional"
	case LightSun:
		return "sun"
	default:
		return "none"
	}
}

// PointLight emits in all directions from Position.
type PointLight struct {
	ID        uuid.UUID
	Position  mgl32.Vec3
	Color     mgl32.Vec3 // RGB
	Intensity float32
	Range     float32
	Enabled   bool
}

// SpotLight emits a cone along Direction.
type SpotLight struct {
	ID        uuid.UUID
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Range     float32
	ConeAngle float32 // Full cone angle in degrees
	Enabled   bool
}

// DirectionalLight has no position; only its direction matters.
type DirectionalLight struct {
	ID        uuid.UUID
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Enabled   bool
}

func NewPointLight(position mgl32.Vec3) PointLight {
	return PointLight{
		ID:        uuid.New(),
		Position:  position,
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: 1.0,
		Range:     10.0,
		Enabled:   true,
	}
}

func NewSpotLight(position, direction mgl32.Vec3) SpotLight {
	return SpotLight{
		ID:        uuid.New(),
		Position:  position,
		Direction: normalizeOr(direction, mgl32.Vec3{0, -1, 0}),
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: 1.0,
		Range:     15.0,
		ConeAngle: 30.0,
		Enabled:   true,
	}
}

func NewDirectionalLight(direction mgl32.Vec3) DirectionalLight {
	return DirectionalLight{
		ID:        uuid.New(),
		Direction: normalizeOr(direction, mgl32.Vec3{1, -1, 0}.Normalize()),
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: 1.0,
		Enabled:   true,
	}
}

func (l *PointLight) Translate(delta mgl32.Vec3) { l.Position = l.Position.Add(delta) }
func (l *PointLight) SwitchState()              { l.Enabled = !l.Enabled }

func (l *SpotLight) Translate(delta mgl32.Vec3) { l.Position = l.Position.Add(delta) }
func (l *SpotLight) SwitchState()              { l.Enabled = !l.Enabled }

func (l *DirectionalLight) SwitchState() { l.Enabled = !l.Enabled }

// Lights is the caller-owned light set. The controller never caches the
// slices, so they may be appended to or truncated between callbacks.
type Lights struct {
	Point       []PointLight
	Spot        []SpotLight
	Directional []DirectionalLight
	Sun         DirectionalLight
}

// Len returns the size of the collection for kind. The sun is a single light
// and not a collection, so LightSun reports 0 like LightNone.
func (l *Lights) Len(kind LightType) int {
	if l == nil {
		return 0
	}
	switch kind {
	case LightPoint:
		return len(l.Point)
	case LightSpot:
		return len(l.Spot)
	case LightDirectional:
		return len(l.Directional)
	}
	return 0
}

// DefaultLights builds the demo rig used when no scene is configured.
func DefaultLights() *Lights {
	warm := NewPointLight(mgl32.Vec3{-4, 2, 0})
	warm.Color = mgl32.Vec3{1.0, 0.85, 0.7}

	cool := NewPointLight(mgl32.Vec3{4, 2, 0})
	cool.Color = mgl32.Vec3{0.7, 0.85, 1.0}

	fill := NewPointLight(mgl32.Vec3{0, 4, -4})
	fill.Intensity = 0.5

	stage := NewSpotLight(mgl32.Vec3{0, 6, 3}, mgl32.Vec3{0, -1, -0.5})
	back := NewSpotLight(mgl32.Vec3{0, 6, -6}, mgl32.Vec3{0, -1, 0.5})
	back.ConeAngle = 45

	key := NewDirectionalLight(mgl32.Vec3{-1, -1, -1})
	key.Intensity = 0.4

	lights := &Lights{
		Point:       []PointLight{warm, cool, fill},
		Spot:        []SpotLight{stage, back},
		Directional: []DirectionalLight{key},
		Sun:         NewDirectionalLight(mgl32.Vec3{1, -1, 0}),
	}
	lights.Sun.apply(sunPresets[Morning])
	return lights
}

func normalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return fallback
	}
	return v.Normalize()
}
