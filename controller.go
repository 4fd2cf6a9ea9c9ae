package lightrig

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultMovementSpeed float32 = 5.0
	MaxMovementSpeed     float32 = 10.0
	MinMovementSpeed     float32 = 0.0
	speedStep            float32 = 1.0
)

// Controller maps discrete key events onto selection and movement of the
// lights in a caller-owned Lights set. It is not safe for concurrent use;
// call it from the thread that dispatches input events.
type Controller struct {
	lights    *Lights
	selection Selection
	keymap    *Keymap
	basis     Basis
	logger    Logger

	movementSpeed float32
	deltaTime     float32
	timeOfDay     TimeOfDay
}

type Option func(*Controller)

func WithKeymap(k *Keymap) Option {
	return func(c *Controller) {
		if k != nil {
			c.keymap = k
		}
	}
}

func WithLogger(l Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithMovementSpeed(speed float32) Option {
	return func(c *Controller) { c.movementSpeed = clampSpeed(speed) }
}

func WithBasis(b Basis) Option {
	return func(c *Controller) { c.basis = b }
}

func NewController(lights *Lights, opts ...Option) *Controller {
	c := &Controller{
		lights:        lights,
		keymap:        DefaultKeymap(),
		basis:         WorldBasis(),
		logger:        NewNopLogger(),
		movementSpeed: DefaultMovementSpeed,
		timeOfDay:     Morning,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Lights() *Lights            { return c.lights }
func (c *Controller) Selection() Selection       { return c.selection }
func (c *Controller) ActiveLightType() LightType { return c.selection.Active() }
func (c *Controller) Keymap() *Keymap            { return c.keymap }
func (c *Controller) MovementSpeed() float32     { return c.movementSpeed }
func (c *Controller) DeltaTime() float32         { return c.deltaTime }
func (c *Controller) TimeOfDay() TimeOfDay       { return c.timeOfDay }
func (c *Controller) SetBasis(b Basis)           { c.basis = b }

func (c *Controller) SwitchToNext() {
	c.step(1)
}

func (c *Controller) SwitchToPrevious() {
	c.step(-1)
}

func (c *Controller) step(delta int) {
	kind := c.selection.Active()
	size := c.lights.Len(kind)
	if size == 0 {
		return
	}
	// Drop a stale index first so the step is relative to a valid position.
	c.selection.Normalize(size)
	if c.selection.Step(delta, size) {
		c.logger.Debugf("selected %s light %d/%d", kind, c.selection.Index(kind)+1, size)
	}
}

// SwitchLightType activates kind, or deselects if kind is already active.
func (c *Controller) SwitchLightType(kind LightType) {
	c.selection.Toggle(kind)
	c.logger.Debugf("active light type: %s", c.selection.Active())
}

func (c *Controller) SetActiveLightType(kind LightType) {
	c.selection.Set(kind)
	c.logger.Debugf("active light type: %s", c.selection.Active())
}

// TranslateCurrentLight moves the selected point or spot light one frame's
// worth of distance along dir. Directional lights have no position.
func (c *Controller) TranslateCurrentLight(dir Direction) {
	kind, index, ok := c.current()
	if !ok {
		return
	}

	delta := c.basis.Vector(dir).Mul(c.movementSpeed * c.deltaTime)

	var pos mgl32.Vec3
	switch kind {
	case LightPoint:
		l := &c.lights.Point[index]
		l.Translate(delta)
		pos = l.Position
	case LightSpot:
		l := &c.lights.Spot[index]
		l.Translate(delta)
		pos = l.Position
	default:
		return
	}
	if c.logger.DebugEnabled() {
		c.logger.Debugf("moved %s light %d %s to (%.2f, %.2f, %.2f)", kind, index, dir, pos.X(), pos.Y(), pos.Z())
	}
}

func (c *Controller) SwitchLightState() {
	kind, index, ok := c.current()
	if !ok {
		return
	}

	var enabled bool
	switch kind {
	case LightPoint:
		c.lights.Point[index].SwitchState()
		enabled = c.lights.Point[index].Enabled
	case LightSpot:
		c.lights.Spot[index].SwitchState()
		enabled = c.lights.Spot[index].Enabled
	case LightDirectional:
		c.lights.Directional[index].SwitchState()
		enabled = c.lights.Directional[index].Enabled
	}
	c.logger.Debugf("%s light %d enabled=%t", kind, index, enabled)
}

// UpdateDeltaTime records the duration of the last frame in seconds. It runs
// every frame and does not log.
func (c *Controller) UpdateDeltaTime(dt float32) {
	if dt < 0 {
		dt = 0
	}
	c.deltaTime = dt
}

func (c *Controller) IncreaseSpeed() {
	c.movementSpeed = clampSpeed(c.movementSpeed + speedStep)
	c.logger.Debugf("movement speed: %.0f", c.movementSpeed)
}

func (c *Controller) DecreaseSpeed() {
	c.movementSpeed = clampSpeed(c.movementSpeed - speedStep)
	c.logger.Debugf("movement speed: %.0f", c.movementSpeed)
}

// SwitchTimeOfDay advances the sun to the next preset.
func (c *Controller) SwitchTimeOfDay() {
	c.timeOfDay = c.timeOfDay.Next()
	if c.lights != nil {
		c.lights.Sun.apply(sunPresets[c.timeOfDay])
	}
	c.logger.Debugf("time of day: %s", c.timeOfDay)
}

// current resolves the selection against the live collection sizes.
func (c *Controller) current() (LightType, int, bool) {
	kind := c.selection.Active()
	size := c.lights.Len(kind)
	if size == 0 {
		return LightNone, 0, false
	}
	index, ok := c.selection.Normalize(size)
	return kind, index, ok
}

func clampSpeed(speed float32) float32 {
	if speed > MaxMovementSpeed {
		return MaxMovementSpeed
	}
	if speed < MinMovementSpeed {
		return MinMovementSpeed
	}
	return speed
}
