package lightrig

import (
	"time"
)

// FrameClock measures the time between successive frames.
type FrameClock struct {
	Time time.Time
	Dt   time.Duration

	now func() time.Time
}

func NewFrameClock() *FrameClock {
	return newFrameClock(time.Now)
}

func newFrameClock(now func() time.Time) *FrameClock {
	return &FrameClock{Time: now(), now: now}
}

// Tick advances the clock and returns the elapsed frame time. A clock that
// goes backwards yields zero rather than a negative duration.
func (c *FrameClock) Tick() time.Duration {
	now := c.now()
	c.Dt = now.Sub(c.Time)
	if c.Dt < 0 {
		c.Dt = 0
	}
	c.Time = now
	return c.Dt
}

// Step ticks the clock and forwards the frame time to ctrl.
func (c *FrameClock) Step(ctrl *Controller) time.Duration {
	dt := c.Tick()
	ctrl.UpdateDeltaTime(float32(dt.Seconds()))
	return dt
}
