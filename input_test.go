package lightrig

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestHandleKeySelectionKeys(t *testing.T) {
	c := NewController(newTestLights(3, 2, 1))

	c.HandleKey(glfw.Key1, 0, glfw.Press, 0)
	assert.Equal(t, LightPoint, c.ActiveLightType())

	c.HandleKey(glfw.KeyRight, 0, glfw.Press, 0)
	c.HandleKey(glfw.KeyRight, 0, glfw.Press, 0)
	assert.Equal(t, 2, c.Selection().Index(LightPoint))

	c.HandleKey(glfw.KeyLeft, 0, glfw.Press, 0)
	assert.Equal(t, 1, c.Selection().Index(LightPoint))

	c.HandleKey(glfw.Key2, 0, glfw.Press, 0)
	assert.Equal(t, LightSpot, c.ActiveLightType())
	c.HandleKey(glfw.Key2, 0, glfw.Press, 0)
	assert.Equal(t, LightNone, c.ActiveLightType())

	c.HandleKey(glfw.Key3, 0, glfw.Press, 0)
	assert.Equal(t, LightDirectional, c.ActiveLightType())
}

func TestHandleKeyPressOnlyActionsIgnoreRepeat(t *testing.T) {
	c := NewController(newTestLights(3, 0, 0))
	c.HandleKey(glfw.Key1, 0, glfw.Repeat, 0)
	assert.Equal(t, LightNone, c.ActiveLightType())

	c.HandleKey(glfw.Key1, 0, glfw.Press, 0)
	c.HandleKey(glfw.Key1, 0, glfw.Release, 0)
	c.HandleKey(glfw.KeyRight, 0, glfw.Repeat, 0)
	assert.Equal(t, LightPoint, c.ActiveLightType())
	assert.Equal(t, 0, c.Selection().Index(LightPoint))
}

func TestHandleKeyMovementFiresOnRepeat(t *testing.T) {
	lights := newTestLights(1, 0, 0)
	c := NewController(lights)
	c.UpdateDeltaTime(0.1)
	c.HandleKey(glfw.Key1, 0, glfw.Press, 0)

	// Initial press does not move.
	c.HandleKey(glfw.KeyU, 0, glfw.Press, 0)
	assertVec(t, mgl32.Vec3{0, 0, 0}, lights.Point[0].Position)

	for i := 0; i < 4; i++ {
		c.HandleKey(glfw.KeyU, 0, glfw.Repeat, 0)
	}
	assertVec(t, mgl32.Vec3{0, 2, 0}, lights.Point[0].Position)

	moves := map[glfw.Key]mgl32.Vec3{
		glfw.KeyO: {0, -0.5, 0},
		glfw.KeyI: {0, 0, 0.5},
		glfw.KeyK: {0, 0, -0.5},
		glfw.KeyJ: {0.5, 0, 0},
		glfw.KeyL: {-0.5, 0, 0},
	}
	for key, delta := range moves {
		before := lights.Point[0].Position
		c.HandleKey(key, 0, glfw.Repeat, 0)
		assertVec(t, before.Add(delta), lights.Point[0].Position)
	}
}

func TestHandleKeyToggleStateAndTimeOfDay(t *testing.T) {
	lights := newTestLights(1, 0, 0)
	c := NewController(lights)

	c.HandleKey(glfw.Key1, 0, glfw.Press, 0)
	c.HandleKey(glfw.KeyP, 0, glfw.Press, 0)
	assert.False(t, lights.Point[0].Enabled)

	c.HandleKey(glfw.KeyT, 0, glfw.Press, 0)
	assert.Equal(t, Midday, c.TimeOfDay())
}

func TestHandleKeyUnboundKeyIsIgnored(t *testing.T) {
	c := NewController(newTestLights(1, 1, 1))
	c.HandleKey(glfw.KeyZ, 0, glfw.Press, glfw.ModShift)
	assert.Equal(t, Selection{}, c.Selection())
}

func TestHandleKeyCustomKeymap(t *testing.T) {
	km := DefaultKeymap()
	assert.NoError(t, km.Rebind("select_point", "f1"))

	c := NewController(newTestLights(1, 0, 0), WithKeymap(km))
	c.HandleKey(glfw.Key1, 0, glfw.Press, 0)
	assert.Equal(t, LightNone, c.ActiveLightType())
	c.HandleKey(glfw.KeyF1, 0, glfw.Press, 0)
	assert.Equal(t, LightPoint, c.ActiveLightType())
}
