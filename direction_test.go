package lightrig

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestWorldBasisVectors(t *testing.T) {
	b := WorldBasis()
	expected := map[Direction]mgl32.Vec3{
		DirUp:    {0, 1, 0},
		DirDown:  {0, -1, 0},
		DirFront: {0, 0, 1},
		DirBack:  {0, 0, -1},
		DirLeft:  {1, 0, 0},
		DirRight: {-1, 0, 0},
	}
	for dir, v := range expected {
		t.Run(dir.String(), func(t *testing.T) {
			assertVec(t, v, b.Vector(dir))
		})
	}
	assertVec(t, mgl32.Vec3{}, b.Vector(Direction(99)))
}

func TestCameraBasisFollowsYaw(t *testing.T) {
	b := CameraBasis(0, 0)
	assertVec(t, mgl32.Vec3{0, 0, -1}, b.Front)
	assertVec(t, mgl32.Vec3{-1, 0, 0}, b.Left)
	assertVec(t, mgl32.Vec3{0, 1, 0}, b.Up)

	b = CameraBasis(90, 0)
	assertVec(t, mgl32.Vec3{1, 0, 0}, b.Front)
	assertVec(t, mgl32.Vec3{0, 0, -1}, b.Left)
}

func TestCameraBasisIgnoresPitch(t *testing.T) {
	level := CameraBasis(30, 0)
	tilted := CameraBasis(30, 45)
	assertVec(t, level.Front, tilted.Front)
	assertVec(t, level.Left, tilted.Left)

	straightDown := CameraBasis(0, -90)
	assertVec(t, mgl32.Vec3{0, 0, -1}, straightDown.Front)
}
