package lightrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirFront
	DirBack
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirFront:
		return "front"
	case DirBack:
		return "back"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Basis holds the positive axis for each direction pair. Down, Back and Right
// are the negations of Up, Front and Left.
type Basis struct {
	Left  mgl32.Vec3
	Up    mgl32.Vec3
	Front mgl32.Vec3
}

// WorldBasis moves lights along fixed scene axes.
func WorldBasis() Basis {
	return Basis{
		Left:  mgl32.Vec3{1, 0, 0},
		Up:    mgl32.Vec3{0, 1, 0},
		Front: mgl32.Vec3{0, 0, 1},
	}
}

// CameraBasis derives movement axes from a Y-up camera pose given in degrees.
// Front follows the view direction projected onto the ground plane so that
// pitch does not lift the light when moving forward.
func CameraBasis(yaw, pitch float32) Basis {
	yawRad := float64(mgl32.DegToRad(yaw))
	pitchRad := float64(mgl32.DegToRad(pitch))

	forward := mgl32.Vec3{
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(-math.Cos(yawRad) * math.Cos(pitchRad)),
	}
	up := mgl32.Vec3{0, 1, 0}

	flat := mgl32.Vec3{forward.X(), 0, forward.Z()}
	if flat.Len() < 1e-6 {
		// Looking straight up or down; fall back to yaw alone.
		flat = mgl32.Vec3{float32(math.Sin(yawRad)), 0, float32(-math.Cos(yawRad))}
	}
	flat = flat.Normalize()
	right := flat.Cross(up).Normalize()

	return Basis{
		Left:  right.Mul(-1),
		Up:    up,
		Front: flat,
	}
}

// Vector returns the unit vector for d.
func (b Basis) Vector(d Direction) mgl32.Vec3 {
	switch d {
	case DirUp:
		return b.Up
	case DirDown:
		return b.Up.Mul(-1)
	case DirFront:
		return b.Front
	case DirBack:
		return b.Front.Mul(-1)
	case DirLeft:
		return b.Left
	case DirRight:
		return b.Left.Mul(-1)
	}
	return mgl32.Vec3{}
}
