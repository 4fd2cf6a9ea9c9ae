package lightrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GPULight is the std140-friendly record a renderer uploads per light.
type GPULight struct {
	Position  [4]float32 // xyz, w=1 for positional lights and 0 for directional
	Direction [4]float32 // xyz, pad
	Color     [4]float32 // rgb, intensity
	Params    [4]float32 // range, cone_angle_cos, type, padding
}

// PackLights flattens the enabled lights in the set, sun last.
func PackLights(lights *Lights) []GPULight {
	if lights == nil {
		return nil
	}
	out := make([]GPULight, 0, len(lights.Point)+len(lights.Spot)+len(lights.Directional)+1)

	for _, l := range lights.Point {
		if !l.Enabled {
			continue
		}
		out = append(out, GPULight{
			Position: vec4(l.Position, 1),
			Color:    vec4(l.Color, l.Intensity),
			Params:   [4]float32{l.Range, 0, float32(LightPoint), 0},
		})
	}

	for _, l := range lights.Spot {
		if !l.Enabled {
			continue
		}
		cosAngle := float32(math.Cos(float64(l.ConeAngle) * math.Pi / 180.0 / 2.0))
		out = append(out, GPULight{
			Position:  vec4(l.Position, 1),
			Direction: vec4(l.Direction, 0),
			Color:     vec4(l.Color, l.Intensity),
			Params:    [4]float32{l.Range, cosAngle, float32(LightSpot), 0},
		})
	}

	for _, l := range lights.Directional {
		if !l.Enabled {
			continue
		}
		out = append(out, packDirectional(l, LightDirectional))
	}

	if lights.Sun.Enabled {
		out = append(out, packDirectional(lights.Sun, LightSun))
	}
	return out
}

func packDirectional(l DirectionalLight, kind LightType) GPULight {
	return GPULight{
		Direction: vec4(l.Direction, 0),
		Color:     vec4(l.Color, l.Intensity),
		Params:    [4]float32{0, 0, float32(kind), 0},
	}
}

func vec4(v mgl32.Vec3, w float32) [4]float32 {
	return [4]float32{v.X(), v.Y(), v.Z(), w}
}
