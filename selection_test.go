package lightrig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionZeroValue(t *testing.T) {
	var s Selection
	kind, index, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, LightNone, kind)
	assert.Equal(t, 0, index)
	assert.False(t, s.Step(1, 3))
}

func TestSelectionSunIsNotSelectable(t *testing.T) {
	var s Selection
	s.Set(LightSun)
	assert.Equal(t, LightNone, s.Active())

	s.Set(LightPoint)
	s.Toggle(LightSun)
	assert.Equal(t, LightNone, s.Active())
	assert.Equal(t, 0, s.Index(LightSun))
}

func TestSelectionStepWraps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		size  int
		want  int
	}{
		{"forward", 0, 1, 3, 1},
		{"forward wrap", 2, 1, 3, 0},
		{"backward wrap", 0, -1, 3, 2},
		{"backward", 2, -1, 3, 1},
		{"single", 0, -1, 1, 0},
		{"large negative", 1, -7, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Selection{active: LightSpot}
			s.indices[1] = tt.start
			assert.True(t, s.Step(tt.delta, tt.size))
			assert.Equal(t, tt.want, s.Index(LightSpot))
		})
	}
}

func TestSelectionStepIgnoresEmpty(t *testing.T) {
	s := Selection{active: LightPoint}
	s.indices[0] = 4
	assert.False(t, s.Step(1, 0))
	assert.Equal(t, 4, s.Index(LightPoint))
}

func TestSelectionNormalize(t *testing.T) {
	s := Selection{active: LightDirectional}
	s.indices[2] = 5

	index, ok := s.Normalize(3)
	assert.True(t, ok)
	assert.Equal(t, 2, index)

	_, ok = s.Normalize(0)
	assert.False(t, ok)
}
