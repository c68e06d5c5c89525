package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{"midpoint", 50, 0, 100, 0.5},
		{"at minimum", 0, 0, 100, 0},
		{"at maximum", 100, 0, 100, 1},
		{"below range clamps to zero", -10, 0, 100, 0},
		{"above range clamps to one", 150, 0, 100, 1},
		{"shifted range", 15, 10, 20, 0.5},
		{"empty range", 5, 5, 5, 0},
		{"inverted range", 5, 10, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, Normalize(tt.value, tt.min, tt.max), 1e-9)
		})
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	min, max := MinMax([]float64{3, -1, 7, 0})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)

	min, max = MinMax([]float64{42})
	assert.Equal(t, 42.0, min)
	assert.Equal(t, 42.0, max)

	min, max = MinMax(nil)
	assert.Zero(t, min)
	assert.Zero(t, max)
}
