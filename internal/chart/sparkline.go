package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Point is a coordinate inside a sparkline view box. X grows rightward,
// Y grows downward, so the largest value maps to Y = 0.
type Point struct {
	X float64
	Y float64
}

// SparklinePoints maps values into a width by height box: x spreads the
// indices evenly across the width (a single value sits centered), y is
// the inverse-normalized value as a fraction of the height. A flat
// series sits on the bottom edge, the empty-range fallback.
func SparklinePoints(values []float64, width, height float64) []Point {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return nil
	}

	min, max := MinMax(values)

	points := make([]Point, 0, len(values))
	for i, v := range values {
		frac := 0.5
		if len(values) > 1 {
			frac = float64(i) / float64(len(values)-1)
		}
		points = append(points, Point{
			X: frac * width,
			Y: (1 - Normalize(v, min, max)) * height,
		})
	}
	return points
}

var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a value series as a single row of block glyphs, one
// glyph per value.
type Sparkline struct {
	values []float64
	color  lipgloss.Color
}

// NewSparkline creates a sparkline over the given values.
func NewSparkline(values ...float64) *Sparkline {
	return &Sparkline{values: values}
}

// WithColor sets the glyph colour.
func (s *Sparkline) WithColor(color lipgloss.Color) *Sparkline {
	s.color = color
	return s
}

// View renders the sparkline, or nothing for an empty series.
func (s *Sparkline) View() string {
	if len(s.values) == 0 {
		return ""
	}

	min, max := MinMax(s.values)

	var b strings.Builder
	for _, v := range s.values {
		level := int(Normalize(v, min, max)*float64(len(sparkGlyphs)-1) + 0.5)
		b.WriteRune(sparkGlyphs[level])
	}

	out := b.String()
	if s.color != "" {
		out = lipgloss.NewStyle().Foreground(s.color).Render(out)
	}
	return out
}
