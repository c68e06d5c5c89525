// Package chart computes renderable geometry for simple terminal data
// visualizations: pie and donut slice angles, gauge normalization and
// sparkline point mapping, plus lipgloss renderers built on top. The
// geometry helpers are pure functions of their input; derived
// quantities are recomputed on every call, never cached.
//
// All chart types share one zero-data policy: when the data has no
// positive total, or the value range is empty, geometry helpers return
// empty results and renderers draw nothing rather than divide by zero.
package chart

import (
	"github.com/charmbracelet/lipgloss"
)

// Datum is one value in a chart data set.
type Datum struct {
	ID    string
	Label string
	Value float64
}

// Total sums the datum values.
func Total(data []Datum) float64 {
	var total float64
	for _, d := range data {
		total += d.Value
	}
	return total
}

// defaultColors cycles through the shade-500 colours of the default
// theme palette, ordered so neighbouring slices contrast.
var defaultColors = []lipgloss.Color{
	"#3b82f6", // blue
	"#22c55e", // green
	"#f97316", // orange
	"#a855f7", // purple
	"#eab308", // yellow
	"#06b6d4", // cyan
	"#ef4444", // red
}
