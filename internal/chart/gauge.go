package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Threshold colours for the default gauge treatment: calm up to 60%,
// caution up to 85%, alarm beyond.
var (
	gaugeCalm    = lipgloss.Color("#22c55e")
	gaugeCaution = lipgloss.Color("#eab308")
	gaugeAlarm   = lipgloss.Color("#ef4444")
)

// Gauge renders a value within a range as a filled track with a
// percentage readout.
type Gauge struct {
	value float64
	min   float64
	max   float64
	width int
	label string
	color lipgloss.Color
}

// NewGauge creates a gauge for value within [min, max].
func NewGauge(value, min, max float64) *Gauge {
	return &Gauge{
		value: value,
		min:   min,
		max:   max,
		width: 20,
	}
}

// WithWidth sets the track width in cells, minimum 4.
func (g *Gauge) WithWidth(width int) *Gauge {
	if width >= 4 {
		g.width = width
	}
	return g
}

// WithLabel prefixes the gauge with a label.
func (g *Gauge) WithLabel(label string) *Gauge {
	g.label = label
	return g
}

// WithColor pins the fill colour instead of the ratio thresholds.
func (g *Gauge) WithColor(color lipgloss.Color) *Gauge {
	g.color = color
	return g
}

// Ratio returns the value normalized into [0, 1]. An empty range maps
// to 0.
func (g *Gauge) Ratio() float64 {
	return Normalize(g.value, g.min, g.max)
}

// SetValue updates the gauge value.
func (g *Gauge) SetValue(value float64) *Gauge {
	g.value = value
	return g
}

// View renders the track and percentage.
func (g *Gauge) View() string {
	ratio := g.Ratio()
	filled := int(ratio*float64(g.width) + 0.5)

	color := g.color
	if color == "" {
		switch {
		case ratio < 0.6:
			color = gaugeCalm
		case ratio < 0.85:
			color = gaugeCaution
		default:
			color = gaugeAlarm
		}
	}

	track := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		strings.Repeat("░", g.width-filled)

	out := fmt.Sprintf("[%s] %3.0f%%", track, ratio*100)
	if g.label != "" {
		out = g.label + " " + out
	}
	return out
}
