package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarChart renders data as horizontal bars scaled against the largest
// value, one row per datum with the label in a fixed column.
type BarChart struct {
	data       []Datum
	width      int
	showValues bool
	colors     []lipgloss.Color
}

// NewBarChart creates a bar chart over the given data.
func NewBarChart(data ...Datum) *BarChart {
	return &BarChart{
		data:       data,
		width:      24,
		showValues: true,
	}
}

// WithWidth sets the bar track width in cells, minimum 1.
func (b *BarChart) WithWidth(width int) *BarChart {
	if width >= 1 {
		b.width = width
	}
	return b
}

// WithValues toggles the numeric value after each bar.
func (b *BarChart) WithValues(show bool) *BarChart {
	b.showValues = show
	return b
}

// WithColors replaces the bar colour cycle.
func (b *BarChart) WithColors(colors ...lipgloss.Color) *BarChart {
	if len(colors) > 0 {
		b.colors = colors
	}
	return b
}

// View renders the chart, or nothing when no value is positive.
func (b *BarChart) View() string {
	values := make([]float64, 0, len(b.data))
	for _, d := range b.data {
		values = append(values, d.Value)
	}
	_, max := MinMax(values)
	if max <= 0 {
		return ""
	}

	colors := b.colors
	if len(colors) == 0 {
		colors = defaultColors
	}

	labelWidth := 0
	for _, d := range b.data {
		if n := len([]rune(d.Label)); n > labelWidth {
			labelWidth = n
		}
	}

	lines := make([]string, 0, len(b.data))
	for i, d := range b.data {
		filled := int(Normalize(d.Value, 0, max)*float64(b.width) + 0.5)
		bar := lipgloss.NewStyle().
			Foreground(colors[i%len(colors)]).
			Render(strings.Repeat("█", filled))

		line := fmt.Sprintf("%-*s %s", labelWidth, d.Label, bar)
		if b.showValues {
			line += fmt.Sprintf(" %g", d.Value)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
