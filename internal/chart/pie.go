package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// startOffset rotates slice zero to 12 o'clock. Angles grow clockwise.
const startOffset = -90.0

// donutHoleRatio is the inner radius of a donut as a fraction of the
// outer one.
const donutHoleRatio = 0.5

// Slice is the angular span in degrees allocated to one datum,
// proportional to its value's share of the total.
type Slice struct {
	Datum Datum
	Start float64
	End   float64
}

// Contains reports whether the angle in degrees falls inside the slice.
// The angle must use the same -90 offset convention as Slices.
func (s Slice) Contains(angle float64) bool {
	return angle >= s.Start && angle < s.End
}

// Slices maps data to contiguous slice angles. The first slice starts at
// -90 degrees, each slice's end equals the next slice's start, and the
// final end equals the first start plus 360.
//
// When the total is not positive, or any value is negative, there is no
// meaningful share to hand out and the result is empty.
func Slices(data []Datum) []Slice {
	total := Total(data)
	if total <= 0 {
		return nil
	}
	for _, d := range data {
		if d.Value < 0 {
			return nil
		}
	}

	slices := make([]Slice, 0, len(data))
	var prefix float64
	for _, d := range data {
		start := startOffset + 360*prefix/total
		prefix += d.Value
		end := startOffset + 360*prefix/total
		slices = append(slices, Slice{Datum: d, Start: start, End: end})
	}
	return slices
}

// Pie renders data as a circular chart on a cell grid, assigning each
// cell to a slice by angle test. Cells are painted two columns per row
// of radius to compensate for the terminal cell aspect ratio.
type Pie struct {
	data   []Datum
	radius int
	donut  bool
	legend bool
	colors []lipgloss.Color
}

// NewPie creates a pie chart over the given data.
func NewPie(data ...Datum) *Pie {
	return &Pie{
		data:   data,
		radius: 4,
		legend: true,
	}
}

// AsDonut cuts a hole in the middle of the chart.
func (p *Pie) AsDonut() *Pie {
	p.donut = true
	return p
}

// WithRadius sets the radius in rows, minimum 2.
func (p *Pie) WithRadius(radius int) *Pie {
	if radius >= 2 {
		p.radius = radius
	}
	return p
}

// WithLegend toggles the legend beside the chart.
func (p *Pie) WithLegend(show bool) *Pie {
	p.legend = show
	return p
}

// WithColors replaces the slice colour cycle.
func (p *Pie) WithColors(colors ...lipgloss.Color) *Pie {
	if len(colors) > 0 {
		p.colors = colors
	}
	return p
}

// View renders the chart, or nothing when the data has no positive
// total.
func (p *Pie) View() string {
	slices := Slices(p.data)
	if len(slices) == 0 {
		return ""
	}

	colors := p.colors
	if len(colors) == 0 {
		colors = defaultColors
	}

	size := 2 * p.radius
	innerSq := 0.0
	if p.donut {
		innerSq = donutHoleRatio * donutHoleRatio
	}

	rows := make([]string, 0, size)
	for r := 0; r < size; r++ {
		var b strings.Builder
		y := (float64(r)+0.5)/float64(size)*2 - 1
		for c := 0; c < 2*size; c++ {
			x := (float64(c)+0.5)/float64(2*size)*2 - 1

			distSq := x*x + y*y
			if distSq > 1 || distSq < innerSq {
				b.WriteString(" ")
				continue
			}

			i := sliceAt(slices, angleDegrees(x, y))
			b.WriteString(lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Render("█"))
		}
		rows = append(rows, b.String())
	}

	circle := strings.Join(rows, "\n")
	if !p.legend {
		return circle
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, circle, "  ", p.legendView(colors))
}

// angleDegrees converts screen coordinates (y grows downward) to degrees
// in [-90, 270), clockwise with 12 o'clock at -90.
func angleDegrees(x, y float64) float64 {
	deg := math.Atan2(y, x) * 180 / math.Pi
	if deg < startOffset {
		deg += 360
	}
	return deg
}

// sliceAt falls back to the last slice so the angle exactly at the
// closing edge of the circle still paints.
func sliceAt(slices []Slice, angle float64) int {
	for i, s := range slices {
		if s.Contains(angle) {
			return i
		}
	}
	return len(slices) - 1
}

func (p *Pie) legendView(colors []lipgloss.Color) string {
	total := Total(p.data)

	lines := make([]string, 0, len(p.data))
	for i, d := range p.data {
		swatch := lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Render("█")
		label := d.Label
		if label == "" {
			label = d.ID
		}
		lines = append(lines, fmt.Sprintf("%s %s %.0f%%", swatch, label, d.Value/total*100))
	}
	return strings.Join(lines, "\n")
}
