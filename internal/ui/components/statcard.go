package components

import (
	"fmt"

	"github.com/curio-ui/curio/internal/ui"
)

// StatCard shows a single headline metric with an optional delta against
// the previous period. Dashboards arrange several side by side.
type StatCard struct {
	title string
	value string
	delta float64
	unit  string
}

// NewStatCard creates a stat card with the given title and formatted
// value.
func NewStatCard(title, value string) *StatCard {
	return &StatCard{
		title: title,
		value: value,
	}
}

// View renders the stat card.
func (s *StatCard) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stat card with the given theme context.
func (s *StatCard) ViewWithContext(ctx RenderContext) string {
	children := []ui.Renderable{
		CaptionText(s.title),
		NewText(s.value).WithAppliers(Typography(TypographyVariantTextLg)),
	}

	if s.delta != 0 {
		arrow := "▲"
		slot := PaletteSuccess
		if s.delta < 0 {
			arrow = "▼"
			slot = PaletteDanger
		}

		delta := fmt.Sprintf("%s %.1f%s", arrow, absFloat(s.delta), s.unit)
		children = append(children, NewText(delta).WithAppliers(Foreground(slot)))
	}

	card := NewCard(children...)
	return card.ViewWithContext(ctx)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// WithDelta sets the change against the previous period. Positive deltas
// render with an up arrow in the success colour, negative ones with a
// down arrow in the danger colour.
func (s *StatCard) WithDelta(delta float64, unit string) *StatCard {
	s.delta = delta
	s.unit = unit
	return s
}

// Title returns the stat title.
func (s *StatCard) Title() string {
	return s.title
}

// Value returns the formatted value.
func (s *StatCard) Value() string {
	return s.value
}
