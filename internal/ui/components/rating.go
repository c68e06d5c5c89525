package components

import (
	"fmt"
	"strings"
)

// Rating renders a star rating out of a fixed maximum, optionally with
// the numeric value and a review count alongside.
type Rating struct {
	BaseComponent
	value     float64
	outOf     int
	count     int
	showValue bool
}

// NewRating creates a rating display for the given value out of 5.
func NewRating(value float64) *Rating {
	return &Rating{
		BaseComponent: NewBaseComponent(),
		value:         value,
		outOf:         5,
	}
}

// View renders the rating.
func (r *Rating) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the rating with the given theme context.
func (r *Rating) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	filled := int(r.value + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > r.outOf {
		filled = r.outOf
	}

	stars := strings.Repeat("★", filled) + strings.Repeat("☆", r.outOf-filled)

	starStyle := Foreground(PaletteAccent)(r.ComputeStyle(theme), theme)
	out := starStyle.Render(stars)

	if r.showValue {
		out += " " + TypographyStyle(theme, TypographyVariantCaption).Render(fmt.Sprintf("%.1f", r.value))
	}
	if r.count > 0 {
		out += " " + TypographyStyle(theme, TypographyVariantCaption).Render(fmt.Sprintf("(%d)", r.count))
	}

	return out
}

// WithOutOf sets the maximum number of stars.
func (r *Rating) WithOutOf(outOf int) *Rating {
	if outOf > 0 {
		r.outOf = outOf
	}
	return r
}

// WithCount sets the review count shown after the stars.
func (r *Rating) WithCount(count int) *Rating {
	r.count = count
	return r
}

// WithValueShown toggles display of the numeric value.
func (r *Rating) WithValueShown(show bool) *Rating {
	r.showValue = show
	return r
}

// Value returns the rating value.
func (r *Rating) Value() float64 {
	return r.value
}

// SetValue updates the rating value.
func (r *Rating) SetValue(value float64) *Rating {
	r.value = value
	return r
}
