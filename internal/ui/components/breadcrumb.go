package components

import (
	"strings"
)

// Breadcrumb renders a navigation trail, highlighting the final segment
// as the current location.
type Breadcrumb struct {
	BaseComponent
	segments  []string
	separator string
}

// NewBreadcrumb creates a breadcrumb from path segments ordered root
// first.
func NewBreadcrumb(segments ...string) *Breadcrumb {
	return &Breadcrumb{
		BaseComponent: NewBaseComponent(),
		segments:      segments,
		separator:     "›",
	}
}

// View renders the breadcrumb.
func (b *Breadcrumb) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the breadcrumb with the given theme context.
func (b *Breadcrumb) ViewWithContext(ctx RenderContext) string {
	if len(b.segments) == 0 {
		return ""
	}

	theme := ctx.Theme
	ancestor := TypographyStyle(theme, TypographyVariantCaption)
	current := TypographyStyle(theme, TypographyVariantEmphasis)
	sep := ancestor.Render(" " + b.separator + " ")

	parts := make([]string, 0, len(b.segments))
	for i, segment := range b.segments {
		if i == len(b.segments)-1 {
			parts = append(parts, current.Render(segment))
		} else {
			parts = append(parts, ancestor.Render(segment))
		}
	}

	return b.ComputeStyle(theme).Render(strings.Join(parts, sep))
}

// WithSeparator sets the separator rune between segments.
func (b *Breadcrumb) WithSeparator(separator string) *Breadcrumb {
	if separator != "" {
		b.separator = separator
	}
	return b
}

// Segments returns the path segments.
func (b *Breadcrumb) Segments() []string {
	return b.segments
}

// Push appends a segment to the trail.
func (b *Breadcrumb) Push(segment string) *Breadcrumb {
	b.segments = append(b.segments, segment)
	return b
}
