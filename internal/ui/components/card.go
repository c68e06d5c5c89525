package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/ui"
)

// Card is a specialized container with the default card treatment. It is
// a semantic component built on Container.
type Card struct {
	*Container
}

// NewCard creates a card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(UniformSpacing(1))

	container.WithAppliers(CardBaseStyle()...)

	return &Card{
		Container: container,
	}
}

// WithTitle prepends a title header to the card content.
func (c *Card) WithTitle(title string) *Card {
	header := NewHeader(title).WithAppliers(
		Typography(TypographyVariantTitle),
	)

	allChildren := make([]ui.Renderable, 0, len(c.Children())+1)
	allChildren = append(allChildren, header)
	allChildren = append(allChildren, c.Children()...)

	c.SetChildren(allChildren)
	c.SetLayout(VStack(allChildren...))

	return c
}

// WithFooter appends a divider and footer to the card content.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(HorizontalDivider(), footer)
	return c
}

// AsContainer returns the underlying container for advanced
// customization.
func (c *Card) AsContainer() *Container {
	return c.Container
}
