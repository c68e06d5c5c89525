package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/ui"
)

// Panel groups related content into a section. It carries less visual
// weight than Card and is meant for layout organization.
type Panel struct {
	*Container
	header ui.Renderable
	footer ui.Renderable
}

// NewPanel creates a panel with default styling.
func NewPanel(children ...ui.Renderable) *Panel {
	container := NewContainer(children...).
		WithPadding(UniformSpacing(1))

	container = container.WithAppliers(
		Background(PaletteSurface),
	)

	return &Panel{
		Container: container,
	}
}

// WithHeader adds a header to the panel, replacing any prior header.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	priorHeader := p.header
	p.header = header

	currentChildren := p.Children()
	remainingChildren := currentChildren

	// Strip the old header+divider pair only when the first child is the
	// header this panel installed earlier.
	if len(currentChildren) >= 2 && priorHeader != nil {
		if currentChildren[0] == priorHeader {
			if _, ok := currentChildren[1].(*Divider); ok {
				remainingChildren = currentChildren[2:]
			}
		}
	}

	allChildren := []ui.Renderable{header, HorizontalDivider()}
	allChildren = append(allChildren, remainingChildren...)

	p.SetChildren(allChildren)
	p.SetLayout(VStack(allChildren...))
	return p
}

// WithFooter adds a footer to the panel, replacing any prior footer.
func (p *Panel) WithFooter(footer ui.Renderable) *Panel {
	p.footer = footer

	currentChildren := p.Children()
	remainingChildren := currentChildren

	// Strip an existing divider+footer pair at the end. The last child
	// must not itself be a divider for the pair to count as a footer.
	if len(currentChildren) >= 2 {
		penultimate := currentChildren[len(currentChildren)-2]
		last := currentChildren[len(currentChildren)-1]
		if _, ok := penultimate.(*Divider); ok {
			if _, lastIsDivider := last.(*Divider); !lastIsDivider {
				remainingChildren = currentChildren[:len(currentChildren)-2]
			}
		}
	}

	allChildren := append([]ui.Renderable{}, remainingChildren...)
	allChildren = append(allChildren, HorizontalDivider(), footer)

	p.SetChildren(allChildren)
	p.SetLayout(VStack(allChildren...))
	return p
}

// WithTitle adds a text header using the title typography.
func (p *Panel) WithTitle(title string) *Panel {
	header := NewHeader(title).WithAppliers(
		Typography(TypographyVariantTitle),
	)
	return p.WithHeader(header)
}

// WithBorder adds a border to the panel.
func (p *Panel) WithBorder(border lipgloss.Border) *Panel {
	p.Container.WithBorder(border)
	return p
}

// AsContainer returns the underlying container for advanced
// customization.
func (p *Panel) AsContainer() *Container {
	return p.Container
}
