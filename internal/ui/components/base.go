package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/ui"
)

// BaseComponent carries the styling state shared by every widget in the
// catalog. Embed it to pick up the standard style and strategy plumbing.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy computes the final style for a component from a base style
// and the active theme. Strategies keep styling logic composable and
// testable without global state.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc transforms a lipgloss.Style using data from a Theme. It is the
// unit of theme-aware styling; appliers like Background and Padding return
// one of these.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies a sequence of StyleFunc in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply runs every style function against the base style.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy builds a strategy from the given style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent returns a base component with an empty style and no
// strategy.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the component's style against the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers replaces the strategy with one built from the given appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends appliers to the existing strategy. A non-composite
// strategy is wrapped so its logic still runs first.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		// Copy before appending so shared strategies are not mutated.
		merged := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(merged, existing.funcs)
		merged = append(merged, appliers...)
		b.strategy = CompositeStrategy{funcs: merged}
		return
	}

	current := b.strategy
	wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// ControlSize selects one of the fixed widget sizes. Buttons, fields,
// avatars and ratings all honour the same three-step scale.
type ControlSize int

const (
	SizeSmall ControlSize = iota
	SizeMedium
	SizeLarge
)

// Spacing describes padding or margin around a component, ordered
// clockwise from the top like the CSS box model.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing returns spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// HorizontalSpacing returns spacing on the left and right only.
func HorizontalSpacing(size int) Spacing {
	return Spacing{Right: size, Left: size}
}

// VerticalSpacing returns spacing on the top and bottom only.
func VerticalSpacing(size int) Spacing {
	return Spacing{Top: size, Bottom: size}
}

// SymmetricSpacing returns spacing with separate vertical and horizontal
// values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// CustomSpacing returns spacing with explicit per-side values.
func CustomSpacing(top, right, bottom, left int) Spacing {
	return Spacing{Top: top, Right: right, Bottom: bottom, Left: left}
}

// IsZero reports whether all sides are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns top + bottom.
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// Constraints bounds the size a component may occupy during layout.
// A max of -1 means unbounded.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MinWidth: 0, MaxWidth: -1, MinHeight: 0, MaxHeight: -1}
}

// WithWidth returns constraints pinning the width to an exact value.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MinHeight: 0, MaxHeight: -1}
}

// WithMaxWidth returns constraints capping the width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MinWidth: 0, MaxWidth: maxWidth, MinHeight: 0, MaxHeight: -1}
}

// Constrain clamps the given size to the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	w := width
	h := height

	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth != -1 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight != -1 && h > c.MaxHeight {
		h = c.MaxHeight
	}

	return w, h
}

// HasWidth reports whether any width bound is set.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// HasHeight reports whether any height bound is set.
func (c Constraints) HasHeight() bool {
	return c.MinHeight > 0 || c.MaxHeight >= 0
}

// RenderContext carries the theme and layout information components need
// while rendering. Passing it explicitly keeps rendering free of globals,
// so tests can run in parallel and one program can mix themes.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a context with the default theme and no
// constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a copy of the context using the given theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a copy of the context using the given
// constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable is a component that accepts layout context. Most
// components implement it; plain Renderable is enough for leaf content.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Alignment positions content within available space.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// ToLipglossPosition converts an Alignment to the lipgloss equivalent.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignStart:
		return lipgloss.Left
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// MainAxisAlignment distributes children along a stack's main axis.
type MainAxisAlignment int

const (
	MainStart MainAxisAlignment = iota
	MainCenter
	MainEnd
	MainSpaceBetween
	MainSpaceAround
	MainSpaceEvenly
)

// CrossAxisAlignment positions children across a stack's cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
	CrossStretch
)
