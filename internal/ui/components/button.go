package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is the visual button component. It renders a label (optionally
// with a leading icon) using the active theme's variant treatment.
type Button struct {
	BaseComponent
	label    string
	icon     string
	variant  ButtonVariant
	size     ControlSize
	disabled bool
	active   bool
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
		size:          SizeMedium,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.computeStyle(ctx.Theme)

	content := b.label
	if b.icon != "" {
		if content == "" {
			content = b.icon
		} else {
			content = b.icon + " " + content
		}
	}

	return style.Render(content)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	baseStyle := b.ComputeStyle(theme)

	var style lipgloss.Style
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(baseStyle, theme)
	} else {
		style = baseStyle
	}

	// The link variant keeps its text-like shape at every size.
	if b.variant != ButtonVariantLink {
		switch b.size {
		case SizeSmall:
			pad := PaddingValue(theme, SpacingSizeSmall)
			style = style.PaddingLeft(pad).PaddingRight(pad)
		case SizeLarge:
			pad := PaddingValue(theme, SpacingSizeLarge)
			style = style.PaddingLeft(pad).PaddingRight(pad).PaddingTop(1).PaddingBottom(1)
		}
	}

	if b.disabled {
		style = style.Faint(true)
	}

	if b.active {
		style = style.Bold(true).Underline(true)
	}

	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ControlSize) *Button {
	b.size = size
	return b
}

// WithIcon sets a leading icon rendered before the label.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel updates the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// Icon returns the leading icon.
func (b *Button) Icon() string {
	return b.icon
}

// Size returns the button size.
func (b *Button) Size() ControlSize {
	return b.size
}

// IsDisabled reports whether the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsActive reports whether the button is active.
func (b *Button) IsActive() bool {
	return b.active
}

// Convenience constructors for the button variants.

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// SuccessButton creates a success button.
func SuccessButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSuccess)
}

// DangerButton creates a destructive-action button.
func DangerButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantDanger)
}

// WarningButton creates a warning button.
func WarningButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantWarning)
}

// InfoButton creates an info button.
func InfoButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantInfo)
}

// MutedButton creates a muted/neutral button.
func MutedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantMuted)
}

// OutlineButton creates a bordered button without a fill.
func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantOutline)
}

// GhostButton creates a borderless, fill-free button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}

// LinkButton creates a button styled as an inline link.
func LinkButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantLink)
}

// IconButton creates a compact button showing only an icon.
func IconButton(icon string) *Button {
	return NewButton("").WithIcon(icon).WithSize(SizeSmall)
}
