package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/ui"
)

// Alert is a composite component for notifications and inline messages.
type Alert struct {
	BaseComponent
	message string
	icon    string
	variant AlertVariant
	title   string
}

// NewAlert creates an alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
		icon:          "ℹ",
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	var children []ui.Renderable

	messageLine := a.icon + " " + a.message
	if a.title != "" {
		children = []ui.Renderable{EmphasisText(a.title), NewText(messageLine)}
	} else {
		children = []ui.Renderable{NewText(messageLine)}
	}

	container := NewContainer(children...).
		WithPadding(UniformSpacing(1)).
		WithBorder(lipgloss.NormalBorder())

	theme := ctx.Theme
	if theme.Variants == nil {
		theme = DefaultTheme()
		ctx = ctx.WithTheme(theme)
	}

	var styleFuncs []StyleFunc

	if strategy := theme.Variants.Get(a.variant); strategy != nil {
		styleFuncs = append(styleFuncs, func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return strategy.Apply(base, theme)
		})
	}

	if slot, ok := a.borderSlot(); ok {
		styleFuncs = append(styleFuncs, BorderForeground(slot))
	}

	if len(styleFuncs) > 0 {
		container.WithAppliers(styleFuncs...)
	}

	return container.ViewWithContext(ctx)
}

func (a *Alert) borderSlot() (PaletteSlot, bool) {
	switch a.variant {
	case AlertVariantSuccess:
		return PaletteSuccess, true
	case AlertVariantWarning:
		return PaletteWarning, true
	case AlertVariantError:
		return PaletteDanger, true
	case AlertVariantInfo:
		return PaletteInfo, true
	default:
		return nil, false
	}
}

// WithVariant sets the alert variant and its matching icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant

	switch variant {
	case AlertVariantSuccess:
		a.icon = "✓"
	case AlertVariantWarning:
		a.icon = "⚠"
	case AlertVariantError:
		a.icon = "✗"
	case AlertVariantInfo:
		a.icon = "ℹ"
	}

	return a
}

// WithIcon sets a custom icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title line to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithStyle sets the alert style.
func (a *Alert) WithStyle(style lipgloss.Style) *Alert {
	a.SetStyle(style)
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SetMessage updates the alert message.
func (a *Alert) SetMessage(message string) *Alert {
	a.message = message
	return a
}

// Convenience constructors for the alert variants.

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}
