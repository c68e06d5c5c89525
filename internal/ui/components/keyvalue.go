package components

import (
	"strings"
)

// KeyValue renders a label/value pair on one line, padding the label to a
// fixed column so stacked rows align.
type KeyValue struct {
	BaseComponent
	label      string
	value      string
	labelWidth int
}

// NewKeyValue creates a key-value row.
func NewKeyValue(label, value string) *KeyValue {
	return &KeyValue{
		BaseComponent: NewBaseComponent(),
		label:         label,
		value:         value,
	}
}

// View renders the row.
func (kv *KeyValue) View() string {
	return kv.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row with the given theme context.
func (kv *KeyValue) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	label := kv.label
	if kv.labelWidth > 0 {
		if pad := kv.labelWidth - len([]rune(label)); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
	}

	labelOut := TypographyStyle(theme, TypographyVariantLabel).Render(label)
	valueOut := kv.ComputeStyle(theme).Render(kv.value)

	return labelOut + " " + valueOut
}

// WithLabelWidth pads the label to the given width.
func (kv *KeyValue) WithLabelWidth(width int) *KeyValue {
	kv.labelWidth = width
	return kv
}

// WithAppliers applies theme-based style modifiers to the value.
func (kv *KeyValue) WithAppliers(appliers ...StyleFunc) *KeyValue {
	kv.AddAppliers(appliers...)
	return kv
}

// Label returns the label.
func (kv *KeyValue) Label() string {
	return kv.label
}

// Value returns the value.
func (kv *KeyValue) Value() string {
	return kv.value
}

// SetValue updates the value.
func (kv *KeyValue) SetValue(value string) *KeyValue {
	kv.value = value
	return kv
}
