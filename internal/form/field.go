package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/ui/components"
)

// Field pairs a text input with a validation rule. The state is derived
// from the raw text on every change and never cached across edits.
type Field struct {
	input    textinput.Model
	label    string
	rule     Rule
	state    State
	required bool
}

// NewField creates a field with the given label and rule. A nil rule
// falls back to Required.
func NewField(label string, rule Rule) *Field {
	if rule == nil {
		rule = Required()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Width = 32

	return &Field{
		input:    ti,
		label:    label,
		rule:     rule,
		state:    Idle(),
		required: true,
	}
}

// WithPlaceholder sets the placeholder text shown while empty.
func (f *Field) WithPlaceholder(placeholder string) *Field {
	f.input.Placeholder = placeholder
	return f
}

// WithEchoPassword masks the input the way password fields do.
func (f *Field) WithEchoPassword() *Field {
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

// WithWidth sets the input width in cells.
func (f *Field) WithWidth(width int) *Field {
	f.input.Width = width
	return f
}

// Optional marks the field as not required for submission.
func (f *Field) Optional() *Field {
	f.required = false
	return f
}

// Update forwards the message to the text input and re-derives the
// validation state from the new text.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.state = f.rule(f.input.Value())
	return cmd
}

// Revalidate reruns the rule against the current text. Forms call this on
// fields whose rules read a sibling's value.
func (f *Field) Revalidate() {
	f.state = f.rule(f.input.Value())
}

// Focus gives the field keyboard focus.
func (f *Field) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes keyboard focus.
func (f *Field) Blur() {
	f.input.Blur()
}

// Focused reports whether the field has keyboard focus.
func (f *Field) Focused() bool {
	return f.input.Focused()
}

// Value returns the raw text.
func (f *Field) Value() string {
	return f.input.Value()
}

// SetValue replaces the text and re-derives the state.
func (f *Field) SetValue(value string) {
	f.input.SetValue(value)
	f.state = f.rule(value)
}

// State returns the current validation state.
func (f *Field) State() State {
	return f.state
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Required reports whether the field must be filled before submission.
func (f *Field) Required() bool {
	return f.required
}

// View renders the label, the input box and, when invalid, the inline
// message. A failing state outranks focus so the problem stays visible
// while typing.
func (f *Field) View(theme components.Theme) string {
	inputState := components.InputStateDefault
	switch {
	case f.state.IsInvalid():
		inputState = components.InputStateError
	case f.input.Focused():
		inputState = components.InputStateFocus
	}

	label := components.TypographyStyle(theme, components.TypographyVariantLabel).Render(f.label)
	box := components.InputStyle(theme, inputState).Render(f.input.View())

	lines := []string{label, box}
	if f.state.IsInvalid() {
		message := lipgloss.NewStyle().
			Foreground(theme.Palette.Danger.Base).
			Render("✗ " + f.state.Message())
		lines = append(lines, message)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
