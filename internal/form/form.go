// Package form derives per-field validation state from raw text input
// and groups fields into submittable forms. Validation failures are
// data, not errors: each rule maps the current text to idle, valid or
// invalid with a message, and the state is recomputed on every change.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/ui/components"
)

// Form is an ordered collection of fields with a single keyboard focus
// and a submit gate.
type Form struct {
	fields  []*Field
	focused int
}

// New creates a form over the given fields.
func New(fields ...*Field) *Form {
	return &Form{fields: fields}
}

// Init focuses the first field.
func (f *Form) Init() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focused].Focus()
}

// Update forwards the message to the focused field, then revalidates the
// others so rules that read sibling values stay current.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	cmd := f.fields[f.focused].Update(msg)
	for i, field := range f.fields {
		if i != f.focused {
			field.Revalidate()
		}
	}
	return cmd
}

// Next moves focus to the following field, wrapping past the end.
func (f *Form) Next() tea.Cmd {
	return f.moveFocus(1)
}

// Prev moves focus to the preceding field, wrapping past the start.
func (f *Form) Prev() tea.Cmd {
	return f.moveFocus(-1)
}

func (f *Form) moveFocus(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	f.fields[f.focused].Blur()
	f.focused = (f.focused + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focused].Focus()
}

// CanSubmit reports whether every filled field passed its rule and every
// required field is filled. Idle optional fields do not block submission.
func (f *Form) CanSubmit() bool {
	for _, field := range f.fields {
		if field.state.IsInvalid() {
			return false
		}
		if field.required && field.Value() == "" {
			return false
		}
	}
	return true
}

// Reset clears every field and returns focus to the first one.
func (f *Form) Reset() tea.Cmd {
	for _, field := range f.fields {
		field.SetValue("")
		field.Blur()
	}
	f.focused = 0

	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focused].Focus()
}

// Fields returns the fields in order.
func (f *Form) Fields() []*Field {
	return f.fields
}

// FocusIndex returns the index of the focused field.
func (f *Form) FocusIndex() int {
	return f.focused
}

// View renders every field stacked vertically with a blank line between.
func (f *Form) View(theme components.Theme) string {
	views := make([]string, 0, len(f.fields)*2)
	for i, field := range f.fields {
		if i > 0 {
			views = append(views, "")
		}
		views = append(views, field.View(theme))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
