package form

// State is the three-way outcome of checking a field: not yet validated,
// passing, or failing with a message to show inline.
type State struct {
	kind    stateKind
	message string
}

type stateKind int

const (
	stateIdle stateKind = iota
	stateValid
	stateInvalid
)

// Idle returns the state of a field that has no content to judge yet.
func Idle() State {
	return State{kind: stateIdle}
}

// Valid returns the state of a field whose content passed its rule.
func Valid() State {
	return State{kind: stateValid}
}

// Invalid returns a failing state carrying the inline message.
func Invalid(message string) State {
	return State{kind: stateInvalid, message: message}
}

// IsIdle reports whether the field has not been judged yet.
func (s State) IsIdle() bool {
	return s.kind == stateIdle
}

// IsValid reports whether the field passed its rule.
func (s State) IsValid() bool {
	return s.kind == stateValid
}

// IsInvalid reports whether the field failed its rule.
func (s State) IsInvalid() bool {
	return s.kind == stateInvalid
}

// Message returns the failure message. Empty unless the state is invalid.
func (s State) Message() string {
	return s.message
}
