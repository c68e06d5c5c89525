package form

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Rule derives a validation state from raw input. Rules are pure
// functions of the current text: empty input always maps to the idle
// state so a field is never flagged before the user has typed anything.
type Rule func(value string) State

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used by syntactic rules.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Required passes any non-empty input.
func Required() Rule {
	return func(value string) State {
		if value == "" {
			return Idle()
		}
		return Valid()
	}
}

// Email checks the local@domain.tld shape. Syntactic only, no DNS or MX
// lookup.
func Email() Rule {
	return func(value string) State {
		if value == "" {
			return Idle()
		}
		if err := validatorInstance().Var(value, "email"); err != nil {
			return Invalid("Please enter a valid email address")
		}
		return Valid()
	}
}

// MinLength requires at least n characters.
func MinLength(n int) Rule {
	message := fmt.Sprintf("Must be at least %d characters", n)
	return func(value string) State {
		if value == "" {
			return Idle()
		}
		if len([]rune(value)) < n {
			return Invalid(message)
		}
		return Valid()
	}
}

// Password is the password rule used across the showcase forms.
func Password() Rule {
	return MinLength(8)
}

// Match requires the input to equal the value read from other at check
// time. The confirmation field stays idle while empty regardless of what
// the primary holds.
func Match(other func() string) Rule {
	return func(value string) State {
		if value == "" {
			return Idle()
		}
		if value != other() {
			return Invalid("Passwords do not match")
		}
		return Valid()
	}
}
