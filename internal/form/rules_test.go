package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailRule(t *testing.T) {
	t.Parallel()

	rule := Email()

	tests := []struct {
		name  string
		input string
		want  State
	}{
		{"empty input stays idle", "", Idle()},
		{"well-formed address", "user@example.com", Valid()},
		{"no at sign", "not-an-email", Invalid("Please enter a valid email address")},
		{"missing domain", "user@", Invalid("Please enter a valid email address")},
		{"missing local part", "@example.com", Invalid("Please enter a valid email address")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rule(tt.input))
		})
	}
}

func TestMinLengthRule(t *testing.T) {
	t.Parallel()

	rule := MinLength(8)

	tests := []struct {
		name  string
		input string
		want  State
	}{
		{"empty input stays idle", "", Idle()},
		{"too short", "short", Invalid("Must be at least 8 characters")},
		{"long enough", "longenough1", Valid()},
		{"exactly the minimum", "12345678", Valid()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rule(tt.input))
		})
	}
}

func TestMatchRule(t *testing.T) {
	t.Parallel()

	rule := Match(func() string { return "abc" })

	tests := []struct {
		name  string
		input string
		want  State
	}{
		{"empty confirmation stays idle", "", Idle()},
		{"mismatch", "abd", Invalid("Passwords do not match")},
		{"match", "abc", Valid()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rule(tt.input))
		})
	}
}

func TestMatchRuleReadsLiveValue(t *testing.T) {
	t.Parallel()

	primary := "first"
	rule := Match(func() string { return primary })

	assert.True(t, rule("first").IsValid())

	primary = "second"
	assert.True(t, rule("first").IsInvalid())
}

func TestRequiredRule(t *testing.T) {
	t.Parallel()

	rule := Required()

	assert.True(t, rule("").IsIdle())
	assert.True(t, rule("anything").IsValid())
}

func TestPasswordRuleIsEightCharacterMinimum(t *testing.T) {
	t.Parallel()

	rule := Password()

	assert.True(t, rule("").IsIdle())
	assert.True(t, rule("short").IsInvalid())
	assert.True(t, rule("longenough1").IsValid())
}
