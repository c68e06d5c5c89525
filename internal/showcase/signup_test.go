package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curio-ui/curio/internal/router"
	"github.com/curio-ui/curio/internal/ui/components"
)

func fillSignup(s *signupScreen, confirm string) {
	fields := s.form.Fields()
	fields[0].SetValue("Ada Lovelace")
	fields[1].SetValue("ada@example.com")
	fields[2].SetValue("correcthorse")
	fields[3].SetValue(confirm)
}

func TestSignup_MismatchBlocksSubmit(t *testing.T) {
	s := newSignupScreen()
	s.Init()
	fillSignup(s, "correcthorze")

	assert.False(t, s.form.CanSubmit())

	s.onSubmit = true
	_, cmd := s.Update(keyEnter())

	assert.True(t, s.nag)
	assert.False(t, s.pending)
	assert.Nil(t, cmd)
}

func TestSignup_MatchingPasswordsSubmit(t *testing.T) {
	s := newSignupScreen()
	s.Init()
	fillSignup(s, "correcthorse")

	require.True(t, s.form.CanSubmit())

	s.onSubmit = true
	_, cmd := s.Update(keyEnter())

	assert.True(t, s.pending)
	assert.False(t, s.nag)
	require.NotNil(t, cmd)
}

func TestSignup_EditedPasswordInvalidatesConfirm(t *testing.T) {
	s := newSignupScreen()
	s.Init()
	fillSignup(s, "correcthorse")
	require.True(t, s.form.CanSubmit())

	// Changing the password after confirming must re-fail the match.
	s.form.Fields()[2].SetValue("correcthorse2")
	s.form.Fields()[3].Revalidate()

	assert.False(t, s.form.CanSubmit())
}

func TestSignup_CompletionNamesAccount(t *testing.T) {
	s := newSignupScreen()
	s.pending = true

	_, _ = s.Update(SignInDoneMsg{Route: router.RouteSignup, Account: "Ada Lovelace"})

	assert.True(t, s.done)
	view := s.View(components.DefaultContext())
	assert.Contains(t, view, "Account created for Ada Lovelace.")
	assert.Contains(t, view, "All set")
}

func TestSignup_IgnoresLoginCompletion(t *testing.T) {
	s := newSignupScreen()
	s.pending = true

	_, _ = s.Update(SignInDoneMsg{Route: router.RouteLogin, Account: "Ada"})

	assert.True(t, s.pending)
	assert.False(t, s.done)
}

func TestSignup_TabReachesSubmitAndWrapsBack(t *testing.T) {
	s := newSignupScreen()
	s.Init()

	for range s.form.Fields()[1:] {
		_, _ = s.Update(keyTab())
	}
	require.Equal(t, len(s.form.Fields())-1, s.form.FocusIndex())
	assert.False(t, s.onSubmit)

	_, _ = s.Update(keyTab())
	assert.True(t, s.onSubmit)
	assert.False(t, s.CapturesInput())

	_, _ = s.Update(keyTab())
	assert.False(t, s.onSubmit)
	assert.True(t, s.CapturesInput())
}
