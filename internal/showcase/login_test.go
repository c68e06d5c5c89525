package showcase

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curio-ui/curio/internal/router"
	"github.com/curio-ui/curio/internal/ui/components"
)

func fillLogin(l *loginScreen) {
	fields := l.form.Fields()
	fields[0].SetValue("ada@example.com")
	fields[1].SetValue("correcthorse")
}

func keyTab() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyTab} }
func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func TestLogin_StartsInFieldsZone(t *testing.T) {
	l := newLoginScreen(true)

	assert.Equal(t, zoneFields, l.zone)
	assert.True(t, l.CapturesInput())
	assert.Equal(t, 4, l.zoneCount())
}

func TestLogin_TabWalksFieldsThenZones(t *testing.T) {
	l := newLoginScreen(true)
	l.Init()

	// First tab moves within the form, not out of it.
	_, _ = l.Update(keyTab())
	assert.Equal(t, zoneFields, l.zone)
	assert.Equal(t, 1, l.form.FocusIndex())

	_, _ = l.Update(keyTab())
	assert.Equal(t, zoneSubmit, l.zone)
	assert.False(t, l.CapturesInput())

	_, _ = l.Update(keyTab())
	_, _ = l.Update(keyTab())
	assert.Equal(t, 3, l.zone)

	// Wraps back around to the form.
	_, _ = l.Update(keyTab())
	assert.Equal(t, zoneFields, l.zone)
	assert.True(t, l.CapturesInput())
}

func TestLogin_SubmitNagsWhenIncomplete(t *testing.T) {
	l := newLoginScreen(true)
	l.Init()

	_, _ = l.Update(keyTab())
	_, _ = l.Update(keyTab())
	require.Equal(t, zoneSubmit, l.zone)

	_, cmd := l.Update(keyEnter())

	assert.True(t, l.nag)
	assert.False(t, l.pending)
	assert.Nil(t, cmd)
}

func TestLogin_SubmitStartsSignIn(t *testing.T) {
	l := newLoginScreen(true)
	l.Init()
	fillLogin(l)

	_, _ = l.Update(keyTab())
	_, _ = l.Update(keyTab())
	require.Equal(t, zoneSubmit, l.zone)

	_, cmd := l.Update(keyEnter())

	assert.True(t, l.pending)
	assert.False(t, l.nag)
	assert.False(t, l.CapturesInput())
	require.NotNil(t, cmd)
}

func TestLogin_SignInDoneCompletes(t *testing.T) {
	l := newLoginScreen(true)
	l.pending = true

	_, _ = l.Update(SignInDoneMsg{Route: router.RouteLogin, Account: "ada@example.com"})

	assert.False(t, l.pending)
	assert.True(t, l.done)
	assert.Equal(t, "ada@example.com", l.account)

	view := l.View(components.DefaultContext())
	assert.Contains(t, view, "Signed in as ada@example.com.")
	assert.Contains(t, view, "Welcome back")
}

func TestLogin_IgnoresForeignCompletion(t *testing.T) {
	l := newLoginScreen(true)
	l.pending = true

	_, _ = l.Update(SignInDoneMsg{Route: router.RouteSignup, Account: "ada"})

	assert.True(t, l.pending)
	assert.False(t, l.done)
}

func TestLogin_IgnoresStaleCompletion(t *testing.T) {
	l := newLoginScreen(true)

	_, _ = l.Update(SignInDoneMsg{Route: router.RouteLogin, Account: "ada"})

	assert.False(t, l.done)
}

func TestLogin_ProviderSignIn(t *testing.T) {
	l := newLoginScreen(true)
	l.Init()

	_, _ = l.Update(keyTab())
	_, _ = l.Update(keyTab())
	_, _ = l.Update(keyTab())
	require.Equal(t, 2, l.zone)

	_, cmd := l.Update(keyEnter())

	assert.True(t, l.pending)
	assert.Equal(t, "GitHub", l.provider)
	require.NotNil(t, cmd)

	_, _ = l.Update(SignInDoneMsg{Route: router.RouteLogin, Provider: "GitHub"})

	assert.True(t, l.done)
	view := l.View(components.DefaultContext())
	assert.Contains(t, view, "Signed in with GitHub.")
}

func TestLogin_NoProviders(t *testing.T) {
	l := newLoginScreen(false)

	assert.Equal(t, 2, l.zoneCount())

	view := l.View(components.DefaultContext())
	assert.NotContains(t, view, "continue with")
}

func TestLogin_InitClearsStalePending(t *testing.T) {
	l := newLoginScreen(true)
	l.pending = true
	l.provider = "GitHub"

	l.Init()

	assert.False(t, l.pending)
	assert.Empty(t, l.provider)
}

func TestLogin_DoneEnterResets(t *testing.T) {
	l := newLoginScreen(true)
	l.Init()
	fillLogin(l)
	l.done = true
	l.account = "ada@example.com"
	l.zone = zoneSubmit

	_, cmd := l.Update(keyEnter())

	assert.False(t, l.done)
	assert.Empty(t, l.account)
	assert.Equal(t, zoneFields, l.zone)
	assert.Empty(t, l.form.Fields()[0].Value())
	assert.True(t, l.CapturesInput())
	assert.NotNil(t, cmd)
}

func TestLogin_PendingSwallowsKeys(t *testing.T) {
	l := newLoginScreen(true)
	l.pending = true

	_, cmd := l.Update(keyTab())

	assert.Equal(t, zoneFields, l.zone)
	assert.Nil(t, cmd)
	assert.False(t, l.CapturesInput())
}
