package showcase

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curio-ui/curio/internal/ui/components"
)

func TestSettings_CursorStartsOnActiveTheme(t *testing.T) {
	s := newSettingsScreen("dark")
	assert.Equal(t, 1, s.cursor)

	s = newSettingsScreen("nope")
	assert.Equal(t, 0, s.cursor)
}

func TestSettings_EnterEmitsThemeChange(t *testing.T) {
	s := newSettingsScreen("default")

	_, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(ThemeChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "dark", msg.Name)
	assert.Equal(t, "dark", s.active)
}

func TestSettings_CursorWraps(t *testing.T) {
	s := newSettingsScreen("default")

	_, _ = s.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, len(themeNames)-1, s.cursor)

	_, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, s.cursor)
}

func TestSettings_ViewMarksActiveTheme(t *testing.T) {
	s := newSettingsScreen("light")

	view := s.View(components.DefaultContext())

	assert.Contains(t, view, "default")
	assert.Contains(t, view, "dark")
	assert.Contains(t, view, "light")
	assert.Contains(t, view, "active")
}
