package showcase

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curio-ui/curio/internal/router"
	"github.com/curio-ui/curio/internal/ui/components"
)

func TestHome_EnterOpensSelectedSection(t *testing.T) {
	h := newHomeScreen()

	_, _ = h.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.GoToMsg)
	require.True(t, ok)
	assert.Equal(t, router.RouteTypography, msg.Route)
	assert.False(t, msg.Replace)
}

func TestHome_NavigationMovesSelection(t *testing.T) {
	h := newHomeScreen()

	_, _ = h.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	_, _ = h.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.GoToMsg)
	require.True(t, ok)
	assert.Equal(t, router.RouteButtons, msg.Route)
}

func TestHome_ViewListsSections(t *testing.T) {
	h := newHomeScreen()

	view := h.View(components.DefaultContext())

	assert.Contains(t, view, "Component catalog")
	assert.Contains(t, view, "Typography")
	assert.Contains(t, view, "enter opens a section")
}

func TestHome_DoesNotCaptureInput(t *testing.T) {
	h := newHomeScreen()
	assert.False(t, h.CapturesInput())
}
