package showcase

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curio-ui/curio/internal/config"
	"github.com/curio-ui/curio/internal/router"
)

func TestNew_RegistersAllScreens(t *testing.T) {
	m := New(nil)

	for _, route := range router.Routes() {
		assert.Contains(t, m.screens, route, "missing screen for %q", route)
	}
	assert.Equal(t, router.RouteHome, m.Route())
	assert.Equal(t, "default", m.ThemeName())
}

func TestNew_StartRouteDeepLink(t *testing.T) {
	cfg := config.Default()
	cfg.StartRoute = "charts"

	m := New(cfg)

	// Home stays underneath a deep start route so esc has somewhere to
	// land.
	assert.Equal(t, []router.Route{router.RouteHome, router.RouteCharts}, m.Path())
	assert.Equal(t, router.RouteCharts, m.Route())
}

func TestNew_UnknownStartRouteFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.StartRoute = "garage"

	m := New(cfg)

	assert.Equal(t, router.RouteHome, m.Route())
	assert.Equal(t, []router.Route{router.RouteHome}, m.Path())
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model, ok := newModel.(Model)
	require.True(t, ok)

	assert.Equal(t, 100, model.width)
	assert.Equal(t, 40, model.height)
	assert.Equal(t, 100, model.help.Width)
}

func TestUpdate_WindowSizeMsg_ReachesHiddenScreens(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model, ok := newModel.(Model)
	require.True(t, ok)

	// The charts screen is not on top but its viewport resizes anyway.
	charts, ok := model.screens[router.RouteCharts].(*chartsScreen)
	require.True(t, ok)
	assert.Equal(t, 96, charts.viewport.Width)
}

func TestUpdate_GoToMsg(t *testing.T) {
	m := New(nil)

	newModel, cmd := m.Update(router.GoToMsg{Route: router.RouteCharts})
	model, ok := newModel.(Model)
	require.True(t, ok)

	assert.Equal(t, router.RouteCharts, model.Route())
	assert.Equal(t, []router.Route{router.RouteHome, router.RouteCharts}, model.Path())
	assert.NotNil(t, cmd, "charts should start its tick loop on reveal")
}

func TestUpdate_GoToMsg_Replace(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(router.GoToMsg{Route: router.RouteForms})
	model := newModel.(Model)
	newModel, _ = model.Update(router.GoToMsg{Route: router.RouteLogin})
	model = newModel.(Model)

	newModel, _ = model.Update(router.GoToMsg{Route: router.RouteAbout, Replace: true})
	model = newModel.(Model)

	assert.Equal(t, []router.Route{router.RouteAbout}, model.Path())
}

func TestUpdate_BackMsg(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(router.GoToMsg{Route: router.RouteCards})
	model := newModel.(Model)

	newModel, _ = model.Update(router.BackMsg{})
	model = newModel.(Model)

	assert.Equal(t, router.RouteHome, model.Route())
}

func TestUpdate_BackMsg_AtRoot(t *testing.T) {
	m := New(nil)

	newModel, cmd := m.Update(router.BackMsg{})
	model, ok := newModel.(Model)
	require.True(t, ok)

	assert.Equal(t, router.RouteHome, model.Route())
	assert.Nil(t, cmd)
	assert.False(t, model.quitting)
}

func TestUpdate_KeyMsg_EscPops(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(router.GoToMsg{Route: router.RouteButtons})
	model := newModel.(Model)

	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = newModel.(Model)

	assert.Equal(t, router.RouteHome, model.Route())
}

func TestUpdate_KeyMsg_EscAtRootStays(t *testing.T) {
	m := New(nil)

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model, ok := newModel.(Model)
	require.True(t, ok)

	assert.Equal(t, router.RouteHome, model.Route())
	assert.Nil(t, cmd)
	assert.False(t, model.quitting)
}

func TestUpdate_KeyMsg_Quit(t *testing.T) {
	m := New(nil)

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model, ok := newModel.(Model)
	require.True(t, ok)

	assert.True(t, model.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_KeyMsg_CtrlCQuitsWhileTyping(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(router.GoToMsg{Route: router.RouteLogin})
	model := newModel.(Model)
	require.True(t, model.current().CapturesInput())

	newModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model = newModel.(Model)

	assert.True(t, model.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_KeyMsg_TypingShieldsGlobalKeys(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(router.GoToMsg{Route: router.RouteLogin})
	model := newModel.(Model)

	// q lands in the focused email field instead of quitting.
	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model = newModel.(Model)

	assert.False(t, model.quitting)
	assert.Equal(t, router.RouteLogin, model.Route())

	login, ok := model.screens[router.RouteLogin].(*loginScreen)
	require.True(t, ok)
	assert.Equal(t, "q", login.form.Fields()[0].Value())
}

func TestUpdate_KeyMsg_HelpToggle(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	model, ok := newModel.(Model)
	require.True(t, ok)
	assert.True(t, model.help.ShowAll)

	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	model = newModel.(Model)
	assert.False(t, model.help.ShowAll)
}

func TestUpdate_KeyMsg_HelpStaysShutWhileTyping(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(router.GoToMsg{Route: router.RouteLogin})
	model := newModel.(Model)

	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	model = newModel.(Model)

	assert.False(t, model.help.ShowAll)
}

func TestUpdate_ThemeChangedMsg(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(ThemeChangedMsg{Name: "dark"})
	model, ok := newModel.(Model)
	require.True(t, ok)

	assert.Equal(t, "dark", model.ThemeName())
}

func TestView_ShowsTrail(t *testing.T) {
	m := New(nil)

	view := m.View()
	assert.Contains(t, view, "curio")
	assert.Contains(t, view, "Home")

	newModel, _ := m.Update(router.GoToMsg{Route: router.RouteCards})
	model := newModel.(Model)

	view = model.View()
	assert.Contains(t, view, "Cards")
}

func TestView_EmptyAfterQuit(t *testing.T) {
	m := New(nil)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model := newModel.(Model)

	assert.Empty(t, model.View())
}
