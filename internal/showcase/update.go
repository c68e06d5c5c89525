package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/router"
)

// Update implements tea.Model. Navigation and theme messages are
// handled here; everything else flows to the screen on top.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Every screen sees resizes so lists and viewports stay sized
		// while hidden.
		var cmds []tea.Cmd
		for route, screen := range m.screens {
			next, cmd := screen.Update(msg)
			m.screens[route] = next
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case router.GoToMsg:
		if msg.Replace {
			m.router.Replace(msg.Route)
		} else {
			m.router.Navigate(msg.Route)
		}
		return m, m.current().Init()

	case router.BackMsg:
		if m.router.Back() {
			return m, m.current().Init()
		}
		return m, nil

	case ThemeChangedMsg:
		m.themeName = msg.Name
		m.theme = themeByName(msg.Name)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	next, cmd := m.current().Update(msg)
	m.setCurrent(next)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits even while a field holds focus.
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.current().CapturesInput() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	// esc pops one destination regardless of focus; text inputs have
	// no use for it. At the root it is a no-op.
	if key.Matches(msg, m.keys.Back) {
		if m.router.Back() {
			return m, m.current().Init()
		}
		return m, nil
	}

	next, cmd := m.current().Update(msg)
	m.setCurrent(next)
	return m, cmd
}
