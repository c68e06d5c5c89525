package router

import (
	tea "github.com/charmbracelet/bubbletea"
)

// GoToMsg asks the app to push a destination, or to replace the whole
// path with it when Replace is set.
type GoToMsg struct {
	Route   Route
	Replace bool
}

// BackMsg asks the app to pop the current destination.
type BackMsg struct{}

// GoTo returns a command that navigates to the destination.
func GoTo(route Route) tea.Cmd {
	return func() tea.Msg {
		return GoToMsg{Route: route}
	}
}

// ReplaceWith returns a command that resets the path to the destination.
func ReplaceWith(route Route) tea.Cmd {
	return func() tea.Msg {
		return GoToMsg{Route: route, Replace: true}
	}
}

// GoBack returns a command that pops the current destination.
func GoBack() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}
