package showcase

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/router"
)

// ThemeChangedMsg announces a new active theme. The settings screen
// emits it; the app model swaps the theme every screen renders with.
type ThemeChangedMsg struct {
	Name string
}

// SignInDoneMsg completes a simulated sign-in. No real authentication
// happens anywhere in the showcase; submit and provider buttons just
// suspend on a timer and come back with this.
type SignInDoneMsg struct {
	Route    router.Route
	Provider string
	Account  string
}

// chartTickMsg drives the live chart demo. The generation tag lets the
// charts screen drop ticks from a superseded loop.
type chartTickMsg struct {
	gen int
}

// signInDelay is how long the fake sign-in spinner runs.
const signInDelay = 1200 * time.Millisecond

// signInCmd returns a command that completes a simulated sign-in after
// a short delay.
func signInCmd(route router.Route, provider, account string) tea.Cmd {
	return tea.Tick(signInDelay, func(time.Time) tea.Msg {
		return SignInDoneMsg{Route: route, Provider: provider, Account: account}
	})
}
