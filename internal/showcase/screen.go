package showcase

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/ui/components"
)

// Screen is one catalog destination. Each screen owns its model, update
// and view; the app model dispatches messages to whichever screen the
// router has on top.
type Screen interface {
	// Init returns the screen's startup command. It runs again every
	// time navigation reveals the screen, so tick loops restart.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly replaced)
	// screen plus a follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen against the active theme and layout.
	View(ctx components.RenderContext) string

	// CapturesInput reports whether the screen is consuming plain
	// keystrokes, as a focused text input does. While true the app
	// keeps global keys like q and ? out of the screen's way.
	CapturesInput() bool
}
