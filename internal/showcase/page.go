package showcase

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// newPageViewport returns a viewport sized for renders that happen
// before the first resize.
func newPageViewport() viewport.Model {
	return viewport.New(76, 18)
}

// resizePage fits a page viewport to the window, reserving rows for the
// app header and footer.
func resizePage(vp *viewport.Model, msg tea.WindowSizeMsg) {
	width := msg.Width - 4
	if width < 20 {
		width = 20
	}
	height := msg.Height - 7
	if height < 5 {
		height = 5
	}
	vp.Width = width
	vp.Height = height
}
