package showcase

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.renderContext()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(ctx),
		screenStyle.Render(m.current().View(ctx)),
		footerStyle.Render(m.help.View(m.keys)),
	)
}

// renderHeader draws the app title and the navigation trail.
func (m Model) renderHeader(ctx components.RenderContext) string {
	title := appTitleStyle.Render("✦ curio")

	path := m.router.Path()
	segments := make([]string, len(path))
	for i, route := range path {
		segments[i] = route.Title()
	}
	trail := components.NewBreadcrumb(segments...).ViewWithContext(ctx)

	bar := lipgloss.JoinHorizontal(lipgloss.Center, title, trail)
	if m.width > 2 {
		return headerStyle.Width(m.width - 2).Render(bar)
	}
	return headerStyle.Render(bar)
}
