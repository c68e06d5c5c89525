package showcase

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	appTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60a5fa")).
			PaddingRight(2)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")).
			PaddingBottom(0)

	screenStyle = lipgloss.NewStyle().
			Padding(1, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			PaddingTop(1)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a5fa"))
)
