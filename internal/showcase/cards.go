package showcase

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/ui/components"
)

// cardsScreen shows the surface components: cards, panels, alerts and
// stat tiles.
type cardsScreen struct {
	viewport viewport.Model
}

func newCardsScreen() *cardsScreen {
	return &cardsScreen{viewport: newPageViewport()}
}

func (c *cardsScreen) Init() tea.Cmd { return nil }

func (c *cardsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		resizePage(&c.viewport, size)
		return c, nil
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

func (c *cardsScreen) View(ctx components.RenderContext) string {
	c.viewport.SetContent(cardsContent(ctx))
	return c.viewport.View()
}

func (c *cardsScreen) CapturesInput() bool { return false }

func cardsContent(ctx components.RenderContext) string {
	profile := components.NewCard(
		components.HStack(
			components.NewAvatar("Ada Lovelace"),
			components.HorizontalSpacer(1),
			components.VStack(
				components.BoldText("Ada Lovelace"),
				components.CaptionText("Analytical engines"),
			),
		).WithCrossAlign(components.CrossCenter),
	).WithTitle("Profile").
		WithFooter(components.CaptionText("Updated moments ago"))

	stats := components.HStack(
		components.NewStatCard("Revenue", "$12,480").WithDelta(12.5, "%"),
		components.NewStatCard("Sessions", "1,203").WithDelta(-3.2, "%"),
		components.NewStatCard("Uptime", "99.98%"),
	).WithGap(1)

	activity := components.NewPanel(
		components.NewKeyValue("Deploys", "14").WithLabelWidth(10),
		components.NewKeyValue("Alerts", "2").WithLabelWidth(10),
		components.NewKeyValue("On call", "Grace H.").WithLabelWidth(10),
	).WithTitle("This week").
		WithFooter(components.CaptionText("Numbers are illustrative"))

	page := components.VStack(
		components.NewHeader("Cards").
			WithSubtitle("Surfaces for grouping related content"),
		components.VerticalSpacer(1),
		profile,
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Stat tiles"),
		stats,
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Panels"),
		activity,
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Alerts"),
		components.SuccessAlert("Deploy finished in 42s.").WithTitle("Success"),
		components.InfoAlert("A new version is available."),
		components.WarningAlert("Disk usage is above 80%."),
		components.ErrorAlert("Build failed on main.").WithTitle("Error"),
	).WithGap(0)

	return page.ViewWithContext(ctx)
}
