package showcase

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/ui/components"
)

// aboutScreen is the closing page of the catalog.
type aboutScreen struct{}

func newAboutScreen() *aboutScreen { return &aboutScreen{} }

func (a *aboutScreen) Init() tea.Cmd { return nil }

func (a *aboutScreen) Update(tea.Msg) (Screen, tea.Cmd) { return a, nil }

func (a *aboutScreen) View(ctx components.RenderContext) string {
	page := components.VStack(
		components.NewHeader("About curio").
			WithSubtitle("A terminal UI component kit"),
		components.VerticalSpacer(1),
		components.NewText("Curio is a catalog of reusable terminal widgets: text,"),
		components.NewText("buttons, badges, cards, form fields with live validation,"),
		components.NewText("list rows, storefront pieces and chart painters."),
		components.VerticalSpacer(1),
		components.NewText("Every screen in this app is built from the same components"),
		components.NewText("it documents. Rendering is pure: views are derived from"),
		components.NewText("state, and nothing here talks to a network."),
		components.VerticalSpacer(1),
		components.NewDivider(),
		components.NewKeyValue("Binary", "curio").WithLabelWidth(10),
		components.NewKeyValue("Module", "github.com/curio-ui/curio").WithLabelWidth(10),
		components.NewKeyValue("License", "MIT").WithLabelWidth(10),
	).WithGap(0)

	return page.ViewWithContext(ctx)
}

func (a *aboutScreen) CapturesInput() bool { return false }
