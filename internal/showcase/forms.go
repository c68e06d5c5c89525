package showcase

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/router"
	"github.com/curio-ui/curio/internal/ui"
	"github.com/curio-ui/curio/internal/ui/components"
)

// formDemos are the destinations reachable from the forms hub.
var formDemos = []struct {
	route router.Route
	blurb string
}{
	{router.RouteLogin, "Email and password with live validation"},
	{router.RouteSignup, "Account creation with confirmation matching"},
}

// formsScreen introduces the validation model and links to the two
// form demos.
type formsScreen struct {
	cursor int
}

func newFormsScreen() *formsScreen {
	return &formsScreen{}
}

func (f *formsScreen) Init() tea.Cmd { return nil }

func (f *formsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			f.cursor--
			if f.cursor < 0 {
				f.cursor = len(formDemos) - 1
			}
		case "down", "j":
			f.cursor++
			if f.cursor >= len(formDemos) {
				f.cursor = 0
			}
		case "enter":
			return f, router.GoTo(formDemos[f.cursor].route)
		}
	}
	return f, nil
}

func (f *formsScreen) View(ctx components.RenderContext) string {
	rows := make([]ui.Renderable, 0, len(formDemos))
	for i, demo := range formDemos {
		rows = append(rows, components.DisclosureItem(demo.route.Title()).
			WithSubtitle(demo.blurb).
			WithSelected(i == f.cursor))
	}

	page := components.VStack(
		components.NewHeader("Forms").
			WithSubtitle("Fields derive their state from their value"),
		components.VerticalSpacer(1),
		components.NewText("A field is idle while empty, and valid or invalid once"),
		components.NewText("it has content. Messages update on every keystroke."),
		components.VerticalSpacer(1),
		components.VStack(rows...).WithGap(1),
		components.VerticalSpacer(1),
		components.NewText("enter opens a demo").
			WithAppliers(components.Typography(components.TypographyVariantCaption)),
	).WithGap(0)

	return page.ViewWithContext(ctx)
}

func (f *formsScreen) CapturesInput() bool { return false }
