package showcase

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/router"
	"github.com/curio-ui/curio/internal/ui/components"
)

// productRow is a bubbles list item for the inventory demo.
type productRow struct {
	name   string
	price  string
	rating string
}

func (p productRow) FilterValue() string { return p.name }
func (p productRow) Title() string       { return p.name }
func (p productRow) Description() string { return p.price + "  " + p.rating }

// listsScreen demonstrates the list patterns: a filterable inventory
// plus the fixed row compositions.
type listsScreen struct {
	list list.Model
}

func newListsScreen() *listsScreen {
	rows := []list.Item{
		productRow{name: "Mechanical keyboard", price: "$129.00", rating: "★★★★☆"},
		productRow{name: "Trackball mouse", price: "$89.00", rating: "★★★★★"},
		productRow{name: "4K monitor", price: "$399.00", rating: "★★★★☆"},
		productRow{name: "USB-C hub", price: "$45.00", rating: "★★★☆☆"},
		productRow{name: "Desk mat", price: "$25.00", rating: "★★★★☆"},
		productRow{name: "Wireless headset", price: "$159.00", rating: "★★★★☆"},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fb923c")).
		Bold(true)
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	l := list.New(rows, delegate, 0, 0)
	l.Title = "Inventory"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fb923c"))

	return &listsScreen{list: l}
}

func (l *listsScreen) Init() tea.Cmd { return nil }

func (l *listsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.list.SetWidth(msg.Width - 4)
		l.list.SetHeight(msg.Height - 14)
		return l, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && l.list.FilterState() != list.Filtering {
			return l, router.GoTo(router.RouteProducts)
		}
	}

	var cmd tea.Cmd
	l.list, cmd = l.list.Update(msg)
	return l, cmd
}

func (l *listsScreen) View(ctx components.RenderContext) string {
	if l.list.Width() == 0 {
		l.list.SetWidth(60)
	}
	if l.list.Height() == 0 {
		l.list.SetHeight(10)
	}

	samples := components.VStack(
		components.NewListItem("Ada Lovelace").
			WithSubtitle("ada@example.com").
			WithLeading(components.NewAvatar("Ada Lovelace")).
			WithTrailing(components.CounterBadge(3)),
		components.DisclosureItem("Notifications").
			WithSubtitle("12 unread"),
		components.NewListItem("Storage").
			WithSubtitle("82% of 512 GB used").
			WithTrailing(components.WarningBadge("review")),
	).WithGap(1)

	page := components.VStack(
		rawText(l.list.View()),
		components.NewText("/ filters, enter opens products").
			WithAppliers(components.Typography(components.TypographyVariantCaption)),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Row patterns"),
		samples,
	).WithGap(0)

	return page.ViewWithContext(ctx)
}

func (l *listsScreen) CapturesInput() bool {
	return l.list.FilterState() == list.Filtering
}
