package showcase

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/router"
	"github.com/curio-ui/curio/internal/ui/components"
)

// sectionItem is one catalog section on the home menu.
type sectionItem struct {
	route router.Route
	blurb string
}

func (s sectionItem) FilterValue() string { return s.route.Title() }
func (s sectionItem) Title() string       { return s.route.Title() }
func (s sectionItem) Description() string { return s.blurb }

// homeScreen is the catalog's entry menu.
type homeScreen struct {
	list list.Model
}

func newHomeScreen() *homeScreen {
	items := []list.Item{
		sectionItem{route: router.RouteTypography, blurb: "Text styles, headers and labels"},
		sectionItem{route: router.RouteButtons, blurb: "Variants, sizes and states"},
		sectionItem{route: router.RouteForms, blurb: "Fields with live validation"},
		sectionItem{route: router.RouteCards, blurb: "Cards, panels and alerts"},
		sectionItem{route: router.RouteCharts, blurb: "Pie, bar, gauge and sparkline"},
		sectionItem{route: router.RouteLists, blurb: "List rows and accessories"},
		sectionItem{route: router.RouteProducts, blurb: "E-commerce widgets"},
		sectionItem{route: router.RouteSettings, blurb: "Theme and preferences"},
		sectionItem{route: router.RouteAbout, blurb: "About this catalog"},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60a5fa")).
		Bold(true)
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 0, 0)
	l.Title = "Component catalog"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))

	return &homeScreen{list: l}
}

func (h *homeScreen) Init() tea.Cmd { return nil }

func (h *homeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.list.SetWidth(msg.Width - 4)
		h.list.SetHeight(msg.Height - 8)
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if item, ok := h.list.SelectedItem().(sectionItem); ok {
				return h, router.GoTo(item.route)
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return h, cmd
}

func (h *homeScreen) View(ctx components.RenderContext) string {
	// Default dimensions for renders before the first resize.
	if h.list.Width() == 0 {
		h.list.SetWidth(60)
	}
	if h.list.Height() == 0 {
		h.list.SetHeight(16)
	}

	hint := components.TypographyStyle(ctx.Theme, components.TypographyVariantCaption).
		Render("enter opens a section")

	return lipgloss.JoinVertical(lipgloss.Left, h.list.View(), hint)
}

func (h *homeScreen) CapturesInput() bool { return false }
