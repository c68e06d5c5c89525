package showcase

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/ui"
	"github.com/curio-ui/curio/internal/ui/components"
)

// themeNames lists the selectable themes in display order.
var themeNames = []string{"default", "dark", "light"}

// settingsScreen switches the active theme for the whole app.
type settingsScreen struct {
	cursor int
	active string
}

func newSettingsScreen(active string) *settingsScreen {
	cursor := 0
	for i, name := range themeNames {
		if name == active {
			cursor = i
			break
		}
	}
	return &settingsScreen{cursor: cursor, active: active}
}

func (s *settingsScreen) Init() tea.Cmd { return nil }

func (s *settingsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.cursor--
			if s.cursor < 0 {
				s.cursor = len(themeNames) - 1
			}
		case "down", "j":
			s.cursor++
			if s.cursor >= len(themeNames) {
				s.cursor = 0
			}
		case "enter":
			name := themeNames[s.cursor]
			s.active = name
			return s, func() tea.Msg {
				return ThemeChangedMsg{Name: name}
			}
		}
	}
	return s, nil
}

func (s *settingsScreen) View(ctx components.RenderContext) string {
	rows := make([]ui.Renderable, 0, len(themeNames))
	for i, name := range themeNames {
		row := components.NewListItem(name).
			WithSelected(i == s.cursor)
		if name == s.active {
			row = row.WithTrailing(components.SuccessBadge("active"))
		}
		rows = append(rows, row)
	}

	page := components.VStack(
		components.NewHeader("Settings").
			WithSubtitle("Theme applies everywhere, immediately"),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Theme"),
		components.VStack(rows...).WithGap(0),
		components.VerticalSpacer(1),
		components.NewText("enter applies the highlighted theme").
			WithAppliers(components.Typography(components.TypographyVariantCaption)),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Configuration"),
		components.NewKeyValue("File", "curio.yaml").WithLabelWidth(8),
		components.NewKeyValue("Theme", s.active).WithLabelWidth(8),
		components.CaptionText("Start route, palette and demo toggles load from the file."),
	).WithGap(0)

	return page.ViewWithContext(ctx)
}

func (s *settingsScreen) CapturesInput() bool { return false }
