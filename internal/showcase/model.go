// Package showcase is the interactive catalog application: a bubbletea
// program that composes every component into navigable screens behind
// the path-based router.
package showcase

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/config"
	"github.com/curio-ui/curio/internal/router"
	"github.com/curio-ui/curio/internal/ui/components"
)

// Model is the root application model. It owns the navigation path and
// one screen per destination, and dispatches messages to whichever
// screen is on top.
type Model struct {
	router  *router.Router
	screens map[router.Route]Screen

	keys keyMap
	help help.Model

	themeName string
	theme     components.Theme

	width  int
	height int

	quitting bool
}

// New builds the showcase app from a validated configuration. A nil
// configuration means the defaults.
func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	themeName := cfg.Theme
	if themeName == "" {
		themeName = "default"
	}

	start := router.RouteHome
	if cfg.StartRoute != "" {
		if parsed, err := router.ParseRoute(cfg.StartRoute); err == nil {
			start = parsed
		}
	}

	// A deep start route still gets home underneath it, so esc always
	// has somewhere to land.
	path := []router.Route{router.RouteHome}
	if start != router.RouteHome {
		path = append(path, start)
	}

	m := Model{
		router:    router.New(path...),
		keys:      defaultKeyMap(),
		help:      help.New(),
		themeName: themeName,
		theme:     themeByName(themeName),
		width:     80,
		height:    24,
	}

	m.screens = map[router.Route]Screen{
		router.RouteHome:       newHomeScreen(),
		router.RouteTypography: newTypographyScreen(),
		router.RouteButtons:    newButtonsScreen(),
		router.RouteForms:      newFormsScreen(),
		router.RouteLogin:      newLoginScreen(cfg.Demo.SignInProviders),
		router.RouteSignup:     newSignupScreen(),
		router.RouteCards:      newCardsScreen(),
		router.RouteCharts:     newChartsScreen(cfg.Chart.Palette),
		router.RouteLists:      newListsScreen(),
		router.RouteProducts:   newProductsScreen(cfg.Demo.Discounts),
		router.RouteSettings:   newSettingsScreen(themeName),
		router.RouteAbout:      newAboutScreen(),
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.current().Init()
}

// current returns the screen for the destination on top of the path.
func (m Model) current() Screen {
	if route, ok := m.router.Current(); ok {
		if screen, ok := m.screens[route]; ok {
			return screen
		}
	}
	return m.screens[router.RouteHome]
}

// setCurrent stores an updated screen back into the registry.
func (m *Model) setCurrent(s Screen) {
	if route, ok := m.router.Current(); ok {
		m.screens[route] = s
	}
}

// renderContext builds the context screens render with.
func (m Model) renderContext() components.RenderContext {
	ctx := components.DefaultContext().WithTheme(m.theme)
	width := m.width - screenStyle.GetHorizontalFrameSize()
	if width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(width))
	}
	return ctx
}

// themeByName maps a configured theme name to a component theme.
func themeByName(name string) components.Theme {
	switch name {
	case "dark":
		return components.DarkTheme()
	case "light":
		return components.LightTheme()
	default:
		return components.DefaultTheme()
	}
}

// Route returns the destination currently on top of the path.
func (m Model) Route() router.Route {
	route, _ := m.router.Current()
	return route
}

// Path returns a copy of the navigation path, root first.
func (m Model) Path() []router.Route {
	return m.router.Path()
}

// ThemeName returns the active theme's configured name.
func (m Model) ThemeName() string {
	return m.themeName
}
