package router

import (
	"errors"
	"strings"

	curioerrors "github.com/curio-ui/curio/pkg/errors"
)

// Route identifies a navigable screen destination.
type Route string

// The closed set of catalog destinations.
const (
	RouteHome       Route = "home"
	RouteTypography Route = "typography"
	RouteButtons    Route = "buttons"
	RouteForms      Route = "forms"
	RouteLogin      Route = "login"
	RouteSignup     Route = "signup"
	RouteCards      Route = "cards"
	RouteCharts     Route = "charts"
	RouteLists      Route = "lists"
	RouteProducts   Route = "products"
	RouteSettings   Route = "settings"
	RouteAbout      Route = "about"
)

var routeTitles = map[Route]string{
	RouteHome:       "Home",
	RouteTypography: "Typography",
	RouteButtons:    "Buttons",
	RouteForms:      "Forms",
	RouteLogin:      "Log in",
	RouteSignup:     "Sign up",
	RouteCards:      "Cards",
	RouteCharts:     "Charts",
	RouteLists:      "Lists",
	RouteProducts:   "Products",
	RouteSettings:   "Settings",
	RouteAbout:      "About",
}

// Routes returns every destination in catalog order.
func Routes() []Route {
	return []Route{
		RouteHome,
		RouteTypography,
		RouteButtons,
		RouteForms,
		RouteLogin,
		RouteSignup,
		RouteCards,
		RouteCharts,
		RouteLists,
		RouteProducts,
		RouteSettings,
		RouteAbout,
	}
}

// Valid reports whether r names a known destination.
func (r Route) Valid() bool {
	_, ok := routeTitles[r]
	return ok
}

// String returns the route identifier.
func (r Route) String() string {
	return string(r)
}

// Title returns the human-readable screen title.
func (r Route) Title() string {
	if title, ok := routeTitles[r]; ok {
		return title
	}
	return string(r)
}

var errUnknownRoute = errors.New("unknown route")

// ParseRoute resolves a route identifier, ignoring case and surrounding
// whitespace.
func ParseRoute(s string) (Route, error) {
	r := Route(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", curioerrors.NewRouteError(s, errUnknownRoute)
	}
	return r, nil
}
