// Package router models path-based navigation for the showcase: a
// closed set of screen destinations and an ordered back-stack of them,
// with push, pop, targeted pop and replace operations.
package router

// Router holds the ordered navigation path, root first. The zero value
// is an empty path.
type Router struct {
	path []Route
}

// New creates a router with the given starting routes pushed in order.
func New(start ...Route) *Router {
	r := &Router{}
	r.path = append(r.path, start...)
	return r
}

// Navigate pushes the destination onto the path.
func (r *Router) Navigate(route Route) {
	r.path = append(r.path, route)
}

// Back pops the top destination. It reports false and leaves the path
// alone when already at the root, or when the path is empty.
func (r *Router) Back() bool {
	if len(r.path) <= 1 {
		return false
	}
	r.path = r.path[:len(r.path)-1]
	return true
}

// BackTo pops destinations until route is on top, preferring the
// occurrence nearest the top. It reports false and leaves the path
// unchanged when route is not on it.
func (r *Router) BackTo(route Route) bool {
	for i := len(r.path) - 1; i >= 0; i-- {
		if r.path[i] == route {
			r.path = r.path[:i+1]
			return true
		}
	}
	return false
}

// Root pops every destination above the first one.
func (r *Router) Root() {
	if len(r.path) > 1 {
		r.path = r.path[:1]
	}
}

// Replace resets the path to exactly the given destination, regardless
// of prior contents.
func (r *Router) Replace(route Route) {
	r.path = []Route{route}
}

// Current returns the destination on top of the path.
func (r *Router) Current() (Route, bool) {
	if len(r.path) == 0 {
		return "", false
	}
	return r.path[len(r.path)-1], true
}

// Path returns a copy of the navigation path, root first.
func (r *Router) Path() []Route {
	out := make([]Route, len(r.path))
	copy(out, r.path)
	return out
}

// Depth returns the number of destinations on the path.
func (r *Router) Depth() int {
	return len(r.path)
}
