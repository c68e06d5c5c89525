// Package ui defines the shared contracts implemented by every visual
// element in the catalog.
package ui

// Renderable is anything that can draw itself as a string for terminal
// output. All components implement this.
type Renderable interface {
	View() string
}
