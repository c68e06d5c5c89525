package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListItemShowsTitle(t *testing.T) {
	assert.Contains(t, NewListItem("Notifications").View(), "Notifications")
}

func TestListItemWithSubtitleAddsSecondLine(t *testing.T) {
	single := NewListItem("Notifications").View()
	double := NewListItem("Notifications").WithSubtitle("Sounds, badges").View()

	assert.NotContains(t, single, "\n")
	assert.Contains(t, double, "Sounds, badges")
	assert.Contains(t, double, "\n")
}

func TestListItemWithLeadingAndTrailing(t *testing.T) {
	view := NewListItem("Ada Lovelace").
		WithLeading(NewAvatar("Ada Lovelace")).
		WithTrailing(CounterBadge(3)).
		View()

	assert.Contains(t, view, "AL")
	assert.Contains(t, view, "Ada Lovelace")
	assert.Contains(t, view, "3")
}

func TestListItemTrailingComesAfterTitle(t *testing.T) {
	view := NewListItem("Wi-Fi").WithTrailing(NewText("Home-5G")).View()

	assert.Less(t, strings.Index(view, "Wi-Fi"), strings.Index(view, "Home-5G"))
}

func TestListItemSelection(t *testing.T) {
	item := NewListItem("Wi-Fi")
	assert.False(t, item.IsSelected())

	item.WithSelected(true)
	assert.True(t, item.IsSelected())
	assert.Contains(t, item.View(), "Wi-Fi")
}

func TestDisclosureItemHasChevron(t *testing.T) {
	view := DisclosureItem("About").View()

	assert.Contains(t, view, "About")
	assert.Contains(t, view, "›")
}

func TestListItemAccessors(t *testing.T) {
	item := NewListItem("Wi-Fi").WithSubtitle("Connected")

	assert.Equal(t, "Wi-Fi", item.Title())
	assert.Equal(t, "Connected", item.Subtitle())
}
