package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCardShowsNameAndPrice(t *testing.T) {
	view := NewProductCard("Mechanical Keyboard", 12900).View()

	assert.Contains(t, view, "Mechanical Keyboard")
	assert.Contains(t, view, "$129.00")
}

func TestProductCardWithDescription(t *testing.T) {
	view := NewProductCard("Keyboard", 12900).
		WithDescription("Hot-swappable switches").
		View()

	assert.Contains(t, view, "Hot-swappable switches")
}

func TestProductCardWithRating(t *testing.T) {
	view := NewProductCard("Keyboard", 12900).
		WithRating(4.0, 210).
		View()

	assert.Equal(t, 4, strings.Count(view, "★"))
	assert.Contains(t, view, "(210)")
}

func TestProductCardShowsDiscount(t *testing.T) {
	card := NewProductCard("Keyboard", 4000).WithOriginalPrice(5000)

	require.True(t, card.Price().Discounted())

	view := card.View()
	assert.Contains(t, view, "$40.00")
	assert.Contains(t, view, "$50.00")
	assert.Contains(t, view, "-20%")
}

func TestProductCardNoDiscountBadgeWithoutOriginal(t *testing.T) {
	view := NewProductCard("Keyboard", 4000).View()

	assert.NotContains(t, view, "%")
}

func TestProductCardWithBadge(t *testing.T) {
	view := NewProductCard("Keyboard", 12900).
		WithBadge(SuccessBadge("NEW")).
		View()

	assert.Contains(t, view, "NEW")
}

func TestProductCardWithCurrency(t *testing.T) {
	view := NewProductCard("Keyboard", 12900).
		WithCurrency("€").
		View()

	assert.Contains(t, view, "€129.00")
}

func TestProductCardAccessors(t *testing.T) {
	card := NewProductCard("Keyboard", 12900)

	assert.Equal(t, "Keyboard", card.Name())
	assert.Equal(t, 12900, card.Price().Amount())
}
