package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		cents    int
		expected string
	}{
		{"dollars and cents", "$", 3999, "$39.99"},
		{"whole dollars", "$", 5000, "$50.00"},
		{"under a dollar", "$", 99, "$0.99"},
		{"zero", "$", 0, "$0.00"},
		{"negative", "$", -1250, "-$12.50"},
		{"euro symbol", "€", 2400, "€24.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatAmount(tt.currency, tt.cents))
		})
	}
}

func TestPriceTagViewContainsFormattedPrice(t *testing.T) {
	assert.Contains(t, NewPriceTag(3999).View(), "$39.99")
}

func TestPriceTagDiscounted(t *testing.T) {
	tests := []struct {
		name       string
		amount     int
		original   int
		discounted bool
	}{
		{"original higher", 3999, 4999, true},
		{"no original", 3999, 0, false},
		{"original equal", 3999, 3999, false},
		{"original lower", 3999, 2999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := NewPriceTag(tt.amount).WithOriginal(tt.original)
			assert.Equal(t, tt.discounted, tag.Discounted())
		})
	}
}

func TestPriceTagDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		original int
		expected int
	}{
		{"twenty percent off", 4000, 5000, 20},
		{"rounds down", 3999, 4999, 20},
		{"not discounted", 4000, 0, 0},
		{"half off", 2500, 5000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := NewPriceTag(tt.amount).WithOriginal(tt.original)
			assert.Equal(t, tt.expected, tag.DiscountPercent())
		})
	}
}

func TestPriceTagShowsOriginalWhenDiscounted(t *testing.T) {
	view := NewPriceTag(3999).WithOriginal(4999).View()

	assert.Contains(t, view, "$39.99")
	assert.Contains(t, view, "$49.99")
}

func TestPriceTagOmitsOriginalWhenNotDiscounted(t *testing.T) {
	view := NewPriceTag(3999).View()

	assert.Contains(t, view, "$39.99")
	assert.NotContains(t, view, "$0.00")
}

func TestPriceTagIgnoresEmptyCurrency(t *testing.T) {
	tag := NewPriceTag(100).WithCurrency("")

	assert.Contains(t, tag.View(), "$1.00")
}
