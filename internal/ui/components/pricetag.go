package components

import (
	"fmt"
)

// PriceTag renders a price, optionally next to a struck-through original
// price when the item is discounted. Amounts are in minor units (cents)
// to avoid floating point money.
type PriceTag struct {
	BaseComponent
	amount   int
	original int
	currency string
}

// NewPriceTag creates a price tag for the given amount in cents.
func NewPriceTag(amount int) *PriceTag {
	return &PriceTag{
		BaseComponent: NewBaseComponent(),
		amount:        amount,
		currency:      "$",
	}
}

// View renders the price tag.
func (p *PriceTag) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the price tag with the given theme context.
func (p *PriceTag) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	priceStyle := p.ComputeStyle(theme).
		Bold(true).
		Foreground(theme.Palette.Accent.Base)

	out := priceStyle.Render(formatAmount(p.currency, p.amount))

	if p.Discounted() {
		originalStyle := TypographyStyle(theme, TypographyVariantCaption).Strikethrough(true)
		out += " " + originalStyle.Render(formatAmount(p.currency, p.original))
	}

	return out
}

func formatAmount(currency string, cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, currency, cents/100, cents%100)
}

// WithOriginal sets the pre-discount price in cents.
func (p *PriceTag) WithOriginal(original int) *PriceTag {
	p.original = original
	return p
}

// WithCurrency sets the currency symbol.
func (p *PriceTag) WithCurrency(currency string) *PriceTag {
	if currency != "" {
		p.currency = currency
	}
	return p
}

// Amount returns the current price in cents.
func (p *PriceTag) Amount() int {
	return p.amount
}

// Discounted reports whether an original price higher than the current
// one is set.
func (p *PriceTag) Discounted() bool {
	return p.original > p.amount
}

// DiscountPercent returns the whole-number discount percentage, or 0 when
// the item is not discounted.
func (p *PriceTag) DiscountPercent() int {
	if !p.Discounted() || p.original == 0 {
		return 0
	}
	return (p.original - p.amount) * 100 / p.original
}
