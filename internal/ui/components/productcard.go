package components

import (
	"strconv"

	"github.com/curio-ui/curio/internal/ui"
)

// ProductCard presents a product listing: name, description, price,
// rating and an optional badge. It composes Card with the commerce
// primitives.
type ProductCard struct {
	name        string
	description string
	price       *PriceTag
	rating      *Rating
	badge       *Badge
}

// NewProductCard creates a product card for the given name and price in
// cents.
func NewProductCard(name string, price int) *ProductCard {
	return &ProductCard{
		name:  name,
		price: NewPriceTag(price),
	}
}

// View renders the product card.
func (p *ProductCard) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the product card with the given theme context.
func (p *ProductCard) ViewWithContext(ctx RenderContext) string {
	var children []ui.Renderable

	title := EmphasisText(p.name)
	if p.badge != nil {
		children = append(children, HStack(title, HorizontalSpacer(1), p.badge))
	} else {
		children = append(children, title)
	}

	if p.description != "" {
		children = append(children, CaptionText(p.description))
	}

	priceRow := []ui.Renderable{p.price}
	if p.rating != nil {
		priceRow = append(priceRow, HorizontalSpacer(2), p.rating)
	}
	children = append(children, HStack(priceRow...))

	if p.price.Discounted() {
		save := AccentBadge("-" + strconv.Itoa(p.price.DiscountPercent()) + "%")
		children = append(children, save)
	}

	card := NewCard(VStack(children...).WithGap(0))
	return card.ViewWithContext(ctx)
}

// WithDescription sets the product description line.
func (p *ProductCard) WithDescription(description string) *ProductCard {
	p.description = description
	return p
}

// WithRating attaches a star rating.
func (p *ProductCard) WithRating(value float64, count int) *ProductCard {
	p.rating = NewRating(value).WithCount(count)
	return p
}

// WithBadge attaches a badge next to the product name.
func (p *ProductCard) WithBadge(badge *Badge) *ProductCard {
	p.badge = badge
	return p
}

// WithOriginalPrice sets the pre-discount price in cents.
func (p *ProductCard) WithOriginalPrice(original int) *ProductCard {
	p.price.WithOriginal(original)
	return p
}

// WithCurrency sets the currency symbol on the price.
func (p *ProductCard) WithCurrency(currency string) *ProductCard {
	p.price.WithCurrency(currency)
	return p
}

// Name returns the product name.
func (p *ProductCard) Name() string {
	return p.name
}

// Price returns the underlying price tag.
func (p *ProductCard) Price() *PriceTag {
	return p.price
}
