package showcase

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/ui"
	"github.com/curio-ui/curio/internal/ui/components"
)

// productsScreen shows the e-commerce widgets. Strikethrough pricing
// honours the demo.discounts toggle.
type productsScreen struct {
	viewport  viewport.Model
	discounts bool
}

func newProductsScreen(discounts bool) *productsScreen {
	return &productsScreen{
		viewport:  newPageViewport(),
		discounts: discounts,
	}
}

func (p *productsScreen) Init() tea.Cmd { return nil }

func (p *productsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		resizePage(&p.viewport, size)
		return p, nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *productsScreen) View(ctx components.RenderContext) string {
	p.viewport.SetContent(p.content(ctx))
	return p.viewport.View()
}

func (p *productsScreen) CapturesInput() bool { return false }

func (p *productsScreen) content(ctx components.RenderContext) string {
	keyboard := components.NewProductCard("Aurora Keyboard", 12900).
		WithDescription("Low-profile mechanical, hot-swappable").
		WithRating(4.5, 210).
		WithBadge(components.SuccessBadge("NEW"))
	if p.discounts {
		keyboard = keyboard.WithOriginalPrice(15900)
	}

	trackball := components.NewProductCard("Orbit Trackball", 8900).
		WithDescription("Wireless, 6 programmable buttons").
		WithRating(4.8, 412)

	monitor := components.NewProductCard("Flux Monitor", 39900).
		WithDescription("27 inch, 4K, factory calibrated").
		WithRating(4.2, 97).
		WithCurrency("€")
	if p.discounts {
		monitor = monitor.WithOriginalPrice(49900).
			WithBadge(components.ErrorBadge("SALE"))
	}

	tags := []ui.Renderable{
		components.NewPriceTag(2500),
		components.NewPriceTag(15900).WithCurrency("€"),
	}
	if p.discounts {
		tags = append(tags, components.NewPriceTag(3999).WithOriginal(4999))
	}

	page := components.VStack(
		components.NewHeader("Products").
			WithSubtitle("Compositions for storefront terminals"),
		components.VerticalSpacer(1),
		components.HStack(keyboard, trackball).WithGap(1),
		monitor,
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Price tags"),
		components.HStack(tags...).WithGap(3),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Ratings"),
		components.NewRating(4.5).WithCount(210),
		components.NewRating(8.7).WithOutOf(10),
		components.NewRating(3.0).WithValueShown(false),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Avatars"),
		components.HStack(
			components.NewAvatar("Ada Lovelace").WithSize(components.SizeSmall),
			components.NewAvatar("Grace Hopper"),
			components.NewAvatar("Katherine Johnson").WithSize(components.SizeLarge),
			components.NewAvatar("Margaret Hamilton").WithFamily(components.PaletteCyan),
		).WithGap(2).WithCrossAlign(components.CrossCenter),
	).WithGap(0)

	return page.ViewWithContext(ctx)
}
