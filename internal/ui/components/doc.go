// Package components provides a declarative, theme-aware widget catalog for
// terminal applications.
//
// # Overview
//
// The package offers a React-inspired component model with Tailwind-style
// utilities, built on lipgloss for terminal rendering. Every widget is
// themeable, composable and type-safe.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - immutable theme definitions (colours, spacing, typography)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - composable widgets that render to strings
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext, so there
// is no global state:
//
//	theme := components.DefaultTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := component.ViewWithContext(ctx)
//
// For simple cases, View() uses the default theme automatically:
//
//	output := component.View()
//
// # Widgets
//
// Primitives:
//   - Text: styled text content
//   - Spacer: empty space for layout
//   - Divider: visual separators, plain or labelled
//
// Layout:
//   - Stack: vertical/horizontal arrangement with gaps and alignment
//   - Container: generic box with borders and padding
//
// Semantic:
//   - Card, Panel: grouped content with and without visual weight
//   - Button: filled, outline, ghost and link variants in three sizes
//   - Badge: status pills, counters and presence dots
//   - Alert: severity-coloured notification boxes
//   - Header: titles with optional subtitles
//   - ListItem, KeyValue: list row patterns
//   - Breadcrumb: navigation trails
//   - StatCard: headline metrics with deltas
//
// Commerce:
//   - Avatar: initials with a name-stable colour
//   - Rating: star ratings with counts
//   - PriceTag: prices with strike-through discounts
//   - ProductCard: a complete product listing row
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	card := NewCard().WithAppliers(
//		Background(PalettePrimary),
//		Padding(SpacingSizeLarge),
//		Border(BorderVariantRounded),
//	)
//
// Available modifiers:
//   - Background(slot): semantic background colour with matching foreground
//   - Foreground(slot): semantic text colour
//   - Border(variant), BorderForeground(slot): border style and tint
//   - Padding/PaddingX/PaddingY(size): spacing from the theme scale
//   - Margin/MarginX/MarginY(size): margin from the theme scale
//   - Typography(variant): typography preset from the theme
//
// # Composition
//
// Components compose naturally through the Renderable interface:
//
//	content := VStack(
//		NewHeader("Storefront"),
//		HorizontalDivider(),
//		NewProductCard("Canvas Tote", 3499).
//			WithRating(4.5, 210).
//			WithBadge(AccentBadge("SALE")),
//	).WithGap(1)
//
// # Type Safety
//
// The package uses typed enums instead of magic strings: SpacingSize,
// ButtonVariant, PaletteSlot, BorderVariant, TypographyVariant, ControlSize.
// This gives compile-time safety and IDE autocomplete.
//
// # Custom Themes
//
// Create custom themes by modifying the default:
//
//	custom := components.DefaultTheme()
//	custom.Palette.Primary = components.ColourSet{
//		Base:   lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#ff5555"},
//		OnBase: lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"},
//	}
//	custom = custom.Normalize()
//
// Rendering is stateless and deterministic: the same component with the same
// context always produces the same output.
package components
