package components

import (
	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades is a Tailwind-style colour scale with 10 shades ordered
// from lightest to darkest, indexed 50 through 900.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades builds a shade scale from up to 10 colours ordered
// lightest first.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at the given shade, or an empty string when the
// shade is out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorPalette groups the raw colour families available to the catalog.
type ColorPalette struct {
	Slate  PaletteShades
	Blue   PaletteShades
	Green  PaletteShades
	Red    PaletteShades
	Yellow PaletteShades
	Orange PaletteShades
	Purple PaletteShades
	Cyan   PaletteShades
}

// Shades returns the scale for a colour family.
func (cp ColorPalette) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteSlate:
		return cp.Slate
	case PaletteBlue:
		return cp.Blue
	case PaletteGreen:
		return cp.Green
	case PaletteRed:
		return cp.Red
	case PaletteYellow:
		return cp.Yellow
	case PaletteOrange:
		return cp.Orange
	case PalettePurple:
		return cp.Purple
	case PaletteCyan:
		return cp.Cyan
	default:
		return cp.Slate
	}
}

// SpacingSize enumerates the spacing tokens on the theme scale.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
	SpacingSizeDoubleExtraLarge
	SpacingSizeTripleExtraLarge
	SpacingSizeQuadExtraLarge
)

const spacingSizeCount = int(SpacingSizeQuadExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores separate spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant is a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantLabel
	TypographyVariantCaption
	TypographyVariantCode
	TypographyVariantEmphasis

	TypographyVariantTextXs
	TypographyVariantTextSm
	TypographyVariantTextBase
	TypographyVariantTextLg
	TypographyVariantTextXl
	TypographyVariantText2Xl
	TypographyVariantText3Xl

	TypographyVariantFontLight
	TypographyVariantFontNormal
	TypographyVariantFontMedium
	TypographyVariantFontSemibold
	TypographyVariantFontBold
)

// PaletteFamily selects a raw colour family.
type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteBlue
	PaletteGreen
	PaletteRed
	PaletteYellow
	PaletteOrange
	PalettePurple
	PaletteCyan
)

// PaletteShade selects a step on a colour family's scale.
type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// BorderVariant selects one of the theme's border styles.
type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// ButtonVariant selects a button's visual treatment. Filled variants carry
// a background; Outline, Ghost and Link render without one.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantDanger
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
	ButtonVariantOutline
	ButtonVariantGhost
	ButtonVariantLink
)

// AlertVariant selects an alert's severity treatment.
type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
	AlertVariantWarning
	AlertVariantInfo
)

// InputState describes the visual state of an input control.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateError
	InputStateDisabled
)

// Palette holds the semantic colour slots components style themselves
// with. Accent is the commerce highlight used by price tags and ratings.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Accent    ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups the reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains the semantic typography presets and weights.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Label    lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style

	TextXs   lipgloss.Style
	TextSm   lipgloss.Style
	TextBase lipgloss.Style
	TextLg   lipgloss.Style
	TextXl   lipgloss.Style
	Text2Xl  lipgloss.Style
	Text3Xl  lipgloss.Style

	FontLight    lipgloss.Style
	FontNormal   lipgloss.Style
	FontMedium   lipgloss.Style
	FontSemibold lipgloss.Style
	FontBold     lipgloss.Style
}

// InputStyles describes the per-state styles for input controls.
type InputStyles struct {
	Default  lipgloss.Style
	Focus    lipgloss.Style
	Error    lipgloss.Style
	Disabled lipgloss.Style
}

// VariantRegistry maps component variants to styling strategies, letting
// themes define variant treatment as data instead of code.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[interface{}]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if none is registered.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Build one once and reuse it; all
// modification paths return new values rather than mutating in place.
type Theme struct {
	Palette    Palette
	Colors     ColorPalette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// Normalize fills in zero-valued theme fields with sensible defaults so
// partially specified themes still render.
func (t Theme) Normalize() Theme {
	t.Spacing = normalizeSpacingConfig(t.Spacing)
	return t
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:             0,
		SpacingSizeExtraSmall:       2,
		SpacingSizeSmall:            3,
		SpacingSizeMedium:           4,
		SpacingSizeLarge:            5,
		SpacingSizeExtraLarge:       6,
		SpacingSizeDoubleExtraLarge: 7,
		SpacingSizeTripleExtraLarge: 8,
		SpacingSizeQuadExtraLarge:   9,
	}
}

// DefaultTheme returns the catalog's standard theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Accent: ColourSet{
			Base:     ac("#f97316", "#fb923c"),
			OnBase:   ac("#431407", "#431407"),
			Muted:    ac("#ea580c", "#c2410c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	colorFamilies := ColorPalette{
		Slate: NewPaletteShades(
			lipgloss.Color("#f8fafc"),
			lipgloss.Color("#f1f5f9"),
			lipgloss.Color("#e2e8f0"),
			lipgloss.Color("#cbd5e1"),
			lipgloss.Color("#94a3b8"),
			lipgloss.Color("#64748b"),
			lipgloss.Color("#475569"),
			lipgloss.Color("#334155"),
			lipgloss.Color("#1e293b"),
			lipgloss.Color("#0f172a"),
		),
		Blue: NewPaletteShades(
			lipgloss.Color("#eff6ff"),
			lipgloss.Color("#dbeafe"),
			lipgloss.Color("#bfdbfe"),
			lipgloss.Color("#93c5fd"),
			lipgloss.Color("#60a5fa"),
			lipgloss.Color("#3b82f6"),
			lipgloss.Color("#2563eb"),
			lipgloss.Color("#1d4ed8"),
			lipgloss.Color("#1e40af"),
			lipgloss.Color("#1e3a8a"),
		),
		Green: NewPaletteShades(
			lipgloss.Color("#f0fdf4"),
			lipgloss.Color("#dcfce7"),
			lipgloss.Color("#bbf7d0"),
			lipgloss.Color("#86efac"),
			lipgloss.Color("#4ade80"),
			lipgloss.Color("#22c55e"),
			lipgloss.Color("#16a34a"),
			lipgloss.Color("#15803d"),
			lipgloss.Color("#166534"),
			lipgloss.Color("#14532d"),
		),
		Red: NewPaletteShades(
			lipgloss.Color("#fef2f2"),
			lipgloss.Color("#fee2e2"),
			lipgloss.Color("#fecaca"),
			lipgloss.Color("#fca5a5"),
			lipgloss.Color("#f87171"),
			lipgloss.Color("#ef4444"),
			lipgloss.Color("#dc2626"),
			lipgloss.Color("#b91c1c"),
			lipgloss.Color("#991b1b"),
			lipgloss.Color("#7f1d1d"),
		),
		Yellow: NewPaletteShades(
			lipgloss.Color("#fefce8"),
			lipgloss.Color("#fef3c7"),
			lipgloss.Color("#fde68a"),
			lipgloss.Color("#fcd34d"),
			lipgloss.Color("#fbbf24"),
			lipgloss.Color("#eab308"),
			lipgloss.Color("#ca8a04"),
			lipgloss.Color("#a16207"),
			lipgloss.Color("#854d0e"),
			lipgloss.Color("#713f12"),
		),
		Orange: NewPaletteShades(
			lipgloss.Color("#fff7ed"),
			lipgloss.Color("#ffedd5"),
			lipgloss.Color("#fed7aa"),
			lipgloss.Color("#fdba74"),
			lipgloss.Color("#fb923c"),
			lipgloss.Color("#f97316"),
			lipgloss.Color("#ea580c"),
			lipgloss.Color("#c2410c"),
			lipgloss.Color("#9a3412"),
			lipgloss.Color("#7c2d12"),
		),
		Purple: NewPaletteShades(
			lipgloss.Color("#faf5ff"),
			lipgloss.Color("#f3e8ff"),
			lipgloss.Color("#e9d5ff"),
			lipgloss.Color("#d8b4fe"),
			lipgloss.Color("#c084fc"),
			lipgloss.Color("#a855f7"),
			lipgloss.Color("#9333ea"),
			lipgloss.Color("#7c3aed"),
			lipgloss.Color("#6b21a8"),
			lipgloss.Color("#581c87"),
		),
		Cyan: NewPaletteShades(
			lipgloss.Color("#ecfeff"),
			lipgloss.Color("#cffafe"),
			lipgloss.Color("#a5f3fc"),
			lipgloss.Color("#67e8f9"),
			lipgloss.Color("#22d3ee"),
			lipgloss.Color("#06b6d4"),
			lipgloss.Color("#0891b2"),
			lipgloss.Color("#0e7490"),
			lipgloss.Color("#155e75"),
			lipgloss.Color("#164e63"),
		),
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	typography := defaultTypography(palette)

	spacing := SpacingConfig{
		Padding: defaultSpacingTable(),
		Margin:  defaultSpacingTable(),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1).
			Background(palette.Surface.Base).
			Foreground(palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Primary.Base).
			Padding(0, 1).
			Background(palette.Surface.Base).
			Foreground(palette.Surface.OnBase),
		Error: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Danger.Base).
			Padding(0, 1).
			Background(palette.Surface.Base).
			Foreground(palette.Surface.OnBase),
		Disabled: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1).
			Background(palette.Surface.Muted).
			Foreground(palette.Neutral.Base).
			Faint(true),
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)
	registerAlertVariants(variants)

	theme := Theme{
		Palette:    palette,
		Colors:     colorFamilies,
		Borders:    borders,
		Spacing:    spacing,
		Typography: typography,
		Input:      input,
		Variants:   variants,
	}

	return theme.Normalize()
}

func registerButtonVariants(registry *VariantRegistry) {
	filled := func(slot PaletteSlot) StyleStrategy {
		return NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeMedium),
			PaddingY(SpacingSizeExtraSmall),
		)
	}

	registry.Register(ButtonVariantPrimary, filled(PalettePrimary))
	registry.Register(ButtonVariantSecondary, filled(PaletteSecondary))
	registry.Register(ButtonVariantSuccess, filled(PaletteSuccess))
	registry.Register(ButtonVariantDanger, filled(PaletteDanger))
	registry.Register(ButtonVariantWarning, filled(PaletteWarning))
	registry.Register(ButtonVariantInfo, filled(PaletteInfo))
	registry.Register(ButtonVariantMuted, filled(PaletteNeutral))

	registry.Register(ButtonVariantOutline, NewCompositeStrategy(
		Foreground(PalettePrimary),
		Border(BorderVariantRounded),
		BorderForeground(PalettePrimary),
		PaddingX(SpacingSizeMedium),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Foreground(PalettePrimary),
		PaddingX(SpacingSizeMedium),
	))
	registry.Register(ButtonVariantLink, NewCompositeStrategy(
		Foreground(PalettePrimary),
		func(base lipgloss.Style, _ Theme) lipgloss.Style {
			return base.Underline(true)
		},
	))
}

func registerBadgeVariants(registry *VariantRegistry) {
	pill := func(slot PaletteSlot) StyleStrategy {
		return NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeSmall),
			Border(BorderVariantRounded),
		)
	}

	registry.Register(BadgeVariantDefault, pill(PaletteNeutral))
	registry.Register(BadgeVariantPrimary, pill(PalettePrimary))
	registry.Register(BadgeVariantSecondary, pill(PaletteSecondary))
	registry.Register(BadgeVariantAccent, pill(PaletteAccent))
	registry.Register(BadgeVariantSuccess, pill(PaletteSuccess))
	registry.Register(BadgeVariantWarning, pill(PaletteWarning))
	registry.Register(BadgeVariantError, pill(PaletteDanger))
	registry.Register(BadgeVariantInfo, pill(PaletteInfo))
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(
		Background(PaletteSuccess),
	))
	registry.Register(AlertVariantWarning, NewCompositeStrategy(
		Background(PaletteWarning),
	))
	registry.Register(AlertVariantError, NewCompositeStrategy(
		Background(PaletteDanger),
	))
	registry.Register(AlertVariantInfo, NewCompositeStrategy(
		Background(PaletteInfo),
	))
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	title := base.
		Bold(true).
		Foreground(p.Primary.Base)

	subtitle := base.
		Foreground(p.Secondary.Muted).
		Faint(true)

	body := base

	label := base.
		Bold(true).
		Foreground(p.Neutral.Base)

	caption := base.
		Faint(true).
		Foreground(p.Neutral.Base)

	code := base.
		Foreground(p.Secondary.Base).
		Background(p.Surface.Muted).
		Padding(0, 1)

	emphasis := base.
		Bold(true)

	return TypographyScale{
		Base:       body,
		Title:      title,
		Subtitle:   subtitle,
		Body:       body,
		Label:      label,
		Caption:    caption,
		Code:       code,
		Emphasis:   emphasis,
		TextXs:     body.Faint(true),
		TextSm:     body,
		TextBase:   body,
		TextLg:     body.Bold(true),
		TextXl:     body.Bold(true).Underline(true),
		Text2Xl:    body.Bold(true).Underline(true).MarginTop(1),
		Text3Xl:    body.Bold(true).Underline(true).MarginTop(1).MarginBottom(1),
		FontLight:  body.Faint(true),
		FontNormal: body,
		FontMedium: body.Bold(true),
		FontSemibold: body.
			Bold(true).
			Underline(true),
		FontBold: body.
			Bold(true).
			Italic(true),
	}
}

// DarkTheme returns a variant tuned for dark terminals.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}

	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	theme.Typography = defaultTypography(theme.Palette)

	// Variant strategies capture palette slots, so rebuild against the
	// adjusted palette.
	theme.Variants = NewVariantRegistry()
	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)
	registerAlertVariants(theme.Variants)

	return theme.Normalize()
}

// LightTheme returns a light theme variant.
func LightTheme() Theme {
	return DefaultTheme()
}

// PaletteColor returns the colour for a family and shade, with ok=false
// when the shade is invalid.
func PaletteColor(theme Theme, family PaletteFamily, shade PaletteShade) (lipgloss.Color, bool) {
	shades := theme.Colors.Shades(family)
	color := shades.Color(shade)
	if color == "" {
		return "", false
	}
	return color, true
}

// BorderForVariant returns the border definition for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size token.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size token.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the typography preset for the given variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantTextXs:
		return typo.TextXs
	case TypographyVariantTextSm:
		return typo.TextSm
	case TypographyVariantTextBase:
		return typo.TextBase
	case TypographyVariantTextLg:
		return typo.TextLg
	case TypographyVariantTextXl:
		return typo.TextXl
	case TypographyVariantText2Xl:
		return typo.Text2Xl
	case TypographyVariantText3Xl:
		return typo.Text3Xl
	case TypographyVariantFontLight:
		return typo.FontLight
	case TypographyVariantFontNormal:
		return typo.FontNormal
	case TypographyVariantFontMedium:
		return typo.FontMedium
	case TypographyVariantFontSemibold:
		return typo.FontSemibold
	case TypographyVariantFontBold:
		return typo.FontBold
	default:
		return typo.Base
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	input := theme.Input
	switch state {
	case InputStateFocus:
		return input.Focus
	case InputStateError:
		return input.Error
	case InputStateDisabled:
		return input.Disabled
	default:
		return input.Default
	}
}

// ColourSet is a semantic colour group whose members are designed to work
// together:
//
//   - Base: the primary background or brand colour
//   - OnBase: content colour that contrasts with Base
//   - Muted: a desaturated variant of Base for subtle accents
//   - Contrast: an accent that pops against Base
//
// All members are adaptive, carrying light and dark mode values.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot selects a semantic colour slot from a Palette. Use the
// predefined slots for type-safe access.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots. Combine with the style modifiers:
// Background(PalettePrimary), Foreground(PaletteSuccess), and so on.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteAccent    PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour together with the
// matching on-base foreground, keeping text legible.
//
// Example:
//
//	card := NewCard().WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour, leaving the background
// untouched.
//
// Example:
//
//	text := NewText("Error").WithAppliers(Foreground(PaletteDanger))
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderForeground tints an existing border with a semantic colour.
func BorderForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.BorderForeground(cs.Base)
	}
}

// Padding applies uniform padding from the theme scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.Padding(value)
	}
}

// PaddingX applies horizontal padding from the theme scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies vertical padding from the theme scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Margin applies uniform margin from the theme scale.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.Margin(value)
	}
}

// MarginX applies horizontal margin from the theme scale.
func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// MarginY applies vertical margin from the theme scale.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Predefined style bundles for common component patterns.

// CardBaseStyle returns the default card treatment.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Background(PaletteSurface),
		Border(BorderVariantRounded),
		Margin(SpacingSizeSmall),
		Padding(SpacingSizeMedium),
	}
}

// ButtonPrimaryStyle returns the primary button treatment as raw appliers.
func ButtonPrimaryStyle() []StyleFunc {
	return []StyleFunc{
		Background(PalettePrimary),
		Border(BorderVariantRounded),
		PaddingX(SpacingSizeMedium),
		PaddingY(SpacingSizeSmall),
		Typography(TypographyVariantEmphasis),
	}
}

// ButtonSecondaryStyle returns the secondary button treatment as raw
// appliers.
func ButtonSecondaryStyle() []StyleFunc {
	return []StyleFunc{
		Background(PaletteSecondary),
		Border(BorderVariantRounded),
		PaddingX(SpacingSizeMedium),
		PaddingY(SpacingSizeSmall),
		Typography(TypographyVariantEmphasis),
	}
}

// BackgroundPalette creates a style with a background colour from a raw
// palette shade.
func BackgroundPalette(theme Theme, family PaletteFamily, shade PaletteShade) lipgloss.Style {
	if color, ok := PaletteColor(theme, family, shade); ok {
		return lipgloss.NewStyle().Background(color)
	}
	return lipgloss.NewStyle()
}

// TextPalette creates a style with a foreground colour from a raw palette
// shade.
func TextPalette(theme Theme, family PaletteFamily, shade PaletteShade) lipgloss.Style {
	if color, ok := PaletteColor(theme, family, shade); ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle()
}
