package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/curio-ui/curio/internal/chart"
	"github.com/curio-ui/curio/internal/config"
	"github.com/curio-ui/curio/internal/ui/components"
)

type galleryOptions struct {
	theme string
}

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print every component once, no interaction needed",
		Long: `Print a static rendering of the full component catalog to stdout.
Useful for piping, screenshots and terminals where the interactive
showcase cannot run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme to render with: default, dark or light (overrides the config file)")

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags, opts *galleryOptions) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	name := cfg.Theme
	if opts.theme != "" {
		name = opts.theme
	}
	theme, err := galleryTheme(name)
	if err != nil {
		return err
	}

	ctx := components.DefaultContext().WithTheme(theme)
	w := cmd.OutOrStdout()

	for _, section := range gallerySections(cfg) {
		banner := components.NewDivider().WithLabel(section.title).WithWidth(60)
		fmt.Fprintln(w, banner.ViewWithContext(ctx))
		fmt.Fprintln(w, section.body.ViewWithContext(ctx))
		fmt.Fprintln(w)
	}

	return nil
}

func galleryTheme(name string) (components.Theme, error) {
	switch name {
	case "", "default":
		return components.DefaultTheme(), nil
	case "dark":
		return components.DarkTheme(), nil
	case "light":
		return components.LightTheme(), nil
	}
	return components.Theme{}, fmt.Errorf("unknown theme %q (expected default, dark or light)", name)
}

type gallerySection struct {
	title string
	body  *components.Stack
}

func gallerySections(cfg *config.Config) []gallerySection {
	return []gallerySection{
		{title: "Typography", body: typographySection()},
		{title: "Buttons", body: buttonsSection()},
		{title: "Badges", body: badgesSection()},
		{title: "Alerts", body: alertsSection()},
		{title: "Cards", body: cardsSection()},
		{title: "Lists", body: listsSection()},
		{title: "Commerce", body: commerceSection(cfg.Demo.Discounts)},
		{title: "Charts", body: chartsSection(cfg.Chart.Palette)},
	}
}

func typographySection() *components.Stack {
	return components.VStack(
		components.TitleText("Curio component gallery"),
		components.SubtitleText("Every widget, printed once"),
		components.NewText("Body copy for paragraphs and descriptions."),
		components.BoldText("Bold for phrases that matter."),
		components.EmphasisText("Emphasis for quiet asides."),
		components.CodeText("curio gallery --theme dark"),
		components.LabelText("Form labels and annotations"),
		components.CaptionText("Captions sit under content."),
		components.NewHeader("Section heading").WithSubtitle("With supporting context"),
	).WithGap(0)
}

func buttonsSection() *components.Stack {
	return components.VStack(
		components.HStack(
			components.PrimaryButton("Primary"),
			components.SecondaryButton("Secondary"),
			components.SuccessButton("Success"),
			components.DangerButton("Danger"),
			components.WarningButton("Warning"),
		).WithGap(1),
		components.HStack(
			components.OutlineButton("Outline"),
			components.GhostButton("Ghost"),
			components.LinkButton("Link"),
			components.IconButton("⚙"),
		).WithGap(1),
		components.HStack(
			components.PrimaryButton("Small").WithSize(components.SizeSmall),
			components.PrimaryButton("Medium"),
			components.PrimaryButton("Large").WithSize(components.SizeLarge),
		).WithGap(1),
		components.HStack(
			components.PrimaryButton("Disabled").WithDisabled(true),
			components.PrimaryButton("Active").WithActive(true),
			components.SuccessButton("Save").WithIcon("✓"),
		).WithGap(1),
	).WithGap(1)
}

func badgesSection() *components.Stack {
	return components.HStack(
		components.PrimaryBadge("primary"),
		components.SecondaryBadge("secondary"),
		components.SuccessBadge("success"),
		components.WarningBadge("warning"),
		components.ErrorBadge("error"),
		components.InfoBadge("info"),
		components.AccentBadge("accent"),
		components.CounterBadge(12),
		components.DotBadge(),
	).WithGap(1)
}

func alertsSection() *components.Stack {
	return components.VStack(
		components.SuccessAlert("Everything deployed cleanly.").WithTitle("Success"),
		components.InfoAlert("A new version is available."),
		components.WarningAlert("Disk usage is above 80%."),
		components.ErrorAlert("Connection to the database was lost.").WithTitle("Error"),
	).WithGap(1)
}

func cardsSection() *components.Stack {
	profile := components.NewCard(
		components.HStack(
			components.NewAvatar("Ada Lovelace"),
			components.HorizontalSpacer(1),
			components.VStack(
				components.BoldText("Ada Lovelace"),
				components.CaptionText("ada@example.com"),
			),
		).WithCrossAlign(components.CrossCenter),
	).WithTitle("Profile").WithFooter(components.CaptionText("Updated moments ago"))

	stats := components.HStack(
		components.NewStatCard("Revenue", "$12,480").WithDelta(12.5, "%"),
		components.NewStatCard("Sessions", "1,284").WithDelta(-3.2, "%"),
		components.NewStatCard("Uptime", "99.98%"),
	).WithGap(1)

	activity := components.NewPanel(
		components.NewKeyValue("Deploys", "14").WithLabelWidth(10),
		components.NewKeyValue("Incidents", "0").WithLabelWidth(10),
		components.NewKeyValue("Reviews", "27").WithLabelWidth(10),
	).WithTitle("This week")

	return components.VStack(profile, stats, activity).WithGap(1)
}

func listsSection() *components.Stack {
	return components.VStack(
		components.NewListItem("Ada Lovelace").
			WithSubtitle("ada@example.com").
			WithLeading(components.NewAvatar("Ada Lovelace").WithSize(components.SizeSmall)).
			WithTrailing(components.CounterBadge(3)),
		components.DisclosureItem("Notifications").WithSubtitle("12 unread"),
		components.NewListItem("Storage").
			WithSubtitle("82% of 512 GB used").
			WithTrailing(components.WarningBadge("review")),
		components.NewKeyValue("Region", "eu-west-1").WithLabelWidth(10),
		components.NewBreadcrumb("Home", "Products", "Aurora Keyboard"),
	).WithGap(1)
}

func commerceSection(discounts bool) *components.Stack {
	keyboard := components.NewProductCard("Aurora Keyboard", 12900).
		WithDescription("Low-profile mechanical keyboard with hot-swap switches.").
		WithRating(4.5, 210).
		WithBadge(components.SuccessBadge("NEW"))
	if discounts {
		keyboard = keyboard.WithOriginalPrice(15900)
	}

	price := components.NewPriceTag(2500)
	if discounts {
		price = components.NewPriceTag(3999).WithOriginal(4999)
	}

	return components.VStack(
		keyboard,
		components.HStack(
			price,
			components.NewPriceTag(15900).WithCurrency("€"),
		).WithGap(2),
		components.NewRating(4.5).WithCount(210),
		components.HStack(
			components.NewAvatar("Ada Lovelace").WithSize(components.SizeSmall),
			components.NewAvatar("Grace Hopper"),
			components.NewAvatar("Alan Turing").WithSize(components.SizeLarge),
		).WithGap(1).WithCrossAlign(components.CrossCenter),
	).WithGap(1)
}

func chartsSection(palette []string) *components.Stack {
	colors := make([]lipgloss.Color, 0, len(palette))
	for _, hex := range palette {
		colors = append(colors, lipgloss.Color(hex))
	}

	usage := []chart.Datum{
		{ID: "go", Label: "Go", Value: 42},
		{ID: "rust", Label: "Rust", Value: 26},
		{ID: "python", Label: "Python", Value: 18},
		{ID: "other", Label: "Other", Value: 14},
	}
	week := []chart.Datum{
		{ID: "mon", Label: "Mon", Value: 12},
		{ID: "tue", Label: "Tue", Value: 19},
		{ID: "wed", Label: "Wed", Value: 7},
		{ID: "thu", Label: "Thu", Value: 23},
		{ID: "fri", Label: "Fri", Value: 15},
	}

	pie := chart.NewPie(usage...)
	donut := chart.NewPie(usage...).AsDonut().WithLegend(false)
	bars := chart.NewBarChart(week...)
	if len(colors) > 0 {
		pie = pie.WithColors(colors...)
		donut = donut.WithColors(colors...)
		bars = bars.WithColors(colors...)
	}

	return components.VStack(
		components.HStack(
			components.NewText(pie.View()),
			components.HorizontalSpacer(4),
			components.NewText(donut.View()),
		),
		components.NewText(bars.View()),
		components.NewText(chart.NewGauge(66, 0, 100).WithLabel("CPU").View()),
		components.NewText(chart.NewSparkline(8, 12, 7, 14, 21, 19, 26, 24, 31, 27).View()),
	).WithGap(1)
}
