package showcase

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/chart"
	"github.com/curio-ui/curio/internal/ui/components"
)

const chartTickInterval = 400 * time.Millisecond

// cpuWave is the repeating series behind the live sparkline.
var cpuWave = []float64{18, 24, 31, 46, 58, 71, 83, 76, 64, 49, 37, 26}

// chartsScreen renders every chart type, with a ticking load demo.
type chartsScreen struct {
	viewport viewport.Model
	progress progress.Model
	palette  []lipgloss.Color

	gen    int
	phase  int
	series []float64
	pct    float64
}

func newChartsScreen(paletteHex []string) *chartsScreen {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	return &chartsScreen{
		viewport: newPageViewport(),
		progress: bar,
		palette:  paletteColors(paletteHex),
		series:   append([]float64(nil), cpuWave...),
		pct:      0.4,
	}
}

// paletteColors converts configured hex colours for the chart painters.
func paletteColors(hexes []string) []lipgloss.Color {
	if len(hexes) == 0 {
		return nil
	}
	colors := make([]lipgloss.Color, len(hexes))
	for i, hex := range hexes {
		colors[i] = lipgloss.Color(hex)
	}
	return colors
}

func (c *chartsScreen) Init() tea.Cmd {
	// A fresh generation invalidates any tick still in flight from a
	// previous visit.
	c.gen++
	return c.tick()
}

func (c *chartsScreen) tick() tea.Cmd {
	gen := c.gen
	return tea.Tick(chartTickInterval, func(time.Time) tea.Msg {
		return chartTickMsg{gen: gen}
	})
}

func (c *chartsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		resizePage(&c.viewport, msg)
		return c, nil

	case chartTickMsg:
		if msg.gen != c.gen {
			return c, nil
		}
		c.advance()
		return c, c.tick()
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// advance rolls the live series forward one step.
func (c *chartsScreen) advance() {
	c.phase++
	c.series = append(c.series[1:], cpuWave[c.phase%len(cpuWave)])

	c.pct += 0.05
	if c.pct > 1 {
		c.pct = 0
	}
}

func (c *chartsScreen) View(ctx components.RenderContext) string {
	c.viewport.SetContent(c.content(ctx))
	return c.viewport.View()
}

func (c *chartsScreen) content(ctx components.RenderContext) string {
	share := []chart.Datum{
		{ID: "go", Label: "Go", Value: 42},
		{ID: "rust", Label: "Rust", Value: 26},
		{ID: "python", Label: "Python", Value: 18},
		{ID: "other", Label: "Other", Value: 14},
	}

	commits := []chart.Datum{
		{ID: "mon", Label: "Mon", Value: 12},
		{ID: "tue", Label: "Tue", Value: 19},
		{ID: "wed", Label: "Wed", Value: 7},
		{ID: "thu", Label: "Thu", Value: 23},
		{ID: "fri", Label: "Fri", Value: 15},
	}

	pie := chart.NewPie(share...)
	donut := chart.NewPie(share...).AsDonut().WithLegend(false)
	bars := chart.NewBarChart(commits...)
	if len(c.palette) > 0 {
		pie = pie.WithColors(c.palette...)
		donut = donut.WithColors(c.palette...)
		bars = bars.WithColors(c.palette...)
	}

	load := c.series[len(c.series)-1]

	page := components.VStack(
		components.NewHeader("Charts").
			WithSubtitle("Geometry first, glyphs second"),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Pie and donut"),
		components.HStack(
			rawText(pie.View()),
			components.HorizontalSpacer(4),
			rawText(donut.View()),
		),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Bars"),
		rawText(bars.View()),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Gauges"),
		rawText(chart.NewGauge(load, 0, 100).WithLabel("CPU").View()),
		rawText(chart.NewGauge(82, 0, 100).WithLabel("Disk").View()),
		rawText(c.progress.ViewAs(c.pct)),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Sparkline"),
		rawText(chart.NewSparkline(c.series...).View()),
		components.NewText("live series, sampled every 400ms").
			WithAppliers(components.Typography(components.TypographyVariantCaption)),
	).WithGap(0)

	return page.ViewWithContext(ctx)
}

func (c *chartsScreen) CapturesInput() bool { return false }
