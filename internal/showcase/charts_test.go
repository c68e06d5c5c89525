package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curio-ui/curio/internal/ui/components"
)

func TestCharts_AdvanceRollsSeries(t *testing.T) {
	c := newChartsScreen(nil)
	length := len(c.series)

	c.advance()

	assert.Len(t, c.series, length)
	assert.Equal(t, cpuWave[1], c.series[len(c.series)-1])
}

func TestCharts_ProgressWrapsAtFull(t *testing.T) {
	c := newChartsScreen(nil)
	c.pct = 0.98

	c.advance()

	assert.Zero(t, c.pct)
}

func TestCharts_TickAdvancesAndReschedules(t *testing.T) {
	c := newChartsScreen(nil)
	require.NotNil(t, c.Init())
	phase := c.phase

	_, cmd := c.Update(chartTickMsg{gen: c.gen})

	assert.Equal(t, phase+1, c.phase)
	require.NotNil(t, cmd)
}

func TestCharts_StaleTickIgnored(t *testing.T) {
	c := newChartsScreen(nil)
	require.NotNil(t, c.Init())
	phase := c.phase

	// A tick from before the latest Init carries an old generation.
	_, cmd := c.Update(chartTickMsg{gen: c.gen - 1})

	assert.Equal(t, phase, c.phase)
	assert.Nil(t, cmd)
}

func TestCharts_PaletteColors(t *testing.T) {
	assert.Nil(t, paletteColors(nil))

	colors := paletteColors([]string{"#ff0000", "#00ff00"})
	require.Len(t, colors, 2)
	assert.EqualValues(t, "#ff0000", colors[0])
}

func TestCharts_ContentShowsEverySection(t *testing.T) {
	c := newChartsScreen(nil)

	// The viewport clips to its height, so assert on the full page.
	page := c.content(components.DefaultContext())

	assert.Contains(t, page, "Pie and donut")
	assert.Contains(t, page, "Bars")
	assert.Contains(t, page, "Gauges")
	assert.Contains(t, page, "Sparkline")
	assert.Contains(t, page, "CPU")
}
