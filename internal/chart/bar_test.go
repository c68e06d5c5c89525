package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarChartScalesAgainstLargestValue(t *testing.T) {
	t.Parallel()

	view := NewBarChart(
		Datum{Label: "north", Value: 10},
		Datum{Label: "south", Value: 5},
	).WithWidth(10).WithValues(false).View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, 10, strings.Count(lines[0], "█"))
	assert.Equal(t, 5, strings.Count(lines[1], "█"))
}

func TestBarChartAlignsLabels(t *testing.T) {
	t.Parallel()

	view := NewBarChart(
		Datum{Label: "aa", Value: 1},
		Datum{Label: "aaaa", Value: 1},
	).View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)

	// Short labels are padded to the widest one, so the bars line up.
	assert.True(t, strings.HasPrefix(lines[0], "aa   "))
	assert.True(t, strings.HasPrefix(lines[1], "aaaa "))
}

func TestBarChartShowsValues(t *testing.T) {
	t.Parallel()

	view := NewBarChart(Datum{Label: "a", Value: 2.5}).View()

	assert.Contains(t, view, "2.5")
}

func TestBarChartEmptyWithoutPositiveValue(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewBarChart().View())
	assert.Empty(t, NewBarChart(Datum{Label: "a", Value: 0}).View())
	assert.Empty(t, NewBarChart(Datum{Label: "a", Value: -3}).View())
}

func TestBarChartIgnoresInvalidWidth(t *testing.T) {
	t.Parallel()

	b := NewBarChart(Datum{Label: "a", Value: 1}).WithWidth(0)

	assert.Equal(t, 24, b.width)
}
