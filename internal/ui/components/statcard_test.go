package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatCardShowsTitleAndValue(t *testing.T) {
	view := NewStatCard("Revenue", "$12,400").View()

	assert.Contains(t, view, "Revenue")
	assert.Contains(t, view, "$12,400")
}

func TestStatCardPositiveDelta(t *testing.T) {
	view := NewStatCard("Revenue", "$12,400").WithDelta(12.5, "%").View()

	assert.Contains(t, view, "▲ 12.5%")
	assert.NotContains(t, view, "▼")
}

func TestStatCardNegativeDeltaShowsAbsoluteValue(t *testing.T) {
	view := NewStatCard("Churn", "3.1%").WithDelta(-0.4, "pt").View()

	assert.Contains(t, view, "▼ 0.4pt")
	assert.NotContains(t, view, "-0.4")
}

func TestStatCardZeroDeltaHidesArrow(t *testing.T) {
	view := NewStatCard("Users", "1,024").View()

	assert.NotContains(t, view, "▲")
	assert.NotContains(t, view, "▼")
}

func TestStatCardRendersInsideCard(t *testing.T) {
	assert.Contains(t, NewStatCard("Users", "1,024").View(), "╭")
}

func TestStatCardAccessors(t *testing.T) {
	card := NewStatCard("Users", "1,024")

	assert.Equal(t, "Users", card.Title())
	assert.Equal(t, "1,024", card.Value())
}
