package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardRendersChildren(t *testing.T) {
	card := NewCard(NewText("body content"))

	require.NotNil(t, card)
	assert.Contains(t, card.View(), "body content")
}

func TestCardWithTitlePrependsHeader(t *testing.T) {
	card := NewCard(NewText("body")).WithTitle("Orders")

	view := card.View()
	assert.Contains(t, view, "Orders")
	assert.Contains(t, view, "body")

	children := card.Children()
	require.NotEmpty(t, children)
	header, ok := children[0].(*Header)
	require.True(t, ok, "first child should be the title header")
	assert.Equal(t, "Orders", header.Title())
}

func TestCardWithFooterAppendsDividerAndFooter(t *testing.T) {
	card := NewCard(NewText("body")).WithFooter(NewText("footer"))

	children := card.Children()
	require.GreaterOrEqual(t, len(children), 3)

	_, ok := children[len(children)-2].(*Divider)
	assert.True(t, ok, "penultimate child should be a divider")
	assert.Contains(t, card.View(), "footer")
}

func TestCardRendersBorder(t *testing.T) {
	view := NewCard(NewText("x")).View()
	assert.Contains(t, view, "╭", "card should use the rounded border")
}

func TestEmptyCardStillRenders(t *testing.T) {
	assert.NotEmpty(t, NewCard().View())
}

func TestPanelWithHeaderReplacesPriorHeader(t *testing.T) {
	panel := NewPanel(NewText("body")).WithTitle("First")
	panel.WithTitle("Second")

	view := panel.View()
	assert.Contains(t, view, "Second")
	assert.NotContains(t, view, "First")
	assert.Contains(t, view, "body")
}

func TestPanelWithFooterReplacesPriorFooter(t *testing.T) {
	panel := NewPanel(NewText("body")).WithFooter(NewText("old footer"))
	panel.WithFooter(NewText("new footer"))

	view := panel.View()
	assert.Contains(t, view, "new footer")
	assert.NotContains(t, view, "old footer")
}
