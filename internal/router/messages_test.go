package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoToProducesPushMessage(t *testing.T) {
	t.Parallel()

	cmd := GoTo(RouteCharts)
	require.NotNil(t, cmd)

	assert.Equal(t, GoToMsg{Route: RouteCharts}, cmd())
}

func TestReplaceWithProducesReplaceMessage(t *testing.T) {
	t.Parallel()

	cmd := ReplaceWith(RouteHome)
	require.NotNil(t, cmd)

	assert.Equal(t, GoToMsg{Route: RouteHome, Replace: true}, cmd())
}

func TestGoBackProducesBackMessage(t *testing.T) {
	t.Parallel()

	cmd := GoBack()
	require.NotNil(t, cmd)

	assert.Equal(t, BackMsg{}, cmd())
}
