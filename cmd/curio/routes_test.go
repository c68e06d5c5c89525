package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curio-ui/curio/internal/router"
)

func TestRoutesCommandListsEveryDestination(t *testing.T) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"routes"})

	require.NoError(t, root.Execute())

	output := buf.String()
	assert.Contains(t, output, "ROUTE")
	for _, route := range router.Routes() {
		assert.Contains(t, output, route.String())
		assert.Contains(t, output, route.Title())
	}
}

func TestRoutesCommandJSONOutput(t *testing.T) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"routes", "--json"})

	require.NoError(t, root.Execute())

	var listings []routeListing
	require.NoError(t, json.Unmarshal(buf.Bytes(), &listings))

	require.Len(t, listings, len(router.Routes()))
	assert.Equal(t, "home", listings[0].Route)
	assert.Equal(t, "Home", listings[0].Title)
}
