package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyValueShowsLabelAndValue(t *testing.T) {
	view := NewKeyValue("Version", "1.4.2").View()

	assert.Contains(t, view, "Version")
	assert.Contains(t, view, "1.4.2")
}

func TestKeyValueLabelWidthPadsLabel(t *testing.T) {
	view := NewKeyValue("OS", "linux").WithLabelWidth(8).View()

	// The label is padded before styling, so the spaces sit inside the
	// rendered label segment.
	assert.Contains(t, view, "OS      ")
}

func TestKeyValueLabelWiderThanColumnIsNotTruncated(t *testing.T) {
	view := NewKeyValue("Architecture", "arm64").WithLabelWidth(4).View()

	assert.Contains(t, view, "Architecture")
	assert.Contains(t, view, "arm64")
}

func TestKeyValueSetValue(t *testing.T) {
	row := NewKeyValue("Status", "stopped")
	row.SetValue("running")

	assert.Equal(t, "running", row.Value())
	assert.Contains(t, row.View(), "running")
	assert.NotContains(t, row.View(), "stopped")
}

func TestKeyValueAccessors(t *testing.T) {
	row := NewKeyValue("Status", "running")

	assert.Equal(t, "Status", row.Label())
	assert.Equal(t, "running", row.Value())
}
