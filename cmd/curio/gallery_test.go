package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGalleryCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)

	// Point at a path with no file so the defaults apply.
	missing := filepath.Join(t.TempDir(), "curio.yaml")
	root.SetArgs(append([]string{"gallery", "--config", missing}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestGalleryCommandPrintsEverySection(t *testing.T) {
	output, err := runGalleryCommand(t)
	require.NoError(t, err)

	for _, title := range []string{
		"Typography", "Buttons", "Badges", "Alerts",
		"Cards", "Lists", "Commerce", "Charts",
	} {
		assert.Contains(t, output, title)
	}

	assert.Contains(t, output, "curio gallery --theme dark")
	assert.Contains(t, output, "Aurora Keyboard")
}

func TestGalleryCommandThemeFlag(t *testing.T) {
	output, err := runGalleryCommand(t, "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, output, "Typography")
}

func TestGalleryCommandUnknownTheme(t *testing.T) {
	_, err := runGalleryCommand(t, "--theme", "neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestGalleryCommandRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("them: dark\n"), 0o644))

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"gallery", "--config", path})

	require.Error(t, root.Execute())
}
