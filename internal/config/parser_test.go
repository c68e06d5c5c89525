package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	curioerrors "github.com/curio-ui/curio/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `theme: dark
start_route: charts
debug: true
chart:
  palette: ["#3b82f6", "#f97316"]
demo:
  discounts: false
`

	invalidYAML := `theme: [not, a, string]
`

	unknownKey := `them: dark
`

	badRoute := `start_route: nowhere
`

	badColor := `chart:
  palette: ["blue"]
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "dark", cfg.Theme)
				require.Equal(t, "charts", cfg.StartRoute)
				require.True(t, cfg.Debug)
				require.Equal(t, []string{"#3b82f6", "#f97316"}, cfg.Chart.Palette)
				require.True(t, cfg.Demo.SignInProviders, "untouched toggle keeps its default")
				require.False(t, cfg.Demo.Discounts)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *curioerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "unknown key is rejected",
			contents: unknownKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *curioerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "them")
			},
		},
		{
			name:     "unknown start route returns validation error",
			contents: badRoute,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *curioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "route")
			},
		},
		{
			name:     "non-hex palette colour returns validation error",
			contents: badColor,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *curioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "hex_color")
			},
		},
		{
			name:     "empty document keeps defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := Load(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "curio.yaml"))

	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.Equal(t, "default", cfg.Theme)
	require.Equal(t, "home", cfg.StartRoute)
	require.True(t, cfg.Demo.SignInProviders)
	require.True(t, cfg.Demo.Discounts)
	require.NoError(t, Validate(cfg))
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "curio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}
