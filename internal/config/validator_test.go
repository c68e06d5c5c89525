package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/curio-ui/curio/internal/router"
	curioerrors "github.com/curio-ui/curio/pkg/errors"
)

func TestValidateNilConfig(t *testing.T) {
	t.Parallel()

	err := Validate(nil)

	require.Error(t, err)
	var validationErr *curioerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme = "neon"

	err := Validate(cfg)

	require.Error(t, err)
	var validationErr *curioerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "theme")
}

func TestValidateAcceptsEveryKnownRoute(t *testing.T) {
	t.Parallel()

	for _, route := range router.Routes() {
		cfg := Default()
		cfg.StartRoute = route.String()
		require.NoError(t, Validate(cfg), route)
	}
}

func TestValidateHexColours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		color string
		ok    bool
	}{
		{"#3b82f6", true},
		{"#FFF", true},
		{"3b82f6", false},
		{"#3b82f", false},
		{"blue", false},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Chart.Palette = []string{tt.color}

		err := Validate(cfg)
		if tt.ok {
			require.NoError(t, err, tt.color)
		} else {
			require.Error(t, err, tt.color)
		}
	}
}
