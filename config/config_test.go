package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tical/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tical.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
angle_unit = "rad"
precision = 6
history_limit = 25
plot_samples = 800
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, engine.Radians, cfg.Unit())
	assert.Equal(t, 6, cfg.Precision)
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, 800, cfg.PlotSamples)
	// Untouched keys keep their defaults.
	assert.Equal(t, 2, cfg.WindowScale)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `angle_unit = `},
		{"bad unit", `angle_unit = "gon"`},
		{"zero precision", `precision = 0`},
		{"one sample", `plot_samples = 1`},
		{"zero scale", `window_scale = 0`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.EngineOptions()
	assert.Equal(t, engine.Degrees, opts.Unit)
	assert.Equal(t, 10, opts.Precision)
	assert.Equal(t, 100, opts.HistoryLimit)
}
