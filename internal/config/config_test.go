package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcarve/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seamcarve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func validConfig() config.Config {
	cfg := config.Default()
	cfg.Inputs = []string{"in.png"}
	cfg.Vertical = 10

	return cfg
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
inputs: [a.png, b.jpg]
out_dir: out
width: 120
workers: 4
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.png", "b.jpg"}, cfg.Inputs)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "_carved", cfg.Suffix)
	assert.Equal(t, 90, cfg.JPEGQuality)
	assert.True(t, cfg.Resizing())
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := config.Load(writeFile(t, "verticle: 3\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"NoInputs", func(c *config.Config) { c.Inputs = nil }, config.ErrNoInputs},
		{"NegativeWorkers", func(c *config.Config) { c.Workers = -1 }, config.ErrBadWorkers},
		{"NegativeCount", func(c *config.Config) { c.Horizontal = -1 }, config.ErrBadSeamCount},
		{"NegativeTarget", func(c *config.Config) { c.Vertical = 0; c.Height = -2 }, config.ErrBadTarget},
		{"CountsAndTarget", func(c *config.Config) { c.Width = 50 }, config.ErrConflictingMode},
		{"NothingToDo", func(c *config.Config) { c.Vertical = 0 }, config.ErrNothingToDo},
		{"Quality", func(c *config.Config) { c.JPEGQuality = 101 }, config.ErrBadQuality},
		{"DPI", func(c *config.Config) { c.PDFDPI = 10 }, config.ErrBadDPI},
		{"LogLevel", func(c *config.Config) { c.Log.Level = "loud" }, config.ErrBadLogLevel},
		{"LogFormat", func(c *config.Config) { c.Log.Format = "xml" }, config.ErrBadLogFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

func TestValidate_EnergyDumpOnly(t *testing.T) {
	cfg := validConfig()
	cfg.Vertical = 0
	cfg.EnergyDump = true
	require.NoError(t, cfg.Validate())
}
