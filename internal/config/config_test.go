package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "embedded YAML drifted from Default()")
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
grid:
  rows: 6
  cols: 7
  start: { row: 0, col: 0 }
  finish: { row: 5, col: 6 }
search:
  connectivity: "8"
animation:
  visit_interval: 25ms
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Grid.Rows)
	assert.Equal(t, 7, cfg.Grid.Cols)
	assert.Equal(t, 25*time.Millisecond, cfg.Animation.VisitInterval)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, 50*time.Millisecond, cfg.Animation.PathInterval)
	assert.Equal(t, "walls", cfg.Search.BlockedFinish)

	opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	assert.Equal(t, pathfind.Conn8, opts.Conn)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "missing custom config should fail")

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: [unclosed"), 0o600))

	cfg, err := Load(path)
	assert.Error(t, err, "malformed custom config should fail")
	assert.Equal(t, Default(), cfg, "a failed load should still hand back the defaults")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Grid.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Grid.Cols = -4 }},
		{"too large", func(c *Config) { c.Grid.Cols = MaxGridSide + 1 }},
		{"start outside", func(c *Config) { c.Grid.Start = Point{Row: 99, Col: 0} }},
		{"finish outside", func(c *Config) { c.Grid.Finish = Point{Row: 0, Col: -1} }},
		{"bad connectivity", func(c *Config) { c.Search.Connectivity = "6" }},
		{"bad finish policy", func(c *Config) { c.Search.BlockedFinish = "maybe" }},
		{"bad speed", func(c *Config) { c.Animation.Speed = "warp" }},
		{"negative interval", func(c *Config) { c.Animation.PathInterval = -time.Millisecond }},
		{"negative splash", func(c *Config) { c.Splash.Duration = -time.Second }},
		{"zero fps", func(c *Config) { c.UI.FPS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestBuildGrid(t *testing.T) {
	g, err := Default().BuildGrid()
	require.NoError(t, err)

	assert.Equal(t, 18, g.Rows())
	assert.Equal(t, 36, g.Cols())
	assert.Equal(t, grid.At(4, 8), g.Start())
	assert.Equal(t, grid.At(14, 21), g.Finish())
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Grid.Rows = 9
	cfg.Animation.Speed = SpeedFast

	data, err := Marshal(cfg)
	require.NoError(t, err)
	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, expected string
	}{
		{"~/x/y.db", filepath.Join(home, "x", "y.db")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"rel/~path", "rel/~path"},
		{"~other/file", "~other/file"},
	}
	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		require.NoError(t, err, "ExpandHome(%q)", tc.in)
		assert.Equal(t, tc.expected, got, "ExpandHome(%q)", tc.in)
	}
}
