package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/hanoi/pkg/animation"
	herrors "github.com/matzehuels/hanoi/pkg/errors"
)

// isolate points the user config dir at an empty temp dir so a real
// ~/.config/hanoi/config.toml cannot leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(PathEnv, "")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Disks)
	assert.Equal(t, 30, cfg.Animation.StepsPerPhase)
	assert.Equal(t, 16*time.Millisecond, cfg.Animation.TickInterval())
	assert.Equal(t, 1, cfg.Animation.TicksPerFrame)
	assert.Equal(t, animation.DefaultGeometry(), cfg.Geometry.Geometry())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 168*time.Hour, cfg.Cache.TTL())
	assert.False(t, cfg.Cache.Disabled)

	opts := cfg.SessionOptions()
	assert.Equal(t, 4, opts.Disks)
	assert.Equal(t, 30, opts.StepsPerPhase)
}

func TestLoader_DefaultsOnly(t *testing.T) {
	isolate(t)

	l := NewLoader()
	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, l.ConfigFileUsed())
}

func TestLoader_LoadFromFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.toml", `
disks = 6

[animation]
steps_per_phase = 12

[geometry]
lift_y = 100.5

[server]
addr = "127.0.0.1:9000"
`)

	l := NewLoader()
	cfg, err := l.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, l.ConfigFileUsed())
	assert.Equal(t, 6, cfg.Disks)
	assert.Equal(t, 12, cfg.Animation.StepsPerPhase)
	assert.Equal(t, 16, cfg.Animation.TickIntervalMS, "unset keys keep defaults")
	assert.Equal(t, 100.5, cfg.Geometry.LiftY)
	assert.Equal(t, 450.0, cfg.Geometry.BaselineY)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestLoader_PathResolution(t *testing.T) {
	dir := isolate(t)

	userDir := filepath.Join(dir, "hanoi")
	require.NoError(t, os.MkdirAll(userDir, 0755))
	writeFile(t, userDir, "config.toml", "disks = 2\n")
	envPath := writeFile(t, dir, "env.toml", "disks = 3\n")
	flagPath := writeFile(t, dir, "flag.toml", "disks = 5\n")

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Disks, "user config dir")

	t.Setenv(PathEnv, envPath)
	cfg, err = NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Disks, "HANOI_CONFIG beats the user config dir")

	cfg, err = NewLoader().Load(flagPath)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Disks, "explicit path beats HANOI_CONFIG")
}

func TestLoader_EnvOverride(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "c.toml", "disks = 2\n[animation]\nticks_per_frame = 3\n")

	t.Setenv("HANOI_DISKS", "5")
	t.Setenv("HANOI_ANIMATION_STEPS_PER_PHASE", "10")
	t.Setenv("HANOI_CACHE_DISABLED", "true")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Disks, "env beats file")
	assert.Equal(t, 10, cfg.Animation.StepsPerPhase)
	assert.Equal(t, 3, cfg.Animation.TicksPerFrame)
	assert.True(t, cfg.Cache.Disabled)
}

func TestLoader_Errors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.toml")},
		{"malformed", writeFile(t, dir, "bad.toml", "disks = [\n")},
		{"invalid value", writeFile(t, dir, "range.toml", "disks = 9\n")},
		{"lift below pegs", writeFile(t, dir, "lift.toml", "[geometry]\nlift_y = 300\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Load(tt.path)
			require.Error(t, err)
			assert.True(t, herrors.Is(err, herrors.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero disks", func(c *Config) { c.Disks = 0 }},
		{"zero steps", func(c *Config) { c.Animation.StepsPerPhase = 0 }},
		{"zero interval", func(c *Config) { c.Animation.TickIntervalMS = 0 }},
		{"zero ticks per frame", func(c *Config) { c.Animation.TicksPerFrame = 0 }},
		{"negative disk height", func(c *Config) { c.Geometry.DiskHeight = -1 }},
		{"zero cell", func(c *Config) { c.Terminal.CellWidth = 0 }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"negative ttl", func(c *Config) { c.Cache.TTLHours = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, herrors.ErrCodeInvalidConfig, herrors.GetCode(err))
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sub", "config.toml")

	want := Default()
	want.Disks = 3
	want.Animation.TicksPerFrame = 2
	want.Geometry.LiftY = 120
	require.NoError(t, Write(path, want, false))

	got, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Error(t, Write(path, want, false), "existing file needs force")
	assert.NoError(t, Write(path, Default(), true))
}

func TestEncode(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "disks = 4")
	assert.Contains(t, s, "[animation]")
	assert.Contains(t, s, "steps_per_phase = 30")
	assert.Contains(t, s, "[geometry]")
	assert.Contains(t, s, "lift_y = 150.0")
	assert.Contains(t, s, `addr = ":8080"`)
}
