// Package config loads and writes the hanoi configuration file.
//
// Configuration is a TOML file read with Viper. Every key can be overridden
// by an environment variable with the HANOI_ prefix, dots replaced by
// underscores:
//
//	HANOI_DISKS=5
//	HANOI_ANIMATION_STEPS_PER_PHASE=10
//	HANOI_SERVER_ADDR=:9090
//
// The file is resolved in this order (first match wins):
//  1. An explicit path, e.g. from --config
//  2. HANOI_CONFIG
//  3. The user config directory: hanoi/config.toml
//     (~/.config/hanoi/config.toml on Linux)
//  4. No file; [Default] values only
package config

import (
	"time"

	"github.com/matzehuels/hanoi/pkg/animation"
	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/session"
)

// Config is the root configuration.
type Config struct {
	// Disks is the disk count the player and server start with.
	Disks     int             `mapstructure:"disks" toml:"disks"`
	Animation AnimationConfig `mapstructure:"animation" toml:"animation"`
	Geometry  GeometryConfig  `mapstructure:"geometry" toml:"geometry"`
	Terminal  TerminalConfig  `mapstructure:"terminal" toml:"terminal"`
	Server    ServerConfig    `mapstructure:"server" toml:"server"`
	Cache     CacheConfig     `mapstructure:"cache" toml:"cache"`
}

// AnimationConfig controls animation speed.
type AnimationConfig struct {
	// StepsPerPhase is the number of interpolation steps in each of the
	// lift, translate and drop phases.
	StepsPerPhase int `mapstructure:"steps_per_phase" toml:"steps_per_phase"`
	// TickIntervalMS is the delay between timer ticks in the player.
	TickIntervalMS int `mapstructure:"tick_interval_ms" toml:"tick_interval_ms"`
	// TicksPerFrame is how many driver ticks run per timer tick.
	TicksPerFrame int `mapstructure:"ticks_per_frame" toml:"ticks_per_frame"`
}

// TickInterval returns TickIntervalMS as a duration.
func (a AnimationConfig) TickInterval() time.Duration {
	return time.Duration(a.TickIntervalMS) * time.Millisecond
}

// GeometryConfig is the board layout in canvas units.
type GeometryConfig struct {
	BaselineY      float64 `mapstructure:"baseline_y" toml:"baseline_y"`
	LiftY          float64 `mapstructure:"lift_y" toml:"lift_y"`
	DiskHeight     float64 `mapstructure:"disk_height" toml:"disk_height"`
	FirstPegX      float64 `mapstructure:"first_peg_x" toml:"first_peg_x"`
	PegSpacing     float64 `mapstructure:"peg_spacing" toml:"peg_spacing"`
	DiskBaseWidth  float64 `mapstructure:"disk_base_width" toml:"disk_base_width"`
	DiskWidthStep  float64 `mapstructure:"disk_width_step" toml:"disk_width_step"`
	PegWidth       float64 `mapstructure:"peg_width" toml:"peg_width"`
	PegHeight      float64 `mapstructure:"peg_height" toml:"peg_height"`
	PlatformX      float64 `mapstructure:"platform_x" toml:"platform_x"`
	PlatformWidth  float64 `mapstructure:"platform_width" toml:"platform_width"`
	PlatformHeight float64 `mapstructure:"platform_height" toml:"platform_height"`
}

// Geometry converts the section to an [animation.Geometry].
func (g GeometryConfig) Geometry() animation.Geometry {
	return animation.Geometry(g)
}

func geometryConfig(g animation.Geometry) GeometryConfig {
	return GeometryConfig(g)
}

// TerminalConfig maps canvas units to character cells.
type TerminalConfig struct {
	CellWidth  float64 `mapstructure:"cell_width" toml:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height" toml:"cell_height"`
}

// ServerConfig configures `hanoi serve`.
type ServerConfig struct {
	Addr string `mapstructure:"addr" toml:"addr"`
}

// CacheConfig configures the rendered-tree cache.
type CacheConfig struct {
	Disabled bool `mapstructure:"disabled" toml:"disabled"`
	TTLHours int  `mapstructure:"ttl_hours" toml:"ttl_hours"`
}

// TTL returns TTLHours as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Disks: session.DefaultDisks,
		Animation: AnimationConfig{
			StepsPerPhase:  animation.DefaultStepsPerPhase,
			TickIntervalMS: 16,
			TicksPerFrame:  1,
		},
		Geometry: geometryConfig(animation.DefaultGeometry()),
		Terminal: TerminalConfig{CellWidth: 10, CellHeight: 24},
		Server:   ServerConfig{Addr: ":8080"},
		Cache:    CacheConfig{TTLHours: 7 * 24},
	}
}

// SessionOptions returns the options for a new [session.Session].
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Disks:         c.Disks,
		StepsPerPhase: c.Animation.StepsPerPhase,
		Geometry:      c.Geometry.Geometry(),
	}
}

// Validate checks the configuration. All failures carry the
// INVALID_CONFIG code.
func (c *Config) Validate() error {
	if err := herrors.ValidateDiskCount(c.Disks); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "disks: %d is out of range", c.Disks)
	}

	a := c.Animation
	switch {
	case a.StepsPerPhase < 1:
		return herrors.New(herrors.ErrCodeInvalidConfig, "animation.steps_per_phase must be at least 1")
	case a.TickIntervalMS < 1:
		return herrors.New(herrors.ErrCodeInvalidConfig, "animation.tick_interval_ms must be at least 1")
	case a.TicksPerFrame < 1:
		return herrors.New(herrors.ErrCodeInvalidConfig, "animation.ticks_per_frame must be at least 1")
	}

	if err := c.Geometry.Geometry().Validate(); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "geometry")
	}

	switch {
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return herrors.New(herrors.ErrCodeInvalidConfig, "terminal cell size must be positive")
	case c.Server.Addr == "":
		return herrors.New(herrors.ErrCodeInvalidConfig, "server.addr must not be empty")
	case c.Cache.TTLHours < 0:
		return herrors.New(herrors.ErrCodeInvalidConfig, "cache.ttl_hours must not be negative")
	}
	return nil
}
