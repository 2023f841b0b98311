package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HANOI"

// PathEnv names the environment variable holding a config file path.
const PathEnv = EnvPrefix + "_CONFIG"

// Loader reads configuration with Viper.
type Loader struct {
	v    *viper.Viper
	used string
}

// NewLoader returns a loader with defaults and environment overrides
// registered.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())
	return &Loader{v: v}
}

// Load resolves the config file (see the package documentation), reads it
// and applies environment overrides. An explicit or HANOI_CONFIG path that
// does not exist is an error; a missing user config file is not.
func (l *Loader) Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		if p, ok := userConfigFile(); ok {
			path = p
		}
	}

	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "config file %s not found", path)
			}
			return nil, herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
		l.used = path
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFileUsed returns the file read by the last Load, or "".
func (l *Loader) ConfigFileUsed() string { return l.used }

// DefaultPath returns the user config file location, whether or not it
// exists.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "hanoi", "config.toml"), nil
}

func userConfigFile() (string, bool) {
	path, err := DefaultPath()
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// setDefaults registers every key so AutomaticEnv can see it during
// Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("disks", d.Disks)

	v.SetDefault("animation.steps_per_phase", d.Animation.StepsPerPhase)
	v.SetDefault("animation.tick_interval_ms", d.Animation.TickIntervalMS)
	v.SetDefault("animation.ticks_per_frame", d.Animation.TicksPerFrame)

	g := d.Geometry
	v.SetDefault("geometry.baseline_y", g.BaselineY)
	v.SetDefault("geometry.lift_y", g.LiftY)
	v.SetDefault("geometry.disk_height", g.DiskHeight)
	v.SetDefault("geometry.first_peg_x", g.FirstPegX)
	v.SetDefault("geometry.peg_spacing", g.PegSpacing)
	v.SetDefault("geometry.disk_base_width", g.DiskBaseWidth)
	v.SetDefault("geometry.disk_width_step", g.DiskWidthStep)
	v.SetDefault("geometry.peg_width", g.PegWidth)
	v.SetDefault("geometry.peg_height", g.PegHeight)
	v.SetDefault("geometry.platform_x", g.PlatformX)
	v.SetDefault("geometry.platform_width", g.PlatformWidth)
	v.SetDefault("geometry.platform_height", g.PlatformHeight)

	v.SetDefault("terminal.cell_width", d.Terminal.CellWidth)
	v.SetDefault("terminal.cell_height", d.Terminal.CellHeight)

	v.SetDefault("server.addr", d.Server.Addr)

	v.SetDefault("cache.disabled", d.Cache.Disabled)
	v.SetDefault("cache.ttl_hours", d.Cache.TTLHours)
}
