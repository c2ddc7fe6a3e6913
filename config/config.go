// Package config resolves runtime settings from defaults, an optional TOML file,
// VI_PONG_* environment variables and command-line flags, in that order
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/network"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Duration is a time.Duration written as a Go duration string in TOML ("35ms")
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the resolved runtime configuration
type Config struct {
	WinTarget    int      `toml:"win_target"`
	TickInterval Duration `toml:"tick_interval"`
	RepeatDelay  Duration `toml:"repeat_delay"`
	HoldWindow   Duration `toml:"hold_window"`
	Debug        bool     `toml:"debug"`

	Audio     *audio.AudioConfig `toml:"audio"`
	Spectator *network.Config    `toml:"spectator"`

	// Keys maps a key to an action name, see input.ApplyBindings
	Keys map[string]string `toml:"keys"`
}

// Validation errors
var (
	ErrBadTickInterval = errors.New("tick interval must be positive")
	ErrBadRepeatDelay  = errors.New("repeat delay must be positive")
	ErrBadHoldWindow   = errors.New("hold window must be positive")
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		WinTarget:    parameter.DefaultWinTarget,
		TickInterval: Duration{parameter.TickInterval},
		RepeatDelay:  Duration{parameter.RepeatDelay},
		HoldWindow:   Duration{parameter.HoldWindow},
		Audio:        audio.DefaultAudioConfig(),
		Spectator:    network.DefaultConfig(),
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vi-pong", "config.toml")
}

// Load resolves defaults, then the file at path, then the environment
// An empty path falls back to VI_PONG_CONFIG and then DefaultPath; only an
// explicitly named file must exist
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if p, ok := os.LookupEnv(EnvPrefix + "CONFIG"); ok && p != "" {
			path, explicit = p, true
		} else {
			path = DefaultPath()
		}
	}

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays a TOML file onto cfg
// Unknown keys are rejected so typos do not pass silently
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate clamps soft limits and rejects unusable timing
func (c *Config) Validate() error {
	if c.WinTarget < parameter.MinWinTarget {
		c.WinTarget = parameter.MinWinTarget
	}
	if c.TickInterval.Duration <= 0 {
		return fmt.Errorf("%w: %s", ErrBadTickInterval, c.TickInterval)
	}
	if c.RepeatDelay.Duration <= 0 {
		return fmt.Errorf("%w: %s", ErrBadRepeatDelay, c.RepeatDelay)
	}
	if c.HoldWindow.Duration <= 0 {
		return fmt.Errorf("%w: %s", ErrBadHoldWindow, c.HoldWindow)
	}

	if c.Audio == nil {
		c.Audio = audio.DefaultAudioConfig()
	}
	c.Audio.Normalize()

	if c.Spectator == nil {
		c.Spectator = network.DefaultConfig()
	}
	if c.Spectator.MaxPeers < 1 {
		c.Spectator.MaxPeers = 1
	}
	return nil
}

// FrameGuard returns the minimum spacing between two executed ticks
func (c *Config) FrameGuard() time.Duration {
	return c.TickInterval.Duration / 2
}
