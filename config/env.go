package config

import (
	"fmt"
	"strconv"
	"time"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "VI_PONG_"

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays VI_PONG_* variables onto c
// Volume is given in percent (0-100), like the other audio settings of the game
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}

	if v, ok := get("WIN_TARGET"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("WIN_TARGET", v, err)
		}
		c.WinTarget = n
	}

	if v, ok := get("TICK_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("TICK_INTERVAL", v, err)
		}
		c.TickInterval = Duration{d}
	}

	if v, ok := get("REPEAT_DELAY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("REPEAT_DELAY", v, err)
		}
		c.RepeatDelay = Duration{d}
	}

	if v, ok := get("HOLD_WINDOW"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("HOLD_WINDOW", v, err)
		}
		c.HoldWindow = Duration{d}
	}

	if v, ok := get("DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("DEBUG", v, err)
		}
		c.Debug = b
	}

	if v, ok := get("AUDIO_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("AUDIO_ENABLED", v, err)
		}
		c.Audio.Enabled = b
	}

	if v, ok := get("AUDIO_VOLUME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("AUDIO_VOLUME", v, err)
		}
		c.Audio.MasterVolume = float64(n) / 100.0
	}

	if v, ok := get("AUDIO_MAX_VOICES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("AUDIO_MAX_VOICES", v, err)
		}
		c.Audio.MaxVoices = n
	}

	if v, ok := get("SPECTATOR_ADDR"); ok {
		c.Spectator.Address = v
	}

	return nil
}

func envError(name, value string, err error) error {
	return fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, value, err)
}
