package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.WinTarget != parameter.DefaultWinTarget {
		t.Errorf("WinTarget = %d", cfg.WinTarget)
	}
	if cfg.TickInterval.Duration != 35*time.Millisecond {
		t.Errorf("TickInterval = %v", cfg.TickInterval)
	}
	if cfg.FrameGuard() != cfg.TickInterval.Duration/2 {
		t.Errorf("FrameGuard = %v", cfg.FrameGuard())
	}
	if cfg.Spectator.Enabled() {
		t.Error("spectator feed should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFileOverlay(t *testing.T) {
	path := writeConfig(t, `
win_target = 7
tick_interval = "20ms"

[audio]
enabled = false
volume = 0.3

[spectator]
address = "127.0.0.1:9090"

[keys]
x = "pause"
space = "none"
`)

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.WinTarget != 7 {
		t.Errorf("WinTarget = %d, want 7", cfg.WinTarget)
	}
	if cfg.TickInterval.Duration != 20*time.Millisecond {
		t.Errorf("TickInterval = %v, want 20ms", cfg.TickInterval)
	}
	// Untouched keys keep defaults
	if cfg.HoldWindow.Duration != parameter.HoldWindow || cfg.RepeatDelay.Duration != parameter.RepeatDelay {
		t.Errorf("hold = %v/%v, want defaults", cfg.RepeatDelay, cfg.HoldWindow)
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.3 {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if cfg.Audio.MaxVoices != parameter.AudioMaxVoices {
		t.Errorf("MaxVoices = %d, want default", cfg.Audio.MaxVoices)
	}
	if cfg.Spectator.Address != "127.0.0.1:9090" || cfg.Spectator.MaxPeers != parameter.SpectatorMaxPeers {
		t.Errorf("spectator = %+v", cfg.Spectator)
	}
	if cfg.Keys["x"] != "pause" || cfg.Keys["space"] != "none" {
		t.Errorf("keys = %v", cfg.Keys)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "win_targt = 3\n", "unknown keys: win_targt"},
		{"bad duration", "tick_interval = \"soon\"\n", "config"},
		{"syntax", "win_target = \n", "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().LoadFile(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		"VI_PONG_WIN_TARGET":       "9",
		"VI_PONG_TICK_INTERVAL":    "50ms",
		"VI_PONG_HOLD_WINDOW":      "200ms",
		"VI_PONG_REPEAT_DELAY":     "450ms",
		"VI_PONG_DEBUG":            "true",
		"VI_PONG_AUDIO_ENABLED":    "false",
		"VI_PONG_AUDIO_VOLUME":     "25",
		"VI_PONG_AUDIO_MAX_VOICES": "2",
		"VI_PONG_SPECTATOR_ADDR":   ":8080",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if cfg.WinTarget != 9 || cfg.TickInterval.Duration != 50*time.Millisecond ||
		cfg.HoldWindow.Duration != 200*time.Millisecond || cfg.RepeatDelay.Duration != 450*time.Millisecond || !cfg.Debug {
		t.Errorf("core settings = %+v", cfg)
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.25 || cfg.Audio.MaxVoices != 2 {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if cfg.Spectator.Address != ":8080" {
		t.Errorf("spectator address = %q", cfg.Spectator.Address)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	bad := []string{"WIN_TARGET", "TICK_INTERVAL", "REPEAT_DELAY", "HOLD_WINDOW", "DEBUG", "AUDIO_ENABLED", "AUDIO_VOLUME", "AUDIO_MAX_VOICES"}
	for _, name := range bad {
		err := Default().ApplyEnv(mapLookup(map[string]string{EnvPrefix + name: "nonsense"}))
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !strings.Contains(err.Error(), EnvPrefix+name) {
			t.Errorf("%s: error %q does not name the variable", name, err)
		}
	}

	// Empty values are ignored
	cfg := Default()
	if err := cfg.ApplyEnv(mapLookup(map[string]string{"VI_PONG_WIN_TARGET": ""})); err != nil {
		t.Errorf("empty value: %v", err)
	}
	if cfg.WinTarget != parameter.DefaultWinTarget {
		t.Errorf("WinTarget = %d, want default", cfg.WinTarget)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.WinTarget = -4
	cfg.Audio.MasterVolume = 7
	cfg.Spectator.MaxPeers = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.WinTarget != 1 {
		t.Errorf("WinTarget = %d, want 1", cfg.WinTarget)
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("volume = %f, want 1", cfg.Audio.MasterVolume)
	}
	if cfg.Spectator.MaxPeers != 1 {
		t.Errorf("MaxPeers = %d, want 1", cfg.Spectator.MaxPeers)
	}

	cfg = Default()
	cfg.TickInterval = Duration{0}
	if err := cfg.Validate(); !errors.Is(err, ErrBadTickInterval) {
		t.Errorf("expected ErrBadTickInterval, got %v", err)
	}

	cfg = Default()
	cfg.RepeatDelay = Duration{0}
	if err := cfg.Validate(); !errors.Is(err, ErrBadRepeatDelay) {
		t.Errorf("expected ErrBadRepeatDelay, got %v", err)
	}

	cfg = Default()
	cfg.HoldWindow = Duration{-time.Second}
	if err := cfg.Validate(); !errors.Is(err, ErrBadHoldWindow) {
		t.Errorf("expected ErrBadHoldWindow, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	// Isolate from the user's real config and environment
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("VI_PONG_CONFIG", "")
	t.Setenv("VI_PONG_WIN_TARGET", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if cfg.WinTarget != parameter.DefaultWinTarget {
		t.Errorf("WinTarget = %d", cfg.WinTarget)
	}

	if _, err := Load(filepath.Join(home, "missing.toml")); err == nil {
		t.Error("explicit missing file should fail")
	}

	path := writeConfig(t, "win_target = 3\n")
	t.Setenv("VI_PONG_WIN_TARGET", "11")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WinTarget != 11 {
		t.Errorf("environment should override the file, WinTarget = %d", cfg.WinTarget)
	}

	t.Setenv("VI_PONG_WIN_TARGET", "")
	t.Setenv("VI_PONG_CONFIG", path)
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load via VI_PONG_CONFIG: %v", err)
	}
	if cfg.WinTarget != 3 {
		t.Errorf("WinTarget = %d, want 3", cfg.WinTarget)
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatal(err)
	}
	if d.Duration != 90*time.Second {
		t.Errorf("parsed %v", d.Duration)
	}
	out, _ := d.MarshalText()
	if string(out) != "1m30s" {
		t.Errorf("marshaled %q", out)
	}
	if err := d.UnmarshalText([]byte("later")); err == nil {
		t.Error("expected error")
	}
}
