package audio

import (
	"testing"

	"github.com/lixenwraith/vi-pong/parameter"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != parameter.DefaultAudioVolume {
		t.Errorf("Expected default master volume %f, got %f", parameter.DefaultAudioVolume, cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.MaxVoices != parameter.AudioMaxVoices {
		t.Errorf("Expected %d voices, got %d", parameter.AudioMaxVoices, cfg.MaxVoices)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for sound type %d to be set", st)
		}
	}
}

// TestNormalize verifies out-of-range values are repaired
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		cfg  AudioConfig
		vol  float64
		rate int
		max  int
	}{
		{"too loud", AudioConfig{MasterVolume: 3, SampleRate: 22050, MaxVoices: 2}, 1, 22050, 2},
		{"negative", AudioConfig{MasterVolume: -1, SampleRate: -5, MaxVoices: 0}, 0, parameter.AudioSampleRate, parameter.AudioMaxVoices},
		{"in range", AudioConfig{MasterVolume: 0.25, SampleRate: 48000, MaxVoices: 8}, 0.25, 48000, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Normalize()
			if cfg.MasterVolume != tt.vol {
				t.Errorf("volume = %f, want %f", cfg.MasterVolume, tt.vol)
			}
			if cfg.SampleRate != tt.rate {
				t.Errorf("rate = %d, want %d", cfg.SampleRate, tt.rate)
			}
			if cfg.MaxVoices != tt.max {
				t.Errorf("voices = %d, want %d", cfg.MaxVoices, tt.max)
			}
			if cfg.EffectVolumes == nil {
				t.Error("effect volumes not restored")
			}
		})
	}
}
