package audio

import (
	"github.com/lixenwraith/vi-pong/parameter"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool                  `toml:"enabled"`
	MasterVolume  float64               `toml:"volume"`
	SampleRate    int                   `toml:"sample_rate"`
	MaxVoices     int                   `toml:"max_voices"`
	EffectVolumes map[SoundType]float64 `toml:"-"`
}

// DefaultAudioConfig returns the default settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.DefaultAudioVolume,
		SampleRate:   parameter.AudioSampleRate,
		MaxVoices:    parameter.AudioMaxVoices,
		EffectVolumes: map[SoundType]float64{
			SoundHit:   0.8,
			SoundScore: 1.0,
		},
	}
}

// Normalize clamps volumes into [0,1] and restores defaults for unusable values
func (c *AudioConfig) Normalize() {
	c.MasterVolume = clampUnit(c.MasterVolume)
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
	if c.MaxVoices <= 0 {
		c.MaxVoices = parameter.AudioMaxVoices
	}
	if c.EffectVolumes == nil {
		c.EffectVolumes = DefaultAudioConfig().EffectVolumes
	}
	for st, v := range c.EffectVolumes {
		c.EffectVolumes[st] = clampUnit(v)
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
