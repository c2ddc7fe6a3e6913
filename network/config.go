package network

import (
	"time"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Config holds spectator feed configuration
type Config struct {
	// Address to bind, empty disables the feed
	Address string `toml:"address"`

	// Connection limits
	MaxPeers int `toml:"max_peers"`

	// Allowed browser origins for the websocket handshake, empty allows same-origin only
	OriginPatterns []string `toml:"origins"`

	// Timing
	WriteTimeout    time.Duration `toml:"-"`
	ShutdownTimeout time.Duration `toml:"-"`

	// Per-spectator frame backlog
	SendQueueSize int `toml:"-"`
}

// DefaultConfig returns a disabled feed with production-safe limits
func DefaultConfig() *Config {
	return &Config{
		Address:         "",
		MaxPeers:        parameter.SpectatorMaxPeers,
		WriteTimeout:    parameter.SpectatorWriteTimeout,
		ShutdownTimeout: 2 * time.Second,
		SendQueueSize:   parameter.SpectatorSendQueueSize,
	}
}

// Enabled reports whether the feed should listen
func (c *Config) Enabled() bool {
	return c.Address != ""
}
