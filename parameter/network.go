package parameter

import "time"

// Spectator Feed
const (
	// SpectatorSendQueueSize is the per-spectator frame backlog before frames are dropped
	SpectatorSendQueueSize = 8

	SpectatorWriteTimeout = 2 * time.Second

	// SpectatorMaxPeers rejects new spectators above this count
	SpectatorMaxPeers = 32
)
