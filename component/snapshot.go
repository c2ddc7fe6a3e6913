package component

// Snapshot is a value copy of the world after a completed tick
// Renderers and spectators only ever see snapshots
type Snapshot struct {
	Tick  uint64 `json:"tick"`
	User  Paddle `json:"user"`
	AI    Paddle `json:"ai"`
	Ball  Ball   `json:"ball"`
	Net   Net    `json:"net"`
	Match Match  `json:"match"`
}

// Paddle returns the paddle of the given side
func (s Snapshot) Paddle(side Side) Paddle {
	if side == SideAI {
		return s.AI
	}
	return s.User
}
