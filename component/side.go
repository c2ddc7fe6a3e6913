package component

// Side identifies one of the two paddles
type Side uint8

const (
	SideUser Side = iota
	SideAI
)

// String returns the name announced to the player
func (s Side) String() string {
	if s == SideAI {
		return "CPU"
	}
	return "User"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideAI {
		return SideUser
	}
	return SideAI
}
