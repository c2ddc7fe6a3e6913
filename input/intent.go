package input

// Intent discriminates semantic actions produced by key presses
type Intent uint8

const (
	IntentNone Intent = iota

	// Held movement
	IntentUp
	IntentDown

	// Match commands
	IntentPause
	IntentMute
	IntentRestart
	IntentWinTarget      // Value carries the target
	IntentCycleWinTarget // next entry of the "game of N" options

	// System
	IntentQuit
)

// Action is a resolved key binding
type Action struct {
	Intent Intent
	Value  int
}
