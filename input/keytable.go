package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     {Intent: IntentUp},
			tcell.KeyDown:   {Intent: IntentDown},
			tcell.KeyEnter:  {Intent: IntentPause},
			tcell.KeyEscape: {Intent: IntentPause},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
		},

		Runes: map[rune]Action{
			// Movement
			'k': {Intent: IntentUp},
			'j': {Intent: IntentDown},

			// Match
			'p': {Intent: IntentPause},
			'P': {Intent: IntentPause},
			' ': {Intent: IntentPause},
			'm': {Intent: IntentMute},
			'M': {Intent: IntentMute},
			'r': {Intent: IntentRestart},
			'R': {Intent: IntentRestart},
			'w': {Intent: IntentCycleWinTarget},
			'3': {Intent: IntentWinTarget, Value: 3},
			'5': {Intent: IntentWinTarget, Value: 5},
			'7': {Intent: IntentWinTarget, Value: 7},
			'9': {Intent: IntentWinTarget, Value: 9},

			// System
			'q': {Intent: IntentQuit},
		},
	}
}

// Lookup resolves a key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := kt.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := kt.SpecialKeys[ev.Key()]
	return a, ok
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
