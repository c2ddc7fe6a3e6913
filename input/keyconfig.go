package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames lists the bindable non-rune keys
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
}

// noneAction removes a binding when used as an override value
const noneAction = "none"

// ApplyBindings returns a copy of base with key → action name overrides applied
// Keys are single characters, rune aliases or special key names; the "none" action
// unbinds the key
func ApplyBindings(base *KeyTable, bindings map[string]string) (*KeyTable, error) {
	result := base.Clone()

	for keyStr, actionName := range bindings {
		unbind := strings.EqualFold(strings.TrimSpace(actionName), noneAction)

		var action Action
		if !unbind {
			a, err := ParseAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", keyStr, err)
			}
			action = a
		}

		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			if unbind {
				delete(result.SpecialKeys, k)
			} else {
				result.SpecialKeys[k] = action
			}
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		if unbind {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = action
		}
	}

	return result, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character, alias or key name)", s)
}
