package input

import (
	"fmt"
	"strconv"
	"strings"
)

// actionNames maps config action names to actions
var actionNames = map[string]Action{
	"up":               {Intent: IntentUp},
	"down":             {Intent: IntentDown},
	"pause":            {Intent: IntentPause},
	"mute":             {Intent: IntentMute},
	"restart":          {Intent: IntentRestart},
	"cycle_win_target": {Intent: IntentCycleWinTarget},
	"quit":             {Intent: IntentQuit},
}

// winTargetPrefix names a fixed target action, e.g. "game_of_7"
const winTargetPrefix = "game_of_"

// ParseAction resolves a config action name
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if a, ok := actionNames[name]; ok {
		return a, nil
	}
	if rest, ok := strings.CutPrefix(name, winTargetPrefix); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return Action{}, fmt.Errorf("invalid win target in action %q", name)
		}
		return Action{Intent: IntentWinTarget, Value: n}, nil
	}
	return Action{}, fmt.Errorf("unknown action %q", name)
}
