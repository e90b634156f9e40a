package input

import (
	"sort"
	"strings"
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	ActionMove
	ActionPickup
	ActionShoot

	// Meta / UI
	ActionViewMap
	ActionNewGame
	ActionReset
	ActionDump
	ActionHelp
	ActionQuit
)

// Intent is what the player wants to do, with the remaining words of the
// command line as arguments.
type Intent struct {
	Action Action
	Args   []string
}

// bindings maps command words to actions.
// Multiple words may point to the same Action.
var bindings = map[string]Action{
	"m":    ActionMove,
	"move": ActionMove,

	"p":      ActionPickup,
	"pickup": ActionPickup,

	"s":     ActionShoot,
	"shoot": ActionShoot,

	"v":   ActionViewMap,
	"map": ActionViewMap,

	"n":   ActionNewGame,
	"new": ActionNewGame,

	"r":     ActionReset,
	"reset": ActionReset,

	"d":    ActionDump,
	"dump": ActionDump,

	"h":    ActionHelp,
	"help": ActionHelp,
	"?":    ActionHelp,

	"q":    ActionQuit,
	"quit": ActionQuit,
}

// Parse splits a command line into an Intent. The command word is matched
// case-insensitively; unknown or empty lines give ActionNone.
func Parse(line string) Intent {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Intent{Action: ActionNone}
	}
	act, ok := bindings[strings.ToLower(fields[0])]
	if !ok {
		return Intent{Action: ActionNone, Args: fields}
	}
	return Intent{Action: act, Args: fields[1:]}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionPickup:
		return "Pickup"
	case ActionShoot:
		return "Shoot"
	case ActionViewMap:
		return "View Map"
	case ActionNewGame:
		return "New Game"
	case ActionReset:
		return "Reset"
	case ActionDump:
		return "Dump"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
