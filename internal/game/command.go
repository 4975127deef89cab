package game

import "github.com/gdamore/tcell/v2"

// Command is a player request decoded from a key press.
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveN
	CommandMoveS
	CommandMoveE
	CommandMoveW
	CommandMoveNE
	CommandMoveNW
	CommandMoveSE
	CommandMoveSW
	CommandRegenerate
	CommandQuit
)

var commandNames = map[Command]string{
	CommandNone:       "none",
	CommandMoveN:      "move_n",
	CommandMoveS:      "move_s",
	CommandMoveE:      "move_e",
	CommandMoveW:      "move_w",
	CommandMoveNE:     "move_ne",
	CommandMoveNW:     "move_nw",
	CommandMoveSE:     "move_se",
	CommandMoveSW:     "move_sw",
	CommandRegenerate: "regenerate",
	CommandQuit:       "quit",
}

// String returns the command name used in logs.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Decode maps a key event to a command. Only plain rune keys are bound.
func Decode(ev *tcell.EventKey) Command {
	if ev.Key() != tcell.KeyRune {
		return CommandNone
	}
	return DecodeRune(ev.Rune())
}

// DecodeRune maps a typed character to a command. Matching is case-sensitive.
func DecodeRune(r rune) Command {
	switch r {
	case 'q':
		return CommandQuit
	case 'r':
		return CommandRegenerate
	case 'k':
		return CommandMoveN
	case 'j':
		return CommandMoveS
	case 'l':
		return CommandMoveE
	case 'h':
		return CommandMoveW
	case 'y':
		return CommandMoveNW
	case 'u':
		return CommandMoveNE
	case 'b':
		return CommandMoveSW
	case 'n':
		return CommandMoveSE
	}
	return CommandNone
}

// Delta returns the (dx, dy) step of a movement command and whether c moves.
func (c Command) Delta() (int, int, bool) {
	switch c {
	case CommandMoveN:
		return 0, -1, true
	case CommandMoveS:
		return 0, 1, true
	case CommandMoveE:
		return 1, 0, true
	case CommandMoveW:
		return -1, 0, true
	case CommandMoveNE:
		return 1, -1, true
	case CommandMoveNW:
		return -1, -1, true
	case CommandMoveSE:
		return 1, 1, true
	case CommandMoveSW:
		return -1, 1, true
	}
	return 0, 0, false
}
