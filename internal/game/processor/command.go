package processor

import (
	"fmt"

	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

// CommandKind identifies what a player command asks for
type CommandKind int

const (
	// CommandAdvise lets the move advisor choose
	CommandAdvise CommandKind = iota
	// CommandMove moves the player one cell
	CommandMove
	// CommandDrop drops a poison pellet where the player stands
	CommandDrop
)

func (k CommandKind) String() string {
	switch k {
	case CommandAdvise:
		return "advise"
	case CommandMove:
		return "move"
	case CommandDrop:
		return "drop"
	default:
		return fmt.Sprintf("CommandKind(%d)", k)
	}
}

// Command is one parsed line of player input. Direction is only set for CommandMove.
type Command struct {
	Kind      CommandKind
	Direction core.Direction
}

// ParseCommand accepts an empty line, or exactly one of n/e/s/w/x in either case.
// The line must not carry its terminator.
func ParseCommand(line string) (Command, error) {
	switch len(line) {
	case 0:
		return Command{Kind: CommandAdvise}, nil
	case 1:
	default:
		return Command{}, fmt.Errorf("%w: %q", core.ErrInvalidCommand, line)
	}

	if line == "x" || line == "X" {
		return Command{Kind: CommandDrop}, nil
	}
	dir, err := core.ParseDirection(line)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", core.ErrInvalidCommand, line)
	}
	return Command{Kind: CommandMove, Direction: dir}, nil
}
