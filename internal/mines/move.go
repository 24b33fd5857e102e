package mines

import (
	"fmt"
	"strings"
)

type Command int8

const (
	Flag Command = iota + 1
	Reveal
)

func (c Command) String() string {
	switch c {
	case Flag:
		return "flag"
	case Reveal:
		return "reveal"
	default:
		return fmt.Sprintf("Command(%d)", int8(c))
	}
}

func (c Command) valid() bool {
	return c == Flag || c == Reveal
}

// ParseCommand accepts "flag" and "reveal" along with their classic
// spellings "mine" and "free".
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flag", "mine":
		return Flag, nil
	case "reveal", "free":
		return Reveal, nil
	default:
		return 0, fmt.Errorf(
			"%w: command must be one of 'flag', 'reveal' (got %q)",
			ErrInvalidInput, s,
		)
	}
}

type Move struct {
	Point
	Command Command
}

func (m Move) String() string {
	return m.Command.String() + " " + m.Point.String()
}
