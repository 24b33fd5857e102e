package input

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type moveDTO struct {
	X       int    `schema:"x,required"`
	Y       int    `schema:"y,required"`
	Command string `schema:"command,required"`
}

type mineCountDTO struct {
	MineCount int `schema:"mine_count,required"`
}

// ParseMove reads a move typed as "x y command" with 1-based coordinates
// and returns it with 0-based coordinates. Coordinates below 1 are passed
// through and rejected by the board as out of bounds.
func ParseMove(line string) (mines.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return mines.Move{}, fmt.Errorf(
			"%w: expected 'x y command', got %q", mines.ErrInvalidInput, line,
		)
	}

	var dto moveDTO
	err := decoder.Decode(&dto, map[string][]string{
		"x":       {fields[0]},
		"y":       {fields[1]},
		"command": {fields[2]},
	})
	if err != nil {
		return mines.Move{}, fmt.Errorf("%w: %w", mines.ErrInvalidInput, err)
	}

	command, err := mines.ParseCommand(dto.Command)
	if err != nil {
		return mines.Move{}, err
	}

	move := mines.Move{
		Point:   mines.Point{X: dto.X - 1, Y: dto.Y - 1},
		Command: command,
	}
	return move, nil
}

// ParseMineCount reads the number of mines requested for a new game.
func ParseMineCount(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, fmt.Errorf(
			"%w: expected a single number, got %q", mines.ErrInvalidInput, line,
		)
	}

	var dto mineCountDTO
	err := decoder.Decode(&dto, map[string][]string{
		"mine_count": fields,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", mines.ErrInvalidInput, err)
	}
	if dto.MineCount < 0 {
		return 0, fmt.Errorf(
			"%w: mine count cannot be negative", mines.ErrInvalidInput,
		)
	}
	return dto.MineCount, nil
}
