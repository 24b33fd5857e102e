package admin

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/render"
)

const (
	Command = "admin"
	Exit    = "exit"
	Prompt  = "Action (print values, print player, print minesCount, " +
		"count displayed mines, count revealed empty, dump, exit):"
)

// Snapshot is a read-only dump of a game for debugging.
type Snapshot struct {
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	MineCount     int      `yaml:"mine_count"`
	Mines         int      `yaml:"mines"`
	RevealedEmpty int      `yaml:"revealed_empty"`
	Status        string   `yaml:"status"`
	Moves         int      `yaml:"moves"`
	Truth         []string `yaml:"truth"`
	Visible       []string `yaml:"visible"`
}

func NewSnapshot(game *mines.Game) Snapshot {
	board := game.Board()
	return Snapshot{
		Width:         board.Width(),
		Height:        board.Height(),
		MineCount:     board.MineCount(),
		Mines:         board.Mines(),
		RevealedEmpty: board.RevealedEmptyCount(),
		Status:        game.Status().String(),
		Moves:         game.Moves(),
		Truth:         lines(board.TruthGrid(), board.Width()),
		Visible:       lines(board.VisibleGrid(), board.Width()),
	}
}

func lines[S fmt.Stringer](cells []S, width int) []string {
	res := make([]string, 0, len(cells)/width)
	for y := range len(cells) / width {
		var b strings.Builder
		for _, c := range cells[y*width : (y+1)*width] {
			b.WriteString(c.String())
		}
		res = append(res, b.String())
	}
	return res
}

// Menu answers debug queries about a game without touching it.
type Menu struct {
	out    io.Writer
	game   *mines.Game
	logger *logrus.Entry
}

func NewMenu(out io.Writer, game *mines.Game, logger *logrus.Entry) *Menu {
	return &Menu{out: out, game: game, logger: logger}
}

// Execute runs one action. It reports done once the player asks to leave
// the menu.
func (m *Menu) Execute(action string) (done bool, err error) {
	action = strings.TrimSpace(action)
	m.logger.WithField("action", action).Debug("admin action")

	board := m.game.Board()
	switch action {
	case "print values":
		err = render.Truth(m.out, board)
	case "print player":
		err = render.Visible(m.out, board)
	case "print minesCount":
		_, err = fmt.Fprintln(m.out, board.MineCount())
	case "count displayed mines":
		_, err = fmt.Fprintln(m.out, board.Mines())
	case "count revealed empty":
		_, err = fmt.Fprintln(m.out, board.RevealedEmptyCount())
	case "dump":
		err = m.dump()
	case Exit:
		done = true
	default:
		_, err = fmt.Fprintf(m.out, "Unknown action %q\n", action)
	}
	return
}

func (m *Menu) dump() error {
	enc := yaml.NewEncoder(m.out)
	enc.SetIndent(2)
	if err := enc.Encode(NewSnapshot(m.game)); err != nil {
		return fmt.Errorf("unable to encode snapshot: %w", err)
	}
	return enc.Close()
}
