package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Status int8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the game has reached a terminal status.
func (s Status) Over() bool {
	return s == Won || s == Lost
}

// Game owns a board and tracks the outcome of the moves made on it.
// A Game is not safe for concurrent use; hosts must serialize moves.
type Game struct {
	board  *Board
	status Status
	moves  int
}

func NewGame(board *Board) *Game {
	return &Game{board: board, status: Playing}
}

// Board gives read access to the game's board.
func (g *Game) Board() *Board { return g.board }

func (g *Game) Status() Status { return g.status }

// Moves counts the moves that changed the board.
func (g *Game) Moves() int { return g.moves }

// Apply routes a move through the classifier and the reveal engine, then
// evaluates the game status. Rejected moves leave the board untouched.
func (g *Game) Apply(m Move) (Outcome, error) {
	if g.status.Over() {
		return Outcome{Kind: GameOver}, fmt.Errorf("%s: %w", m, ErrGameOver)
	}
	if !m.Command.valid() {
		return noOp("invalid command"), fmt.Errorf("%s: %w", m, ErrInvalidInput)
	}

	outcome := g.board.apply(m.Point, m.Command)

	logger := Log.WithFields(logrus.Fields{
		"move":    m.String(),
		"outcome": outcome.Kind.String(),
	})

	switch outcome.Kind {
	case OutOfBounds:
		logger.Debug("move rejected")
		return outcome, fmt.Errorf("%s: %w", m, ErrOutOfBounds)
	case NoOp:
		logger.WithField("reason", outcome.Reason).Debug("move ignored")
		return outcome, nil
	}

	g.moves++
	g.status = Evaluate(g.board, outcome)

	logger.WithFields(logrus.Fields{
		"cells":  len(outcome.Cells),
		"status": g.status.String(),
	}).Debug("move applied")

	return outcome, nil
}

// Evaluate computes the status following the last outcome. A hit mine loses
// at once; otherwise the game is won when every mine is flagged and every
// other cell is revealed.
func Evaluate(b *Board, last Outcome) Status {
	if last.Kind == HitMine {
		return Lost
	}
	if b.cleared() {
		return Won
	}
	return Playing
}

func (b *Board) cleared() bool {
	for i, c := range b.truth {
		if c == Mine {
			if b.visible[i] != Flagged {
				return false
			}
		} else if !b.visible[i].Revealed() {
			return false
		}
	}
	return true
}
