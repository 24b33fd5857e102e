package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Generate lays out a new board for params and plays first on it as an
// ordinary move. A first reveal is never a mine; a first flag gets no such
// protection.
func Generate(params GameParams, first Move, r *rand.Rand) (*Game, Outcome, error) {
	if err := params.Validate(); err != nil {
		return nil, Outcome{}, err
	}
	if !first.Command.valid() {
		return nil, Outcome{}, fmt.Errorf("first move %s: %w", first, ErrInvalidInput)
	}
	if !params.PointInBounds(first.Point) {
		return nil, Outcome{Kind: OutOfBounds},
			fmt.Errorf("first move %s: %w", first, ErrOutOfBounds)
	}

	board := params.placeMines(first, r)
	board.computeCounts()

	Log.WithFields(logrus.Fields{
		"board": board.String(),
		"mines": board.Mines(),
		"first": first.String(),
	}).Debug("board generated")

	game := NewGame(board)
	outcome, err := game.Apply(first)
	if err != nil {
		return nil, outcome, err
	}
	return game, outcome, nil
}

// placeMines shuffles MineCount mines over the grid, then clears the first
// cell if the first move reveals it.
func (p GameParams) placeMines(first Move, r *rand.Rand) *Board {
	width, height, mineCount, strict := p.Unpack()

	b := newBoard(width, height, mineCount)
	for i := range mineCount {
		b.truth[i] = Mine
	}
	r.Shuffle(len(b.truth), func(i, j int) {
		b.truth[i], b.truth[j] = b.truth[j], b.truth[i]
	})

	if first.Command != Reveal {
		return b
	}
	start := b.index(first.Point)
	if b.truth[start] != Mine {
		return b
	}
	b.truth[start] = Empty

	if !strict {
		Log.WithField("cell", first.Point.String()).
			Debug("mine under first reveal dropped")
		return b
	}

	candidates := make([]int, 0, len(b.truth))
	for i, c := range b.truth {
		if c != Mine && i != start {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		Log.WithField("cell", first.Point.String()).
			Warn("no free cell to relocate mine under first reveal")
		return b
	}
	moved := candidates[r.IntN(len(candidates))]
	b.truth[moved] = Mine
	Log.WithFields(logrus.Fields{
		"from": first.Point.String(),
		"to":   b.point(moved).String(),
	}).Debug("mine under first reveal relocated")

	return b
}
