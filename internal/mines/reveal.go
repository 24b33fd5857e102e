package mines

import "fmt"

type OutcomeKind int8

const (
	NoOp OutcomeKind = iota
	Toggled
	Cascaded
	HitMine
	OutOfBounds
	GameOver
)

func (k OutcomeKind) String() string {
	switch k {
	case NoOp:
		return "no-op"
	case Toggled:
		return "toggled"
	case Cascaded:
		return "cascaded"
	case HitMine:
		return "hit mine"
	case OutOfBounds:
		return "out of bounds"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Outcome describes what a single move did to the board.
type Outcome struct {
	Kind OutcomeKind
	// Cells lists the cells revealed by a Cascaded move, or the exposed
	// mines for HitMine.
	Cells  []Point
	Reason string
}

// Changed reports whether the move mutated the board.
func (o Outcome) Changed() bool {
	switch o.Kind {
	case Toggled, Cascaded, HitMine:
		return true
	default:
		return false
	}
}

const ReasonAlreadyRevealed = "already revealed"

func noOp(reason string) Outcome {
	return Outcome{Kind: NoOp, Reason: reason}
}

// apply runs a single command against the cell at p.
//
// panics [InvariantViolation]
func (b *Board) apply(p Point, cmd Command) Outcome {
	category := b.Classify(p)
	if category == OutOfBoundsCell {
		return Outcome{Kind: OutOfBounds}
	}
	i := b.index(p)

	switch category {
	case HiddenCell:
		if cmd == Flag {
			b.visible[i] = Flagged
			return Outcome{Kind: Toggled}
		}
		return Outcome{Kind: Cascaded, Cells: b.cascade(p)}

	case FlaggedCell:
		// revealing a flagged cell only takes the flag off
		b.visible[i] = Hidden
		return Outcome{Kind: Toggled}

	case RevealedCell:
		return noOp(ReasonAlreadyRevealed)

	case NumberCell:
		if b.visible[i].Revealed() {
			return noOp(ReasonAlreadyRevealed)
		}
		b.visible[i] = revealedAs(b.truth[i])
		return Outcome{Kind: Cascaded, Cells: []Point{p}}

	case MineCell:
		if cmd == Reveal {
			return Outcome{Kind: HitMine, Cells: b.exposeMines()}
		}
		switch b.visible[i] {
		case Hidden:
			b.visible[i] = Flagged
		case Flagged:
			b.visible[i] = Hidden
		default:
			return noOp(ReasonAlreadyRevealed)
		}
		return Outcome{Kind: Toggled}

	default:
		panic(InvariantViolation{fmt.Sprintf("unhandled category %s at %s", category, p)})
	}
}

// cascade reveals the connected region of empty cells around start together
// with its numbered border. A cell is queued at most once, and only while it
// is neither revealed nor a mine; only empty cells expand further, so once
// the queue drains no hidden cell touches a revealed empty one.
func (b *Board) cascade(start Point) []Point {
	var (
		revealed []Point
		queued   = make([]bool, len(b.truth))
		queue    = []Point{start}
	)
	queued[b.index(start)] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		i := b.index(p)
		b.visible[i] = revealedAs(b.truth[i])
		revealed = append(revealed, p)

		if b.truth[i] != Empty {
			continue
		}
		for q := range b.Neighbors(p) {
			j := b.index(q)
			if queued[j] || b.truth[j] == Mine || b.visible[j].Revealed() {
				continue
			}
			queued[j] = true
			queue = append(queue, q)
		}
	}

	return revealed
}

// exposeMines shows every mine on the visible grid.
func (b *Board) exposeMines() []Point {
	var exposed []Point
	for i, c := range b.truth {
		if c == Mine {
			b.visible[i] = ExposedMine
			exposed = append(exposed, b.point(i))
		}
	}
	return exposed
}
