package mines

import "fmt"

// Category is a cell's kind from the rules' point of view.
type Category int8

const (
	OutOfBoundsCell Category = iota
	MineCell
	NumberCell
	HiddenCell
	FlaggedCell
	RevealedCell
)

func (c Category) String() string {
	switch c {
	case OutOfBoundsCell:
		return "out of bounds"
	case MineCell:
		return "mine"
	case NumberCell:
		return "number"
	case HiddenCell:
		return "hidden"
	case FlaggedCell:
		return "flagged"
	case RevealedCell:
		return "revealed"
	default:
		return "unknown"
	}
}

// Classify maps p to its category. Ground truth wins over visibility: a
// mine or a number is reported as such whatever the player has seen.
//
// panics [InvariantViolation]
func (b *Board) Classify(p Point) Category {
	if !b.InBounds(p) {
		return OutOfBoundsCell
	}
	i := b.index(p)

	switch c := b.truth[i]; {
	case c == Mine:
		return MineCell
	case c.IsNumber():
		return NumberCell
	case c == Empty:
		// fall through to the visible grid
	default:
		panic(InvariantViolation{fmt.Sprintf("ground truth %d at %s", c, p)})
	}

	switch s := b.visible[i]; s {
	case Hidden:
		return HiddenCell
	case Flagged:
		return FlaggedCell
	case RevealedEmpty:
		return RevealedCell
	default:
		panic(InvariantViolation{fmt.Sprintf("empty cell at %s shows %d", p, s)})
	}
}
