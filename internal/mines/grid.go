package mines

import (
	"fmt"
	"strconv"
)

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// Content is the ground truth of a cell.
type Content int8

const (
	Mine  Content = -1
	Empty Content = 0
	// 1-8 for a cell with given number of mined neighbors
)

func (c Content) IsNumber() bool {
	return 1 <= c && c <= 8
}

func (c Content) String() string {
	switch {
	case c == Mine:
		return "X"
	case c == Empty:
		return "."
	case c.IsNumber():
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

// CellStatus is what the player sees in a cell.
type CellStatus int8

const (
	Hidden        CellStatus = -2
	Flagged       CellStatus = -1
	RevealedEmpty CellStatus = 0
	// 1-8 for a revealed cell with given number of mined neighbors
	ExposedMine CellStatus = 64 // post-game-over
)

// revealedAs returns the status a cell with content c shows once revealed.
func revealedAs(c Content) CellStatus {
	return iif(c == Mine, ExposedMine, CellStatus(c))
}

func (s CellStatus) Revealed() bool {
	return (0 <= s && s <= 8) || s == ExposedMine
}

func (s CellStatus) String() string {
	switch s {
	case Hidden:
		return "."
	case Flagged:
		return "*"
	case RevealedEmpty:
		return "/"
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	case ExposedMine:
		return "X"
	default:
		return "!"
	}
}

// Grid is a row-major snapshot of the visible board.
type Grid []CellStatus

// TruthGrid is a row-major snapshot of the ground truth.
type TruthGrid []Content
