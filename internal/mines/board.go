package mines

import (
	"fmt"
	"iter"
	"slices"
)

// Board keeps the ground truth and the player's view of it side by side.
// Dimensions and mine locations never change once the board is built; only
// the visible grid mutates.
type Board struct {
	width, height int
	mineCount     int // requested, see Mines for the placed count
	truth         TruthGrid
	visible       Grid
}

func newBoard(width, height, mineCount int) *Board {
	visible := make(Grid, width*height)
	for i := range visible {
		visible[i] = Hidden
	}
	return &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		truth:     make(TruthGrid, width*height),
		visible:   visible,
	}
}

// NewBoard builds a fully hidden board with mines at the given points.
func NewBoard(width, height int, mines []Point) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidParams, width, height)
	}
	b := newBoard(width, height, 0)
	for _, p := range mines {
		if !b.InBounds(p) {
			return nil, fmt.Errorf("mine at %s: %w", p, ErrOutOfBounds)
		}
		b.truth[b.index(p)] = Mine
	}
	b.mineCount = b.Mines()
	b.computeCounts()
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// MineCount is the number of mines requested when the board was generated.
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) InBounds(p Point) bool {
	return 0 <= p.X && p.X < b.width && 0 <= p.Y && p.Y < b.height
}

func (b *Board) index(p Point) int {
	return p.Y*b.width + p.X
}

func (b *Board) point(i int) Point {
	return Point{X: i % b.width, Y: i / b.width}
}

// Cell returns the ground truth and the visible status at p. ok is false
// when p lies outside the board.
func (b *Board) Cell(p Point) (content Content, status CellStatus, ok bool) {
	if !b.InBounds(p) {
		return Empty, Hidden, false
	}
	i := b.index(p)
	return b.truth[i], b.visible[i], true
}

// Neighbors yields the up to 8 cells around p, clipped at the edges.
func (b *Board) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				q := Point{X: p.X + dx, Y: p.Y + dy}
				if b.InBounds(q) && !yield(q) {
					return
				}
			}
		}
	}
}

func (b *Board) countMines(p Point) int {
	n := 0
	for q := range b.Neighbors(p) {
		if b.truth[b.index(q)] == Mine {
			n++
		}
	}
	return n
}

// computeCounts fills every non-mine cell with its neighbor mine count.
func (b *Board) computeCounts() {
	for i, c := range b.truth {
		if c != Mine {
			b.truth[i] = Content(b.countMines(b.point(i)))
		}
	}
}

// TruthGrid returns a copy of the ground truth.
func (b *Board) TruthGrid() TruthGrid {
	return slices.Clone(b.truth)
}

// VisibleGrid returns a copy of what the player currently sees.
func (b *Board) VisibleGrid() Grid {
	return slices.Clone(b.visible)
}

// Mines counts the mines actually placed on the board.
func (b *Board) Mines() (count int) {
	for _, c := range b.truth {
		if c == Mine {
			count++
		}
	}
	return
}

// RevealedEmptyCount counts cells displayed as revealed-empty.
func (b *Board) RevealedEmptyCount() (count int) {
	for _, s := range b.visible {
		if s == RevealedEmpty {
			count++
		}
	}
	return
}

func (b *Board) String() string {
	return fmt.Sprintf("%dx%d(%d)", b.width, b.height, b.mineCount)
}
