package mines

import "fmt"

type GameParams struct {
	Width, Height, MineCount int
	// StrictMineCount moves a mine displaced by the safe first reveal to
	// another cell instead of dropping it.
	StrictMineCount bool
}

func (p GameParams) Unpack() (w int, h int, mc int, s bool) {
	return p.Width, p.Height, p.MineCount, p.StrictMineCount
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidParams, p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount > p.Width*p.Height {
		return fmt.Errorf("%w: mine count must be within [0, %d], got %d",
			ErrInvalidParams, p.Width*p.Height, p.MineCount)
	}
	return nil
}

func (p GameParams) PointInBounds(pt Point) bool {
	return 0 <= pt.X && pt.X < p.Width && 0 <= pt.Y && pt.Y < p.Height
}
