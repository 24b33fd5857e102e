package mines

import "errors"

var (
	ErrOutOfBounds   = errors.New("cell is out of bounds")
	ErrInvalidInput  = errors.New("invalid input")
	ErrGameOver      = errors.New("game is over")
	ErrInvalidParams = errors.New("invalid game params")
)

// InvariantViolation reports a corrupted board. It is only ever panicked,
// never returned to the player.
type InvariantViolation struct {
	message string
}

// [InvariantViolation] implements [error]
func (e InvariantViolation) Error() string {
	return "invariant violation: " + e.message
}
