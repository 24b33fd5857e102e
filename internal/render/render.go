package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// Table draws a row-major grid of cells framed with 1-based column and row
// labels:
//
//	 │123│
//	—│———│
//	1│.1/│
//	2│*2/│
//	—│———│
//
// Column labels wrap modulo 10 on wide boards.
func Table[S fmt.Stringer](w io.Writer, width int, cells []S) error {
	if width <= 0 {
		return fmt.Errorf("invalid table width %d", width)
	}
	height := len(cells) / width
	pad := len(strconv.Itoa(height))

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", pad) + "│")
	for x := range width {
		b.WriteString(strconv.Itoa((x + 1) % 10))
	}
	b.WriteString("│\n")

	separator := strings.Repeat("—", pad) + "│" + strings.Repeat("—", width) + "│\n"
	b.WriteString(separator)

	for y := range height {
		fmt.Fprintf(&b, "%*d│", pad, y+1)
		for _, c := range cells[y*width : (y+1)*width] {
			b.WriteString(c.String())
		}
		b.WriteString("│\n")
	}

	b.WriteString(separator)

	_, err := io.WriteString(w, b.String())
	return err
}

// Visible draws what the player sees.
func Visible(w io.Writer, board *mines.Board) error {
	return Table(w, board.Width(), board.VisibleGrid())
}

// Truth draws the ground truth, mines included.
func Truth(w io.Writer, board *mines.Board) error {
	return Table(w, board.Width(), board.TruthGrid())
}
