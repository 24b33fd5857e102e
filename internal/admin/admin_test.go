package admin

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

func newTestMenu(t *testing.T) (*Menu, *mines.Game, *bytes.Buffer) {
	t.Helper()
	board, err := mines.NewBoard(3, 3, []mines.Point{{X: 2, Y: 2}})
	require.NoError(t, err)
	game := mines.NewGame(board)
	_, err = game.Apply(mines.Move{Point: mines.Point{X: 0, Y: 0}, Command: mines.Reveal})
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	return NewMenu(&out, game, logrus.NewEntry(logger)), game, &out
}

func TestMenuQueries(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"print minesCount", "1\n"},
		{"count displayed mines", "1\n"},
		{"count revealed empty", "5\n"},
		{"print values", " │123│\n—│———│\n1│...│\n2│.11│\n3│.1X│\n—│———│\n"},
		{"print player", " │123│\n—│———│\n1│///│\n2│/11│\n3│/1.│\n—│———│\n"},
		{"bogus", "Unknown action \"bogus\"\n"},
	}
	for _, test := range tests {
		t.Run(test.action, func(t *testing.T) {
			menu, _, out := newTestMenu(t)
			done, err := menu.Execute(test.action)
			require.NoError(t, err)
			assert.False(t, done)
			assert.Equal(t, test.want, out.String())
		})
	}
}

func TestMenuExit(t *testing.T) {
	menu, _, out := newTestMenu(t)
	done, err := menu.Execute(" exit ")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Empty(t, out.String())
}

func TestMenuIsReadOnly(t *testing.T) {
	menu, game, _ := newTestMenu(t)
	before := game.Board().VisibleGrid()

	for _, action := range []string{
		"print values", "print player", "print minesCount",
		"count displayed mines", "count revealed empty", "dump",
	} {
		_, err := menu.Execute(action)
		require.NoError(t, err)
	}

	assert.Equal(t, before, game.Board().VisibleGrid())
	assert.Equal(t, mines.Playing, game.Status())
}

func TestMenuDump(t *testing.T) {
	menu, _, out := newTestMenu(t)
	_, err := menu.Execute("dump")
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &snapshot))
	assert.Equal(t, Snapshot{
		Width:         3,
		Height:        3,
		MineCount:     1,
		Mines:         1,
		RevealedEmpty: 5,
		Status:        "playing",
		Moves:         1,
		Truth:         []string{"...", ".11", ".1X"},
		Visible:       []string{"///", "/11", "/1."},
	}, snapshot)
}
