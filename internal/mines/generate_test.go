package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generateTests = []struct {
	name   string
	params GameParams
}{
	{
		name:   "9x9(10)",
		params: GameParams{Width: 9, Height: 9, MineCount: 10},
	},
	{
		name:   "9x9(70)",
		params: GameParams{Width: 9, Height: 9, MineCount: 70},
	},
	{
		name:   "16x16(40)",
		params: GameParams{Width: 16, Height: 16, MineCount: 40},
	},
	{
		name:   "30x16(99)",
		params: GameParams{Width: 30, Height: 16, MineCount: 99},
	},
}

func TestSafeFirstReveal(t *testing.T) {
	t.Parallel()

	for _, test := range generateTests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			params := test.params
			for sx := range params.Width {
				for sy := range params.Height {
					first := Move{Point{sx, sy}, Reveal}
					game, outcome, err := Generate(params, first, r)
					require.NoError(t, err, "%s @ %d:%d", test.name, sx, sy)

					c, _, _ := game.Board().Cell(first.Point)
					assert.NotEqual(t, Mine, c)
					assert.Equal(t, Cascaded, outcome.Kind)
					assert.Equal(t, Playing, game.Status())

					mines := game.Board().Mines()
					assert.Contains(t,
						[]int{params.MineCount - 1, params.MineCount}, mines)
				}
			}
		})
	}
}

func TestFlagFirstKeepsMineCount(t *testing.T) {
	t.Parallel()

	for _, test := range generateTests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			params := test.params
			for sx := range params.Width {
				for sy := range params.Height {
					first := Move{Point{sx, sy}, Flag}
					game, outcome, err := Generate(params, first, r)
					require.NoError(t, err)

					assert.Equal(t, params.MineCount, game.Board().Mines())
					assert.Equal(t, params.MineCount, game.Board().MineCount())
					assert.Equal(t, Playing, game.Status())

					_, s, _ := game.Board().Cell(first.Point)
					switch outcome.Kind {
					case Toggled:
						assert.Equal(t, Flagged, s)
					case Cascaded:
						// flagging a numbered cell shows its digit
						assert.True(t, s.Revealed())
					default:
						t.Errorf("unexpected first outcome %s", outcome.Kind)
					}
				}
			}
		})
	}
}

func TestNeighborCounts(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for _, test := range generateTests {
		params := test.params
		first := Move{Point{params.Width / 2, params.Height / 2}, Reveal}
		game, _, err := Generate(params, first, r)
		require.NoError(t, err)

		truth := game.Board().TruthGrid()
		at := func(x, y int) bool {
			return x >= 0 && x < params.Width && y >= 0 && y < params.Height &&
				truth[y*params.Width+x] == Mine
		}
		for y := range params.Height {
			for x := range params.Width {
				c := truth[y*params.Width+x]
				if c == Mine {
					continue
				}
				want := 0
				for _, d := range [][2]int{
					{-1, -1}, {0, -1}, {1, -1},
					{-1, 0}, {1, 0},
					{-1, 1}, {0, 1}, {1, 1},
				} {
					if at(x+d[0], y+d[1]) {
						want++
					}
				}
				assert.Equal(t, Content(want), c, "%s @ %d:%d", test.name, x, y)
			}
		}
	}
}

func TestStrictMineCount(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	params := GameParams{Width: 9, Height: 9, MineCount: 70}

	dropped := false
	for sx := range params.Width {
		for sy := range params.Height {
			first := Move{Point{sx, sy}, Reveal}

			game, _, err := Generate(params, first, r)
			require.NoError(t, err)
			if game.Board().Mines() < params.MineCount {
				dropped = true
			}

			strict := params
			strict.StrictMineCount = true
			game, _, err = Generate(strict, first, r)
			require.NoError(t, err)
			assert.Equal(t, params.MineCount, game.Board().Mines())
			c, _, _ := game.Board().Cell(first.Point)
			assert.NotEqual(t, Mine, c)
		}
	}
	assert.True(t, dropped, "expected the first reveal to displace a mine at least once")
}

func TestGenerateFirstMove(t *testing.T) {
	tests := []struct {
		name    string
		params  GameParams
		first   Move
		outcome OutcomeKind
		status  Status
		mines   int
	}{
		{
			name:    "no mines",
			params:  GameParams{Width: 1, Height: 1, MineCount: 0},
			first:   Move{Point{0, 0}, Reveal},
			outcome: Cascaded,
			status:  Won,
			mines:   0,
		},
		{
			name:    "flag the only mine",
			params:  GameParams{Width: 1, Height: 1, MineCount: 1},
			first:   Move{Point{0, 0}, Flag},
			outcome: Toggled,
			status:  Won,
			mines:   1,
		},
		{
			name:    "reveal the only cell",
			params:  GameParams{Width: 1, Height: 1, MineCount: 1},
			first:   Move{Point{0, 0}, Reveal},
			outcome: Cascaded,
			status:  Won,
			mines:   0,
		},
		{
			name:    "strict with nowhere to move",
			params:  GameParams{Width: 1, Height: 1, MineCount: 1, StrictMineCount: true},
			first:   Move{Point{0, 0}, Reveal},
			outcome: Cascaded,
			status:  Won,
			mines:   0,
		},
		{
			name:    "full board flagged once",
			params:  GameParams{Width: 2, Height: 1, MineCount: 2},
			first:   Move{Point{0, 0}, Flag},
			outcome: Toggled,
			status:  Playing,
			mines:   2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			game, outcome, err := Generate(test.params, test.first, r)
			require.NoError(t, err)
			assert.Equal(t, test.outcome, outcome.Kind)
			assert.Equal(t, test.status, game.Status())
			assert.Equal(t, test.mines, game.Board().Mines())
		})
	}
}

func TestGenerateRejects(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	reveal := Move{Point{0, 0}, Reveal}

	tests := []struct {
		name   string
		params GameParams
		first  Move
		err    error
	}{
		{"zero width", GameParams{Width: 0, Height: 9, MineCount: 1}, reveal, ErrInvalidParams},
		{"negative mines", GameParams{Width: 9, Height: 9, MineCount: -1}, reveal, ErrInvalidParams},
		{"too many mines", GameParams{Width: 2, Height: 2, MineCount: 5}, reveal, ErrInvalidParams},
		{"first past the edge", GameParams{Width: 9, Height: 9, MineCount: 10}, Move{Point{9, 9}, Reveal}, ErrOutOfBounds},
		{"first below zero", GameParams{Width: 9, Height: 9, MineCount: 10}, Move{Point{-1, 0}, Flag}, ErrOutOfBounds},
		{"bad command", GameParams{Width: 9, Height: 9, MineCount: 10}, Move{Point{0, 0}, Command(9)}, ErrInvalidInput},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, _, err := Generate(test.params, test.first, r)
			assert.ErrorIs(t, err, test.err)
			assert.Nil(t, game)
		})
	}
}
