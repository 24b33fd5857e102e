package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/admin"
	"github.com/vancomm/minesweeper-cli/internal/input"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/render"
)

const (
	PromptMineCount = "How many mines do you want on the field? "
	PromptMove      = "Set/unset mines marks or claim a cell as free:"

	MsgAlreadyFree  = "This cell is already free!"
	MsgLost         = "You stepped on a mine and failed!"
	MsgWon          = "Congratulations! You found all the mines!"
	MsgOutOfBounds  = "Coordinates are out of the field!"
	MsgNoBoard      = "There is no field yet, make the first move."
	MsgAdminBlocked = "Admin mode is disabled."
)

type Options struct {
	Params mines.GameParams
	// AskMineCount prompts for the mine count, ignoring Params.MineCount.
	AskMineCount bool
	Admin        bool
}

// Session plays one game over a line-oriented terminal.
type Session struct {
	in     io.Reader
	out    io.Writer
	logger *logrus.Entry
	rnd    *rand.Rand
	opts   Options
	game   *mines.Game
}

func New(
	in io.Reader,
	out io.Writer,
	logger *logrus.Entry,
	rnd *rand.Rand,
	opts Options,
) *Session {
	return &Session{
		in:     in,
		out:    out,
		logger: logger,
		rnd:    rnd,
		opts:   opts,
	}
}

// Game returns the game in progress, nil before the first move.
func (s *Session) Game() *mines.Game { return s.game }

// Run plays until the game is won or lost. It returns an error wrapping
// io.EOF if the input ends first, or the context error on cancellation.
func (s *Session) Run(ctx context.Context) error {
	lines := scanLines(ctx, s.in, s.logger)
	next := func() (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return "", fmt.Errorf("input closed: %w", io.EOF)
			}
			return line, nil
		}
	}

	params := s.opts.Params
	if s.opts.AskMineCount {
		mineCount, err := s.askMineCount(params, next)
		if err != nil {
			return err
		}
		params.MineCount = mineCount
	}

	if err := s.firstMove(params, next); err != nil {
		return err
	}

	for !s.game.Status().Over() {
		s.print(PromptMove)
		line, err := next()
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) == admin.Command {
			if err := s.adminMode(next); err != nil {
				return err
			}
			continue
		}

		move, err := input.ParseMove(line)
		if err != nil {
			s.reject(err)
			continue
		}

		outcome, err := s.game.Apply(move)
		if err != nil {
			s.reject(err)
			continue
		}
		if err := s.report(outcome); err != nil {
			return err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"status": s.game.Status().String(),
		"moves":  s.game.Moves(),
	}).Info("game finished")

	return nil
}

func (s *Session) askMineCount(
	params mines.GameParams, next func() (string, error),
) (int, error) {
	for {
		s.printf("%s", PromptMineCount)
		line, err := next()
		if err != nil {
			return 0, err
		}
		mineCount, err := input.ParseMineCount(line)
		if err == nil {
			params.MineCount = mineCount
			err = params.Validate()
		}
		if err != nil {
			s.reject(err)
			continue
		}
		return mineCount, nil
	}
}

func (s *Session) firstMove(params mines.GameParams, next func() (string, error)) error {
	hidden := make(mines.Grid, params.Width*params.Height)
	for i := range hidden {
		hidden[i] = mines.Hidden
	}
	if err := render.Table(s.out, params.Width, hidden); err != nil {
		return err
	}

	for {
		s.print(PromptMove)
		line, err := next()
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == admin.Command {
			s.print(MsgNoBoard)
			continue
		}

		move, err := input.ParseMove(line)
		if err != nil {
			s.reject(err)
			continue
		}

		game, outcome, err := mines.Generate(params, move, s.rnd)
		if err != nil {
			s.reject(err)
			continue
		}
		s.game = game

		s.logger.WithFields(logrus.Fields{
			"width":      params.Width,
			"height":     params.Height,
			"mine_count": params.MineCount,
			"first":      move.String(),
		}).Info("game started")

		return s.report(outcome)
	}
}

func (s *Session) adminMode(next func() (string, error)) error {
	if !s.opts.Admin {
		s.print(MsgAdminBlocked)
		return nil
	}
	menu := admin.NewMenu(s.out, s.game, s.logger)
	for {
		s.print(admin.Prompt)
		line, err := next()
		if err != nil {
			return err
		}
		done, err := menu.Execute(line)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// report draws the board after an accepted move and announces the result.
func (s *Session) report(outcome mines.Outcome) error {
	if err := render.Visible(s.out, s.game.Board()); err != nil {
		return err
	}
	if outcome.Kind == mines.NoOp && outcome.Reason == mines.ReasonAlreadyRevealed {
		s.print(MsgAlreadyFree)
	}
	switch s.game.Status() {
	case mines.Lost:
		s.print(MsgLost)
	case mines.Won:
		s.print(MsgWon)
	}
	return nil
}

func (s *Session) reject(err error) {
	s.logger.WithError(err).Debug("input rejected")
	switch {
	case errors.Is(err, mines.ErrOutOfBounds):
		s.print(MsgOutOfBounds)
	default:
		s.printf("%s\n", err)
	}
}

func (s *Session) print(msg string) {
	s.printf("%s\n", msg)
}

func (s *Session) printf(format string, a ...any) {
	if _, err := fmt.Fprintf(s.out, format, a...); err != nil {
		s.logger.WithError(err).Warn("unable to write to terminal")
	}
}

// scanLines feeds input lines into a channel until the input ends or ctx
// is cancelled. A read blocked on the terminal outlives cancellation; the
// goroutine exits with the process in that case.
func scanLines(ctx context.Context, r io.Reader, logger *logrus.Entry) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.WithError(err).Warn("unable to read input")
		}
	}()
	return lines
}
