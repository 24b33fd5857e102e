package main

import (
	"context"
	"errors"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/terminal"
)

var log = logrus.New()

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flags := config.Flags(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal("unable to parse flags: ", err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := config.NewLogger(cfg.Log, cfg.Development(), os.Stderr)
	if err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	log = logger
	mines.Log = logger

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	session := terminal.New(
		os.Stdin, os.Stdout,
		log.WithField("component", "terminal"),
		createRand(cfg.Seed),
		terminal.Options{
			Params:       cfg.GameParams(),
			AskMineCount: cfg.AskMineCount(),
			Admin:        cfg.Admin,
		},
	)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return session.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	err = g.Wait()
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		log.Info("exit reason: ", err)
	default:
		log.Error("exit reason: ", err)
		os.Exit(1)
	}
}
