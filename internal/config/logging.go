package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// NewLogger builds the application logger. Development mode logs at debug
// level. When a log file is configured every entry goes to the rotating file
// only, so the terminal stays clean for the board.
func NewLogger(cfg Log, development bool, stderr io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if development {
		level = logrus.DebugLevel
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{ForceColors: development})

	if cfg.File == "" {
		return logger, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", cfg.File, err)
	}
	logger.AddHook(hook)
	logger.SetOutput(io.Discard)

	return logger, nil
}
