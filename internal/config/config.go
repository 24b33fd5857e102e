package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const EnvPrefix = "MINES"

type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type Config struct {
	Mode            string `mapstructure:"mode"`
	Width           int    `mapstructure:"width"`
	Height          int    `mapstructure:"height"`
	Mines           int    `mapstructure:"mines"` // negative: ask the player
	StrictMineCount bool   `mapstructure:"strict_mine_count"`
	Seed            uint64 `mapstructure:"seed"` // zero: random
	Admin           bool   `mapstructure:"admin"`
	Log             Log    `mapstructure:"log"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":              c.Mode,
		"width":             c.Width,
		"height":            c.Height,
		"mines":             c.Mines,
		"strict_mine_count": c.StrictMineCount,
		"seed":              c.Seed,
		"admin":             c.Admin,
		"log_level":         c.Log.Level,
		"log_file":          c.Log.File,
	}
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// AskMineCount reports whether the mine count has to come from the player.
func (c Config) AskMineCount() bool {
	return c.Mines < 0
}

func (c Config) GameParams() mines.GameParams {
	return mines.GameParams{
		Width:           c.Width,
		Height:          c.Height,
		MineCount:       max(c.Mines, 0),
		StrictMineCount: c.StrictMineCount,
	}
}

func (c Config) Validate() error {
	switch c.Mode {
	case "production", "development":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if !c.AskMineCount() {
		if err := c.GameParams().Validate(); err != nil {
			return err
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "production")
	v.SetDefault("width", 9)
	v.SetDefault("height", 9)
	v.SetDefault("mines", -1)
	v.SetDefault("strict_mine_count", false)
	v.SetDefault("seed", 0)
	v.SetDefault("admin", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"mode":              "mode",
	"width":             "width",
	"height":            "height",
	"mines":             "mines",
	"strict-mine-count": "strict_mine_count",
	"seed":              "seed",
	"admin":             "admin",
	"log-level":         "log.level",
	"log-file":          "log.file",
}

func Flags(name string) *pflag.FlagSet {
	const usage = "config file path (json, yaml or toml)"

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringP("config", "c", "", usage)
	flags.String("mode", "production", "production or development")
	flags.Int("width", 9, "board width")
	flags.Int("height", 9, "board height")
	flags.IntP("mines", "m", -1, "number of mines, negative to ask")
	flags.Bool("strict-mine-count", false, "relocate the mine under the first reveal instead of dropping it")
	flags.Uint64("seed", 0, "random seed, 0 for a random board")
	flags.Bool("admin", true, "enable the admin menu")
	flags.String("log-level", "warn", "log level")
	flags.String("log-file", "", "rotating log file, empty to log to stderr")
	return flags
}

// Load merges defaults, the optional config file, MINES_* environment
// variables and parsed flags, in increasing order of precedence.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
			}
		}
	}

	if path, err := flags.GetString("config"); err == nil && path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
