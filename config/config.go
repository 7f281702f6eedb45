// Package config loads generator settings from the environment and binds them
// to command-line flags. Flags default to the environment values, so an
// explicit flag wins over ROOMGEN_* variables.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/roomgen/logging"
	"github.com/lixenwraith/roomgen/maze"
)

type Config struct {
	RoomsX     int     `env:"ROOMGEN_ROOMS_X" envDefault:"4"`
	RoomsY     int     `env:"ROOMGEN_ROOMS_Y" envDefault:"3"`
	RoomW      int     `env:"ROOMGEN_ROOM_W" envDefault:"15"`
	RoomH      int     `env:"ROOMGEN_ROOM_H" envDefault:"11"`
	Seed       string  `env:"ROOMGEN_SEED"`
	CoarseLoss float64 `env:"ROOMGEN_COARSE_LOSS" envDefault:"0.1"`
	FineLoss   float64 `env:"ROOMGEN_FINE_LOSS" envDefault:"0.05"`

	LogLevel string `env:"ROOMGEN_LOG_LEVEL" envDefault:"info"`
	DBPath   string `env:"ROOMGEN_DB_PATH" envDefault:"roomgen.db"`
}

// Load parses ROOMGEN_* variables over the defaults
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Bind registers flags for every field, defaulting to the current values
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.RoomsX, "rooms-x", c.RoomsX, "rooms per row")
	fs.IntVar(&c.RoomsY, "rooms-y", c.RoomsY, "rooms per column")
	fs.IntVar(&c.RoomW, "room-w", c.RoomW, "tiles per room horizontally")
	fs.IntVar(&c.RoomH, "room-h", c.RoomH, "tiles per room vertically")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed text (empty = time-based)")
	fs.Float64Var(&c.CoarseLoss, "coarse-loss", c.CoarseLoss, "noise rate on room connectivity")
	fs.Float64Var(&c.FineLoss, "fine-loss", c.FineLoss, "noise rate on terrain")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug|info|warn|error")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "snapshot database path")
}

// Maze converts to a generator config
func (c Config) Maze() maze.Config {
	return maze.Config{
		RoomsX:     c.RoomsX,
		RoomsY:     c.RoomsY,
		RoomW:      c.RoomW,
		RoomH:      c.RoomH,
		Seed:       c.Seed,
		CoarseLoss: c.CoarseLoss,
		FineLoss:   c.FineLoss,
	}
}

// Validate checks generator and logging settings
func (c Config) Validate() error {
	var errs []error
	if err := c.Maze().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
