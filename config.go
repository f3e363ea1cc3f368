package main

import (
	"flag"
	"fmt"
	"io"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/logging"
	"snake-arcade/ui"
)

// Config holds everything settable from the command line.
type Config struct {
	TickRate    int
	Width       int
	Height      int
	CellSize    int
	Display     string
	Seed        uint64
	LogLevel    string
	LogFormat   string
	LogFile     string
	MetricsAddr string
}

func defaultConfig() Config {
	return Config{
		TickRate:  game.DefaultTickRate,
		Width:     types.DefaultWidth,
		Height:    types.DefaultHeight,
		CellSize:  types.DefaultCellSize,
		Display:   ui.BackendRaylib,
		LogLevel:  "info",
		LogFormat: logging.FormatText,
	}
}

func parseConfig(args []string, output io.Writer) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.TickRate, "speed", cfg.TickRate, "Game speed in ticks per second")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Board width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Board height in pixels")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	fs.StringVar(&cfg.Display, "display", cfg.Display, "Display backend: raylib or terminal")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for food placement (0 = time based)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address, e.g. :2112")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Grid() types.Grid {
	return types.NewGrid(c.Width, c.Height, c.CellSize)
}

func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("speed must be positive, got %d", c.TickRate)
	}
	if err := c.Grid().Validate(); err != nil {
		return err
	}
	switch c.Display {
	case ui.BackendRaylib, ui.BackendTerminal:
	default:
		return fmt.Errorf("unknown display %q", c.Display)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
