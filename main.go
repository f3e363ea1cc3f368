package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-arcade/game"
	"snake-arcade/logging"
	"snake-arcade/metrics"
	"snake-arcade/ui"

	"github.com/google/uuid"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("snake exited", "err", err)
		closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	session := uuid.NewString()
	logger = logger.With("session", session)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var recorders []game.Recorder
	if cfg.MetricsAddr != "" {
		collector := metrics.NewCollector(session)
		ln, err := metrics.Listen(cfg.MetricsAddr)
		if err != nil {
			return err
		}
		metricsCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := collector.Serve(metricsCtx, ln, logger.With("component", "metrics")); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
		recorders = append(recorders, collector)
	}

	backend, err := ui.Open(cfg.Display, cfg.Grid(), ui.Caption)
	if err != nil {
		return err
	}
	defer backend.Close()

	g, err := game.NewGame(game.Options{
		Grid:      cfg.Grid(),
		TickRate:  cfg.TickRate,
		Seed:      seed,
		Logger:    logger.With("component", "game"),
		Recorders: recorders,
	}, backend, backend, ui.NewFrameClock())
	if err != nil {
		return err
	}

	logger.Info("starting", "display", cfg.Display, "seed", seed)
	err = g.Run(ctx)

	stats := g.Stats()
	logger.Info("session summary",
		"elapsed", stats.Elapsed().Round(time.Second),
		"ticks", stats.Ticks,
		"food_eaten", stats.FoodEaten,
		"resets", stats.Resets,
		"best_length", stats.BestLength,
		"average_length", stats.AverageLength())
	return err
}

// newLogger picks the log destination. The terminal backend owns the screen,
// so without a log file its logs are dropped.
func newLogger(cfg Config) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	case cfg.Display == ui.BackendTerminal:
		w = io.Discard
	}

	logger, err := logging.New(w, level, cfg.LogFormat)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return logger, closeLog, nil
}
