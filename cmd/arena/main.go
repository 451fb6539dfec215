package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/nimobeeren/InternationalDraughts/internal/arena"
	"github.com/nimobeeren/InternationalDraughts/internal/config"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
)

var flgConfig string

func main() {
	flag.StringVar(&flgConfig, "config", "", "path to config file")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg, err = config.Load(flgConfig)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.Info().Interface("arena", cfg.Arena).Msg("config")

	newEngineA, err := engineFactory(cfg, cfg.Arena.EvalA)
	if err != nil {
		return err
	}
	newEngineB, err := engineFactory(cfg, cfg.Arena.EvalB)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var a = &arena.Arena{
		NewEngineA:  newEngineA,
		NewEngineB:  newEngineB,
		Depth:       cfg.Arena.Depth,
		Concurrency: cfg.Arena.Concurrency,
		MaxPlies:    cfg.Arena.MaxPlies,
		Logger:      logger,
	}
	stats, err := a.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%v vs %v: %v - %v - %v  [%.3f] %v games, Elo difference: %.1f, LOS: %.1f %%\n",
		cfg.Arena.EvalA, cfg.Arena.EvalB, stats.Wins, stats.Losses, stats.Draws,
		stats.WinningFraction, stats.Games, stats.EloDifference, stats.LOS*100)
	return nil
}

// engineFactory builds one engine per worker; search state is not shared.
func engineFactory(cfg *config.Config, evalName string) (func() arena.IEngine, error) {
	if _, err := cfg.Evaluator(evalName); err != nil {
		return nil, err
	}
	return func() arena.IEngine {
		var evaluator, _ = cfg.Evaluator(evalName)
		return engine.NewEngine(evaluator, zerolog.Nop())
	}, nil
}
