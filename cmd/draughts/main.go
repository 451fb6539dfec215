package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/nimobeeren/InternationalDraughts/internal/config"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
	"github.com/nimobeeren/InternationalDraughts/pkg/hub"
)

const (
	name   = "AlphaBeast"
	author = "Nimo Beeren & Maas van Apeldoorn"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgConfig   string
	flgEval     string
)

func main() {
	flag.StringVar(&flgConfig, "config", "", "path to config file")
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
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
	if flgEval != "" {
		cfg.Eval = flgEval
	}

	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.Info().
		Str("VersionName", versionName).
		Str("BuildDate", buildDate).
		Str("GitRevision", gitRevision).
		Str("RuntimeVersion", runtime.Version()).
		Str("GOARCH", runtime.GOARCH).
		Str("GOOS", runtime.GOOS).
		Str("eval", cfg.Eval).
		Msg(name)

	evaluator, err := cfg.NewEvaluator()
	if err != nil {
		return err
	}
	var eng = engine.NewEngine(evaluator, logger)

	var protocol = hub.New(name, author, versionName, eng, evaluator, cfg.Depth, logger)
	protocol.Run(os.Stdin, os.Stdout)
	return nil
}
