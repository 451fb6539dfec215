package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nimobeeren/InternationalDraughts/internal/config"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
	"github.com/nimobeeren/InternationalDraughts/pkg/server"
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
	evaluator, err := cfg.NewEvaluator()
	if err != nil {
		return err
	}

	var srv = server.New(engine.NewEngine(evaluator, logger), evaluator, cfg.Depth, logger)
	var httpServer = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", cfg.Server.Addr).Str("eval", cfg.Eval).Msg("server started")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		var shutdownCtx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Close()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
