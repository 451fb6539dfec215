package arena

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Arena plays engine A against engine B from every opening with both colours.
type Arena struct {
	NewEngineA  func() IEngine
	NewEngineB  func() IEngine
	Depth       int
	Concurrency int
	MaxPlies    int
	Openings    []string
	Logger      zerolog.Logger
}

func (a *Arena) Run(ctx context.Context) (Stats, error) {
	if a.Depth < 1 || a.Concurrency < 1 || a.MaxPlies < 1 {
		return Stats{}, errors.New("arena needs positive depth, concurrency and max plies")
	}
	var openings = a.Openings
	if len(openings) == 0 {
		openings = firstMoveOpenings()
	}

	a.Logger.Info().
		Int("NumCPU", runtime.NumCPU()).
		Int("GOMAXPROCS", runtime.GOMAXPROCS(0)).
		Int("concurrency", a.Concurrency).
		Int("depth", a.Depth).
		Int("openings", len(openings)).
		Msg("arena started")
	defer a.Logger.Info().Msg("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, openings, gameInfos)
	})

	g.Go(func() error {
		return showResults(ctx, gameResults, a.Logger, &stats)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < a.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return stats, err
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = a.NewEngineA()
	var engineB = a.NewEngineB()
	for gameInfo := range gameInfos {
		if err := ctx.Err(); err != nil {
			return err
		}
		var res, err = playGame(engineA, engineB, a.Depth, a.MaxPlies, gameInfo, a.Logger)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
