package arena

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
	"github.com/nimobeeren/InternationalDraughts/pkg/eval"
)

func newEngine(w eval.Weights) func() IEngine {
	return func() IEngine {
		return engine.NewEngine(eval.NewEvaluationService(w), zerolog.Nop())
	}
}

func TestFirstMoveOpenings(t *testing.T) {
	var openings = firstMoveOpenings()
	if len(openings) != 9 {
		t.Fatal(openings)
	}
	for _, fen := range openings {
		var p, err = common.NewPositionFromFEN(fen)
		if err != nil || p.WhiteToMove() || p.Count(common.WhiteMan) != 20 {
			t.Error(fen, err)
		}
	}
}

func TestPlayGameNoLegalMove(t *testing.T) {
	var res, err = playGame(newEngine(eval.DefaultWeights)(), newEngine(eval.DefaultWeights)(), 2, 100,
		gameInfo{opening: "B:W23:B46,47,48,49,50", engineAIsWhite: false, gameNumber: 1}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if res.result != gameResultWhiteWins || len(res.moves) != 0 || res.engineAPoints() != 0 {
		t.Error(res)
	}
}

func TestPlayGamePlyLimit(t *testing.T) {
	var res, err = playGame(newEngine(eval.DefaultWeights)(), newEngine(eval.MaterialWeights)(), 1, 3,
		gameInfo{opening: common.InitialPositionFen, engineAIsWhite: true, gameNumber: 1}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if res.result != gameResultDraw || len(res.moves) != 3 || res.engineAPoints() != 0.5 {
		t.Error(res)
	}
}

type badEngine struct{}

func (badEngine) ChooseMove(p engine.Position, maxDepth int) (common.Move, error) {
	return common.Move{From: 1, To: 2}, nil
}

func TestArenaStopsOnBadMove(t *testing.T) {
	var a = &Arena{
		NewEngineA:  func() IEngine { return badEngine{} },
		NewEngineB:  newEngine(eval.DefaultWeights),
		Depth:       1,
		Concurrency: 2,
		MaxPlies:    10,
		Logger:      zerolog.Nop(),
	}
	var _, err = a.Run(context.Background())
	if err == nil {
		t.Error("bad move accepted")
	}
}

func TestArenaRun(t *testing.T) {
	var a = &Arena{
		NewEngineA:  newEngine(eval.DefaultWeights),
		NewEngineB:  newEngine(eval.MaterialWeights),
		Depth:       2,
		Concurrency: 3,
		MaxPlies:    40,
		Logger:      zerolog.Nop(),
	}
	var stats, err = a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games != 18 || stats.Wins+stats.Losses+stats.Draws != 18 {
		t.Error(stats)
	}

	a.Depth = 0
	if _, err = a.Run(context.Background()); err == nil {
		t.Error("zero depth accepted")
	}
}

func TestArenaCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var a = &Arena{
		NewEngineA:  newEngine(eval.DefaultWeights),
		NewEngineB:  newEngine(eval.MaterialWeights),
		Depth:       1,
		Concurrency: 1,
		MaxPlies:    10,
		Openings:    []string{common.InitialPositionFen},
		Logger:      zerolog.Nop(),
	}
	var _, err = a.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Error(err)
	}
}

func TestComputeStat(t *testing.T) {
	var results = []gameResult{
		{gameInfo: gameInfo{engineAIsWhite: true}, result: gameResultWhiteWins},
		{gameInfo: gameInfo{engineAIsWhite: true}, result: gameResultBlackWins},
		{gameInfo: gameInfo{engineAIsWhite: false}, result: gameResultBlackWins},
		{gameInfo: gameInfo{engineAIsWhite: false}, result: gameResultDraw},
	}
	var stats = computeStat(results)
	if stats.Games != 4 || stats.Wins != 2 || stats.Losses != 1 || stats.Draws != 1 {
		t.Error(stats)
	}
	if stats.WinningFraction != 0.625 || stats.EloDifference <= 0 || stats.LOS <= 0.5 {
		t.Error(stats)
	}

	var even = computeStat(results[3:])
	if even.WinningFraction != 0.5 || math.Abs(even.EloDifference) > 1e-9 || even.LOS != 0.5 {
		t.Error(even)
	}
	if empty := computeStat(nil); empty.Games != 0 || empty.LOS != 0.5 {
		t.Error(empty)
	}
}
