package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
)

var ErrNoMove = errors.New("no legal move")

// Position is the board the search borrows. Every MakeMove is matched by
// an UnmakeMove of the same move in LIFO order.
type Position interface {
	common.Board
	LegalMoves() []common.Move
	MakeMove(m common.Move)
	UnmakeMove(m common.Move)
}

type Evaluator interface {
	Evaluate(b common.Board) int
}

type SearchParams struct {
	Position Position
	Depth    int
	Progress func(si common.SearchInfo)
}

type Engine struct {
	evaluator Evaluator
	logger    zerolog.Logger
	stop      stopToken
	lastScore atomic.Int64
	done      <-chan struct{}
	progress  func(common.SearchInfo)
	start     time.Time
	nodes     int64
}

func NewEngine(evaluator Evaluator, logger zerolog.Logger) *Engine {
	return &Engine{
		evaluator: evaluator,
		logger:    logger,
	}
}

// RequestStop asks the running (or the next) search to stop. A request that
// arrives after the last poll of a search is dropped when that search
// returns. Safe to call from any goroutine.
func (e *Engine) RequestStop() {
	e.stop.request()
}

// LastScore is the value of the most recently chosen move, for display only.
func (e *Engine) LastScore() int {
	return int(e.lastScore.Load())
}

// ChooseMove searches p up to maxDepth and returns the move to play.
// p is returned in the state it was given.
func (e *Engine) ChooseMove(p Position, maxDepth int) (common.Move, error) {
	var si = e.Search(context.Background(), SearchParams{
		Position: p,
		Depth:    maxDepth,
	})
	if si.Move.IsEmpty() {
		return common.MoveEmpty, ErrNoMove
	}
	return si.Move, nil
}

func (e *Engine) Search(ctx context.Context, searchParams SearchParams) common.SearchInfo {
	defer e.stop.consume()
	e.start = time.Now()
	e.nodes = 0
	e.done = ctx.Done()
	e.progress = searchParams.Progress
	e.lastScore.Store(0)

	var p = searchParams.Position
	var rootMoves = p.LegalMoves()
	if len(rootMoves) == 0 {
		e.logger.Info().Msg("no legal move")
		var si = e.currentSearchResult(0, lossIn(p.WhiteToMove(), 0), common.MoveEmpty)
		e.lastScore.Store(int64(si.Score))
		return si
	}

	var result = iterativeDeepening(e, p, searchParams.Depth)
	if result.Move.IsEmpty() {
		result.Move = lo.Sample(rootMoves)
		result.Random = true
		e.logger.Warn().
			Str("move", result.Move.String()).
			Bool("stopped", result.Stopped).
			Msg("no iteration completed, playing a random move")
	}
	return result
}

func (e *Engine) currentSearchResult(depth, score int, move common.Move) common.SearchInfo {
	return common.SearchInfo{
		Depth: depth,
		Score: score,
		Move:  move,
		Nodes: e.nodes,
		Time:  time.Since(e.start),
	}
}
