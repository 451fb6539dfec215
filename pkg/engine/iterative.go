package engine

import (
	"errors"
	"time"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
)

var errSearchStopped = errors.New("search stopped")

// iterativeDeepening searches depth 1, 2, ... maxDepth and keeps the result
// of the deepest iteration that completed.
func iterativeDeepening(e *Engine, p Position, maxDepth int) common.SearchInfo {
	var result = e.currentSearchResult(0, 0, common.MoveEmpty)
	for depth := 1; depth <= maxDepth; depth++ {
		var score, move, ok = searchDepth(e, p, depth)
		if !ok {
			result.Stopped = true
			result.Nodes = e.nodes
			result.Time = time.Since(e.start)
			e.logger.Info().
				Int("depth", depth).
				Int64("nodes", e.nodes).
				Msg("search stopped")
			break
		}
		result = e.currentSearchResult(depth, score, move)
		e.lastScore.Store(int64(score))
		e.logger.Debug().
			Int("depth", depth).
			Str("move", move.String()).
			Int("score", score).
			Int64("nodes", e.nodes).
			Dur("time", result.Time).
			Msg("iteration complete")
		if e.progress != nil {
			e.progress(result)
		}
	}
	return result
}

// searchDepth runs one iteration. ok is false when the iteration was stopped;
// the moves applied below the root are already taken back by then.
func searchDepth(e *Engine, p Position, depth int) (score int, move common.Move, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchStopped {
				ok = false
				return
			}
			panic(r)
		}
	}()

	const height = 0
	var root = node{position: p}
	score = e.alphaBeta(&root, -valueInfinity, valueInfinity, depth, height)
	return score, root.bestMove, true
}
