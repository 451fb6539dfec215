package engine

import (
	"github.com/nimobeeren/InternationalDraughts/pkg/common"
)

type node struct {
	position Position
	bestMove common.Move
}

// alphaBeta returns the minimax value of n from light's point of view.
// Light maximises, dark minimises.
func (e *Engine) alphaBeta(n *node, alpha, beta, depth, height int) int {
	e.checkStop()
	e.nodes++

	var p = n.position
	var moves = p.LegalMoves()
	if len(moves) == 0 {
		return lossIn(p.WhiteToMove(), height)
	}
	if depth <= 0 {
		return e.evaluator.Evaluate(p)
	}

	var maximizing = p.WhiteToMove()
	for _, move := range moves {
		var child = node{position: p}
		var score = e.searchChild(&child, move, alpha, beta, depth-1, height+1)
		if maximizing {
			if score > alpha {
				alpha = score
				n.bestMove = move
			}
		} else {
			if score < beta {
				beta = score
				n.bestMove = move
			}
		}
		if alpha >= beta {
			if maximizing {
				return beta
			}
			return alpha
		}
	}
	if maximizing {
		return alpha
	}
	return beta
}

// searchChild applies move, searches the child and takes the move back,
// also when the search unwinds on a stop.
func (e *Engine) searchChild(child *node, move common.Move, alpha, beta, depth, height int) int {
	child.position.MakeMove(move)
	defer child.position.UnmakeMove(move)
	return e.alphaBeta(child, alpha, beta, depth, height)
}

// checkStop runs at node entry before any move is applied.
func (e *Engine) checkStop() {
	if e.stop.consume() {
		panic(errSearchStopped)
	}
	select {
	case <-e.done:
		panic(errSearchStopped)
	default:
	}
}
