package engine

import "sync/atomic"

const (
	valueMate     = 1_000_000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*MaxDepth
	valueLoss     = -valueWin
)

// lossIn is the score of a side that cannot move at the given height,
// from light's point of view.
func lossIn(whiteToMove bool, height int) int {
	if whiteToMove {
		return -valueMate + height
	}
	return valueMate - height
}

// IsWinScore reports a forced win or loss rather than a heuristic value.
func IsWinScore(score int) bool {
	return score >= valueWin || score <= valueLoss
}

// stopToken is a single-shot stop request.
type stopToken struct {
	requested atomic.Bool
}

func (s *stopToken) request() {
	s.requested.Store(true)
}

// consume reports a pending request and clears it.
func (s *stopToken) consume() bool {
	return s.requested.Load() && s.requested.CompareAndSwap(true, false)
}
