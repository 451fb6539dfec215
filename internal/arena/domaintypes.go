package arena

import (
	"github.com/nimobeeren/InternationalDraughts/pkg/common"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type IEngine interface {
	ChooseMove(p engine.Position, maxDepth int) (common.Move, error)
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []common.Move
	comment  string
	result   int
}

// engineAPoints is 1 for a win of engine A, 0.5 for a draw and 0 for a loss.
func (r gameResult) engineAPoints() float64 {
	switch {
	case r.result == gameResultDraw:
		return 0.5
	case (r.result == gameResultWhiteWins) == r.gameInfo.engineAIsWhite:
		return 1
	default:
		return 0
	}
}
