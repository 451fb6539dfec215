package arena

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
)

func playGame(
	engineA, engineB IEngine,
	depth, maxPlies int,
	info gameInfo,
	logger zerolog.Logger,
) (gameResult, error) {

	logger.Debug().Int("game", info.gameNumber).Str("opening", info.opening).Msg("started game")

	var pos, err = common.NewPositionFromFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var moves []common.Move
	for {
		var legalMoves = pos.LegalMoves()
		if len(legalMoves) == 0 {
			var points = gameResultWhiteWins
			if pos.WhiteToMove() {
				points = gameResultBlackWins
			}
			return gameResult{gameInfo: info, moves: moves, comment: "no legal move", result: points}, nil
		}
		if len(moves) >= maxPlies {
			return gameResult{gameInfo: info, moves: moves, comment: "ply limit", result: gameResultDraw}, nil
		}
		var eng IEngine
		if pos.WhiteToMove() == info.engineAIsWhite {
			eng = engineA
		} else {
			eng = engineB
		}
		var bestMove, err = eng.ChooseMove(pos, depth)
		if err != nil {
			return gameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, err)
		}
		if !lo.ContainsBy(legalMoves, bestMove.SameAs) {
			return gameResult{}, fmt.Errorf("game %v: bad move %v in %v", info.gameNumber, bestMove, pos)
		}
		pos.MakeMove(bestMove)
		moves = append(moves, bestMove)
	}
}
