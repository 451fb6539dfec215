package arena

import (
	"context"

	"github.com/samber/lo"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
)

// firstMoveOpenings returns the position after each legal first move.
func firstMoveOpenings() []string {
	var p = common.NewInitialPosition()
	return lo.Map(p.LegalMoves(), func(m common.Move, _ int) string {
		p.MakeMove(m)
		defer p.UnmakeMove(m)
		return p.FEN()
	})
}

// loadOpenings sends every opening twice, once per colour assignment.
func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	for i, fen := range openings {
		if _, err := common.NewPositionFromFEN(fen); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}
