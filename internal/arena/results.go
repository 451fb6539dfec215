package arena

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type Stats struct {
	Games           int
	Wins            int
	Losses          int
	Draws           int
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}

func showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
	logger zerolog.Logger,
	stats *Stats,
) error {
	var results []gameResult
	for gameResult := range gameResults {
		results = append(results, gameResult)
		logger.Info().
			Int("game", gameResult.gameInfo.gameNumber).
			Str("result", gameResultString(gameResult.result)).
			Str("comment", gameResult.comment).
			Int("plies", len(gameResult.moves)).
			Msg("finished game")
		*stats = computeStat(results)
		logger.Info().
			Int("wins", stats.Wins).
			Int("losses", stats.Losses).
			Int("draws", stats.Draws).
			Float64("fraction", stats.WinningFraction).
			Float64("elo", stats.EloDifference).
			Float64("los", stats.LOS).
			Msg("score")
	}
	return nil
}

// computeStat scores the match from engine A's side.
// https://www.chessprogramming.org/Match_Statistics
func computeStat(results []gameResult) Stats {
	var wins = lo.CountBy(results, func(r gameResult) bool { return r.engineAPoints() == 1 })
	var losses = lo.CountBy(results, func(r gameResult) bool { return r.engineAPoints() == 0 })
	var draws = len(results) - wins - losses
	var stats = Stats{
		Games:  len(results),
		Wins:   wins,
		Losses: losses,
		Draws:  draws,
		LOS:    0.5,
	}
	if stats.Games == 0 {
		return stats
	}
	stats.WinningFraction = lo.SumBy(results, gameResult.engineAPoints) / float64(stats.Games)
	stats.EloDifference = -math.Log(1/stats.WinningFraction-1) * 400 / math.Ln10
	if wins+losses != 0 {
		stats.LOS = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return stats
}

func gameResultString(v int) string {
	if v == gameResultWhiteWins {
		return "1-0"
	}
	if v == gameResultBlackWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
