package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nimobeeren/InternationalDraughts/internal/evalbuilder"
	"github.com/nimobeeren/InternationalDraughts/pkg/common"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
)

//go:embed positions.txt
var positionsTxt string

func runBenchmark(path, evalName string, depth int, logger zerolog.Logger) error {
	if err := engine.ValidateDepth(depth); err != nil {
		return err
	}
	logger.Info().Str("eval", evalName).Int("depth", depth).Msg("benchmark started")
	defer logger.Info().Msg("benchmark finished")

	var text = positionsTxt
	if path != "" {
		var data, err = os.ReadFile(path)
		if err != nil {
			return err
		}
		text = string(data)
	}
	var positions, err = parsePositions(text)
	if err != nil {
		return err
	}
	evaluator, err := evalbuilder.Get(evalName)
	if err != nil {
		return err
	}
	benchmark(positions, engine.NewEngine(evaluator, logger), depth)
	return nil
}

func parsePositions(text string) ([]*common.Position, error) {
	var result []*common.Position
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var p, err = common.NewPositionFromFEN(line)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

func benchmark(positions []*common.Position, eng *engine.Engine, depth int) {
	var ctx = context.Background()
	var start = time.Now()
	var nodes int64
	for _, p := range positions {
		var searchInfo = eng.Search(ctx, engine.SearchParams{
			Position: p,
			Depth:    depth,
		})
		nodes += searchInfo.Nodes
		fmt.Println(p.FEN(), searchInfo.Move, searchInfo.Score, searchInfo.Nodes)
	}
	var elapsed = time.Since(start)
	fmt.Println("Time", elapsed)
	fmt.Println("Nodes", nodes)
	fmt.Println("kNPS", nodes/(elapsed.Milliseconds()+1))
}

func runPerft(depth int) error {
	var p = common.NewInitialPosition()
	for d := 1; d <= depth; d++ {
		var start = time.Now()
		var nodes = perft(p, d)
		fmt.Println("Depth", d, "Nodes", nodes, "Time", time.Since(start))
	}
	return nil
}

func perft(p *common.Position, depth int) int {
	var moves = p.LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	var result = 0
	for _, m := range moves {
		p.MakeMove(m)
		result += perft(p, depth-1)
		p.UnmakeMove(m)
	}
	return result
}
