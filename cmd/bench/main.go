package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nimobeeren/InternationalDraughts/internal/config"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
)

var (
	flgEval  string
	flgDepth int
	flgPerft int
	flgFile  string
)

func main() {
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
	flag.IntVar(&flgDepth, "depth", engine.DefaultDepth, "search depth per position")
	flag.IntVar(&flgPerft, "perft", 0, "count leaf nodes of the start position to this depth instead")
	flag.StringVar(&flgFile, "file", "", "file with one FEN per line, default is the built-in set")
	flag.Parse()

	var logger, err = config.NewLogger(os.Stderr, "info")
	if err == nil {
		if flgPerft > 0 {
			err = runPerft(flgPerft)
		} else {
			err = runBenchmark(flgFile, flgEval, flgDepth, logger)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
