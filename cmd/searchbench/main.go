package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	gm "negachess/chessmg"
	"negachess/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	movesFlag := flag.String("moves", "", "coordinate moves played from the initial position before searching")
	noPrune := flag.Bool("noprune", false, "run the plain negamax reference instead of alpha-beta")
	compare := flag.Bool("compare", false, "run both searches and fail if they disagree")
	stats := flag.Bool("stats", false, "print search statistics after each iteration")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 || *depthFlag > engine.MaxDepth {
		log.Fatalf("depth must be in 1..%d, got %d", engine.MaxDepth, *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	var stopProfile func()
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		stopProfile = func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}
	}

	err := run(os.Stdout, benchConfig{
		depth:   *depthFlag,
		repeat:  *repeatFlag,
		moves:   *movesFlag,
		noPrune: *noPrune,
		compare: *compare,
		stats:   *stats,
	})
	if stopProfile != nil {
		stopProfile()
	}
	if err != nil {
		log.Fatal(err)
	}

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}

var errSearchMismatch = errors.New("alpha-beta and negamax disagree")

type benchConfig struct {
	depth   int
	repeat  int
	moves   string
	noPrune bool
	compare bool
	stats   bool
}

// run performs the timed searches. Errors are returned so the caller can
// stop the CPU profile before exiting.
func run(out io.Writer, cfg benchConfig) error {
	depth := cfg.depth
	fmt.Fprintf(out, "searchbench: moves=%q depth=%d repeat=%d\n", cfg.moves, depth, cfg.repeat)

	var total engine.Stats
	startAll := time.Now()
	for i := 0; i < cfg.repeat; i++ {
		// Fresh position for each run
		gs := gm.NewGameState()
		for _, coord := range strings.Fields(cfg.moves) {
			m, ok := gm.FindMove(gs.LegalMoves(), coord)
			if !ok {
				return fmt.Errorf("illegal move %q", coord)
			}
			gs.ApplyMove(m)
		}
		moves := gs.LegalMoves()

		iterStart := time.Now()
		var res engine.Result
		if cfg.noPrune {
			res = engine.SearchNoPruning(gs, moves, depth)
		} else {
			res = engine.Search(gs, moves, depth)
		}
		iterElapsed := time.Since(iterStart)
		total.Add(res.Stats)

		ms := engine.Max(iterElapsed.Milliseconds(), 1)
		fmt.Fprintln(out,
			"info depth", depth,
			"score", engine.FormatScore(res.Score),
			"nodes", res.Stats.Nodes,
			"time", ms,
			"nps", res.Stats.Nodes*1000/uint64(ms),
			"pv", res.PV.String(),
		)
		if res.Found {
			fmt.Fprintf(out, "iteration %d: bestmove %s  time=%v\n", i+1, res.Move.UCI(), iterElapsed)
		} else {
			fmt.Fprintf(out, "iteration %d: no move (game over)  time=%v\n", i+1, iterElapsed)
		}
		if cfg.stats {
			res.Stats.Dump(out)
		}

		if cfg.compare {
			ref := engine.SearchNoPruning(gs, moves, depth)
			if ref.Found != res.Found || !ref.Move.Equal(res.Move) || ref.Score != res.Score {
				return fmt.Errorf("%w: alpha-beta %s (%d), negamax %s (%d)",
					errSearchMismatch, res.Move.UCI(), res.Score, ref.Move.UCI(), ref.Score)
			}
			fmt.Fprintf(out, "reference agrees; nodes %d vs %d\n", res.Stats.Nodes, ref.Stats.Nodes)
		}
	}
	totalElapsed := time.Since(startAll)
	fmt.Fprintf(out, "total time: %v  total nodes: %d\n", totalElapsed, total.Nodes)
	return nil
}
