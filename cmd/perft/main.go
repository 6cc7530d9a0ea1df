package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"

	gm "negachess/chessmg"
)

func main() {
	depth := flag.Int("depth", 0, "Perft depth (required)")
	moves := flag.String("moves", "", "Space separated coordinate moves played from the initial position first")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check the count against dragontoothmg (queen promotions only)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	gs := gm.NewGameState()
	oracle := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	for _, coord := range strings.Fields(*moves) {
		m, ok := gm.FindMove(gs.LegalMoves(), coord)
		if !ok {
			fmt.Fprintf(os.Stderr, "illegal move %q\n", coord)
			os.Exit(2)
		}
		gs.ApplyMove(m)
		if !applyOracle(&oracle, m.UCI()) {
			fmt.Fprintf(os.Stderr, "dragontoothmg rejected %q\n", coord)
			os.Exit(2)
		}
	}

	if *divide {
		entries, total := gm.PerftDivide(gs, *depth)
		mismatch := false
		for _, e := range entries {
			if !*verify {
				fmt.Printf("%s: %d\n", e.Move.UCI(), e.Nodes)
				continue
			}
			want, ok := oracleDivide(&oracle, e.Move.UCI(), *depth)
			if !ok || want != e.Nodes {
				mismatch = true
				fmt.Printf("%s: %d  MISMATCH dragontoothmg=%d\n", e.Move.UCI(), e.Nodes, want)
				continue
			}
			fmt.Printf("%s: %d\n", e.Move.UCI(), e.Nodes)
		}
		fmt.Printf("Total: %d\n", total)
		if *verify {
			if want := oraclePerft(&oracle, *depth); want != total || mismatch {
				fmt.Fprintf(os.Stderr, "MISMATCH: got %d, dragontoothmg %d\n", total, want)
				os.Exit(1)
			}
			fmt.Println("verified against dragontoothmg")
		}
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes, nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		nodes = gm.Perft(gs, *depth)
		totalNodes += nodes
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *verify {
		want := oraclePerft(&oracle, *depth)
		if want != nodes {
			fmt.Fprintf(os.Stderr, "MISMATCH: got %d, dragontoothmg %d\n", nodes, want)
			os.Exit(1)
		}
		fmt.Printf("verified against dragontoothmg: %d\n", want)
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
