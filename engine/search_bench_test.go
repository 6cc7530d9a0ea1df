package engine

import (
	"testing"

	gm "negachess/chessmg"
)

func benchSearch(b *testing.B, gs *gm.GameState, depth int, prune bool) {
	moves := gs.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if prune {
			Search(gs, moves, depth)
		} else {
			SearchNoPruning(gs, moves, depth)
		}
	}
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	benchSearch(b, gm.NewGameState(), 3, true)
}

func BenchmarkSearchNoPruning_Initial_D3(b *testing.B) {
	benchSearch(b, gm.NewGameState(), 3, false)
}

func BenchmarkEvaluate(b *testing.B) {
	gs := gm.NewGameState()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(gs)
	}
}
