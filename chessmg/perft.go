package chessmg

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Perft counts leaf nodes of the legal move tree to the given depth.
func Perft(gs *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := gs.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		gs.ApplyMove(m)
		nodes += Perft(gs, depth-1)
		gs.UndoMove()
	}
	return nodes
}

// DivideEntry is the subtree count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// PerftDivide returns the per-root-move subtree counts sorted by coordinate
// notation, and their total.
func PerftDivide(gs *GameState, depth int) ([]DivideEntry, uint64) {
	if depth <= 0 {
		return nil, 1
	}
	moves := gs.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	var total uint64
	for _, m := range moves {
		gs.ApplyMove(m)
		n := Perft(gs, depth-1)
		gs.UndoMove()
		entries = append(entries, DivideEntry{Move: m, Nodes: n})
		total += n
	}
	slices.SortFunc(entries, func(a, b DivideEntry) int { return strings.Compare(a.Move.UCI(), b.Move.UCI()) })
	return entries, total
}
