package main

import "github.com/dylhunn/dragontoothmg"

// oracleMoves lists dragontoothmg's legal moves without underpromotions,
// matching the move set of the chessmg generator.
func oracleMoves(b *dragontoothmg.Board) []dragontoothmg.Move {
	all := b.GenerateLegalMoves()
	out := all[:0]
	for _, m := range all {
		if p := m.Promote(); p != 0 && p != dragontoothmg.Queen {
			continue
		}
		out = append(out, m)
	}
	return out
}

func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := oracleMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func oracleUCI(m dragontoothmg.Move) string {
	s := square(m.From()) + square(m.To())
	if m.Promote() != 0 {
		s += "q"
	}
	return s
}

func square(idx uint8) string {
	return string([]byte{'a' + idx%8, '1' + idx/8})
}

// oracleDivide counts the subtree below one root move given in coordinate form.
func oracleDivide(b *dragontoothmg.Board, coord string, depth int) (uint64, bool) {
	for _, m := range oracleMoves(b) {
		if oracleUCI(m) != coord {
			continue
		}
		unapply := b.Apply(m)
		n := oraclePerft(b, depth-1)
		unapply()
		return n, true
	}
	return 0, false
}

// applyOracle plays the move given in coordinate form and reports whether it was legal.
func applyOracle(b *dragontoothmg.Board, coord string) bool {
	for _, m := range oracleMoves(b) {
		if oracleUCI(m) == coord {
			b.Apply(m)
			return true
		}
	}
	return false
}
