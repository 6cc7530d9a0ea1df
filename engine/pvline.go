package engine

import (
	"fmt"
	"strings"

	gm "negachess/chessmg"
)

// PVLine is the principal variation below a node, best move first.
type PVLine struct {
	Moves []gm.Move
}

// Clear empties the line, keeping its storage.
func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Update replaces the line with move followed by the child's line.
func (pv *PVLine) Update(move gm.Move, child PVLine) {
	pv.Clear()
	pv.Moves = append(pv.Moves, move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

// Clone returns an independent copy.
func (pv PVLine) Clone() PVLine {
	return PVLine{Moves: append([]gm.Move(nil), pv.Moves...)}
}

// GetPVMove returns the first move of the line, or the zero move.
func (pv PVLine) GetPVMove() gm.Move {
	if len(pv.Moves) == 0 {
		return gm.Move{}
	}
	return pv.Moves[0]
}

func (pv PVLine) String() string {
	parts := make([]string, 0, len(pv.Moves))
	for _, m := range pv.Moves {
		parts = append(parts, m.UCI())
	}
	return strings.Join(parts, " ")
}

// FormatScore renders a score for display: "mate"/"-mate" when a side is
// mated inside the horizon, centipawns otherwise.
func FormatScore(score int32) string {
	switch {
	case score >= Checkmate:
		return "mate"
	case score <= -Checkmate:
		return "-mate"
	}
	return fmt.Sprintf("cp %d", score)
}
