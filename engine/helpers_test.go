package engine

import (
	"strings"
	"testing"

	gm "negachess/chessmg"
)

var letters = map[byte]gm.Piece{
	'P': gm.WhitePawn, 'N': gm.WhiteKnight, 'B': gm.WhiteBishop,
	'R': gm.WhiteRook, 'Q': gm.WhiteQueen, 'K': gm.WhiteKing,
	'p': gm.BlackPawn, 'n': gm.BlackKnight, 'b': gm.BlackBishop,
	'r': gm.BlackRook, 'q': gm.BlackQueen, 'k': gm.BlackKing,
}

// setup builds a position without castling rights from a rank-8-first placement.
func setup(t testing.TB, placement string, side gm.Color) *gm.GameState {
	t.Helper()
	gs := gm.NewEmptyGameState()
	for row, rank := range strings.Split(placement, "/") {
		col := 0
		for i := 0; i < len(rank); i++ {
			if ch := rank[i]; ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			gs.SetPiece(gm.Square{Row: row, Col: col}, letters[rank[i]])
			col++
		}
	}
	gs.SetSideToMove(side)
	if !gs.Validate() {
		t.Fatalf("invalid placement %q", placement)
	}
	return gs
}

func playLine(t testing.TB, gs *gm.GameState, line string) {
	t.Helper()
	for _, coord := range strings.Fields(line) {
		m, ok := gm.FindMove(gs.LegalMoves(), coord)
		if !ok {
			t.Fatalf("%s not legal in\n%s", coord, gs)
		}
		gs.ApplyMove(m)
	}
}
