package chessmg_test

import (
	"sort"
	"strings"
	"testing"

	"negachess/chessmg"
)

var noCastling = chessmg.CastlingRights{}

// sq converts algebraic coordinates, failing the test on bad input.
func sq(t testing.TB, alg string) chessmg.Square {
	t.Helper()
	s, err := chessmg.ParseSquare(alg)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", alg, err)
	}
	return s
}

var pieceLetters = map[byte]chessmg.Piece{
	'P': chessmg.WhitePawn, 'N': chessmg.WhiteKnight, 'B': chessmg.WhiteBishop,
	'R': chessmg.WhiteRook, 'Q': chessmg.WhiteQueen, 'K': chessmg.WhiteKing,
	'p': chessmg.BlackPawn, 'n': chessmg.BlackKnight, 'b': chessmg.BlackBishop,
	'r': chessmg.BlackRook, 'q': chessmg.BlackQueen, 'k': chessmg.BlackKing,
}

// position builds a state from a piece-placement string in the usual
// rank-8-first notation ("4k3/8/8/8/8/8/8/4K3").
func position(t testing.TB, placement string, side chessmg.Color, cr chessmg.CastlingRights, ep string) *chessmg.GameState {
	t.Helper()
	gs := chessmg.NewEmptyGameState()
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		t.Fatalf("placement %q: want 8 ranks, got %d", placement, len(ranks))
	}
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p, ok := pieceLetters[ch]
			if !ok || col > 7 {
				t.Fatalf("placement %q: bad rank %q", placement, rank)
			}
			gs.SetPiece(chessmg.Square{Row: row, Col: col}, p)
			col++
		}
		if col != 8 {
			t.Fatalf("placement %q: rank %q covers %d files", placement, rank, col)
		}
	}
	gs.SetSideToMove(side)
	gs.SetCastlingRights(cr)
	if ep != "" {
		gs.SetEnPassantTarget(sq(t, ep))
	}
	if !gs.Validate() {
		t.Fatalf("placement %q: invalid position", placement)
	}
	return gs
}

// play applies space separated coordinate moves, each of which must be legal.
func play(t testing.TB, gs *chessmg.GameState, line string) {
	t.Helper()
	for _, coord := range strings.Fields(line) {
		m, ok := chessmg.FindMove(gs.LegalMoves(), coord)
		if !ok {
			t.Fatalf("move %s is not legal in\n%s", coord, gs)
		}
		gs.ApplyMove(m)
	}
}

// uciSet returns the sorted coordinate strings of moves, castles tagged.
func uciSet(moves []chessmg.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		s := m.UCI()
		if m.IsCastle() {
			s += "#c"
		}
		if m.IsEnPassant() {
			s += "#ep"
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func hasMove(moves []chessmg.Move, coord string) bool {
	_, ok := chessmg.FindMove(moves, coord)
	return ok
}
