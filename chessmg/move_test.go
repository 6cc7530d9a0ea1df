package chessmg_test

import (
	"testing"

	"golang.org/x/exp/slices"

	"negachess/chessmg"
)

func TestMoveNotation(t *testing.T) {
	cases := []struct {
		name      string
		placement string
		side      chessmg.Color
		cr        chessmg.CastlingRights
		ep        string
		coord     string
		want      string
	}{
		{"pawn push", "4k3/8/8/8/8/8/4P3/4K3", chessmg.White, noCastling, "", "e2e4", "e4"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3", chessmg.White, noCastling, "", "e4d5", "exd5"},
		{"knight move", "4k3/8/8/8/8/8/8/4K1N1", chessmg.White, noCastling, "", "g1f3", "Nf3"},
		{"rook move", "4k3/8/8/8/8/8/r7/7K", chessmg.Black, noCastling, "", "a2a8", "Ra8"},
		{"queen capture", "4k3/8/8/8/8/8/3q4/3QK3", chessmg.White, noCastling, "", "d1d2", "Qxd2"},
		{"king capture", "4k3/8/8/8/8/8/4p3/4K3", chessmg.White, noCastling, "", "e1e2", "Kxe2"},
		{"short castle", "4k3/8/8/8/8/8/8/4K2R", chessmg.White, chessmg.AllCastlingRights, "", "e1g1", "O-O"},
		{"long castle", "r3k3/8/8/8/8/8/8/4K3", chessmg.Black, chessmg.AllCastlingRights, "", "e8c8", "O-O-O"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3", chessmg.White, noCastling, "d6", "e5d6", "exd6"},
		{"promotion", "k7/4P3/8/8/8/8/8/4K3", chessmg.White, noCastling, "", "e7e8", "e8=Q"},
		{"capture promotion", "k4r2/4P3/8/8/8/8/8/4K3", chessmg.White, noCastling, "", "e7f8", "exf8=Q"},
	}
	for _, c := range cases {
		gs := position(t, c.placement, c.side, c.cr, c.ep)
		m, ok := chessmg.FindMove(gs.LegalMoves(), c.coord)
		if !ok {
			t.Fatalf("%s: %s not legal", c.name, c.coord)
		}
		if got := m.String(); got != c.want {
			t.Fatalf("%s: got %q want %q", c.name, got, c.want)
		}
	}
}

func TestMoveIDAndEquality(t *testing.T) {
	gs := chessmg.NewGameState()
	a := chessmg.NewMove(gs, sq(t, "e2"), sq(t, "e4"), chessmg.FlagNone)
	if got := a.ID(); got != 6444 {
		t.Fatalf("ID(e2e4): got %d want 6444", got)
	}
	b := chessmg.NewMove(gs, sq(t, "e2"), sq(t, "e4"), chessmg.FlagNone)
	if !a.Equal(b) || a != b {
		t.Fatalf("moves built from the same squares should be equal")
	}
	c := chessmg.NewMove(gs, sq(t, "e2"), sq(t, "e3"), chessmg.FlagNone)
	if a.Equal(c) {
		t.Fatalf("e2e4 and e2e3 should differ")
	}
	if a.MovedPiece() != chessmg.WhitePawn || a.IsCapture() {
		t.Fatalf("e2e4 metadata: moved=%v captured=%v", a.MovedPiece(), a.CapturedPiece())
	}
	var zero chessmg.Move
	if !zero.IsZero() || a.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}

func TestNewMoveDerivesFlags(t *testing.T) {
	gs := position(t, "4k3/1P6/8/3pP3/8/8/8/4K3", chessmg.White, noCastling, "d6")
	ep := chessmg.NewMove(gs, sq(t, "e5"), sq(t, "d6"), chessmg.FlagEnPassant)
	if ep.CapturedPiece() != chessmg.BlackPawn {
		t.Fatalf("en passant should capture the pawn on d5, got %v", ep.CapturedPiece())
	}
	promo := chessmg.NewMove(gs, sq(t, "b7"), sq(t, "b8"), chessmg.FlagNone)
	if !promo.IsPromotion() || promo.UCI() != "b7b8q" {
		t.Fatalf("b7b8 should be flagged as a promotion, got %s", promo.UCI())
	}
}

func TestFindMove(t *testing.T) {
	gs := position(t, "4k3/1P6/8/8/8/8/4P3/4K3", chessmg.White, noCastling, "")
	moves := gs.LegalMoves()
	if _, ok := chessmg.FindMove(moves, "e2e4"); !ok {
		t.Fatalf("e2e4 should be found")
	}
	if _, ok := chessmg.FindMove(moves, " E2E3 "); !ok {
		t.Fatalf("lookup should ignore case and surrounding space")
	}
	for _, coord := range []string{"b7b8", "b7b8q"} {
		m, ok := chessmg.FindMove(moves, coord)
		if !ok || !m.IsPromotion() {
			t.Fatalf("%s should find the promotion", coord)
		}
	}
	for _, coord := range []string{"e2e5", "b7b8n", "", "zz"} {
		if _, ok := chessmg.FindMove(moves, coord); ok {
			t.Fatalf("%q should not be found", coord)
		}
	}
	if !slices.ContainsFunc(moves, func(m chessmg.Move) bool { return m.MovedPiece() == chessmg.WhiteKing }) {
		t.Fatalf("king moves missing")
	}
}
