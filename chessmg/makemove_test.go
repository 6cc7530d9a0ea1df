package chessmg_test

import (
	"math/rand"
	"reflect"
	"testing"

	"negachess/chessmg"
)

// roundTrip applies and undoes every legal move of gs and requires an exact restore.
func roundTrip(t *testing.T, gs *chessmg.GameState) {
	t.Helper()
	moves := gs.LegalMoves()
	for _, m := range moves {
		before := gs.Clone()
		gs.ApplyMove(m)
		if !gs.Validate() {
			t.Fatalf("invalid state after %s\n%s", m.UCI(), gs)
		}
		gs.UndoMove()
		if !reflect.DeepEqual(before, gs) {
			t.Fatalf("state changed after apply/undo of %s\n%s", m.UCI(), gs)
		}
	}
}

func TestApplyUndo_NormalMove(t *testing.T) {
	gs := chessmg.NewGameState()
	start := gs.Clone()
	play(t, gs, "e2e4")
	if gs.PieceAt(sq(t, "e4")) != chessmg.WhitePawn || gs.PieceAt(sq(t, "e2")) != chessmg.NoPiece {
		t.Fatalf("pawn did not move\n%s", gs)
	}
	if gs.SideToMove() != chessmg.Black {
		t.Fatalf("side to move should flip")
	}
	gs.UndoMove()
	if !reflect.DeepEqual(start, gs) {
		t.Fatalf("undo did not restore the initial position\n%s", gs)
	}
}

func TestUndoOnEmptyLogIsNoop(t *testing.T) {
	gs := chessmg.NewGameState()
	before := gs.Clone()
	gs.UndoMove()
	if !reflect.DeepEqual(before, gs) {
		t.Fatalf("UndoMove with empty log changed the state")
	}
}

func TestEnPassantTargetLifecycle(t *testing.T) {
	gs := chessmg.NewGameState()
	play(t, gs, "e2e4")
	if got, want := gs.EnPassantTarget(), (chessmg.Square{Row: 5, Col: 4}); got != want {
		t.Fatalf("en passant after e4: got %+v want %+v", got, want)
	}
	play(t, gs, "g8f6")
	if gs.EnPassantTarget() != chessmg.NoSquare {
		t.Fatalf("en passant should clear after a non-double-push, got %v", gs.EnPassantTarget())
	}
	gs.UndoMove()
	if got := gs.EnPassantTarget(); got != sq(t, "e3") {
		t.Fatalf("undo should restore e3, got %v", got)
	}
}

func TestEnPassantCaptureAndUndo(t *testing.T) {
	gs := chessmg.NewGameState()
	play(t, gs, "e2e4 a7a6 e4e5 d7d5")
	moves := gs.LegalMoves()
	m, ok := chessmg.FindMove(moves, "e5d6")
	if !ok || !m.IsEnPassant() {
		t.Fatalf("exd6 en passant should be legal")
	}
	if m.CapturedPiece() != chessmg.BlackPawn {
		t.Fatalf("captured piece: got %v want bp", m.CapturedPiece())
	}
	before := gs.Clone()
	gs.ApplyMove(m)
	if gs.PieceAt(sq(t, "d5")) != chessmg.NoPiece {
		t.Fatalf("captured pawn left on d5\n%s", gs)
	}
	if gs.PieceAt(sq(t, "d6")) != chessmg.WhitePawn {
		t.Fatalf("capturing pawn not on d6\n%s", gs)
	}
	gs.UndoMove()
	if !reflect.DeepEqual(before, gs) {
		t.Fatalf("undo of en passant did not restore the state\n%s", gs)
	}
}

func TestCastlingMovesRookAndRevokesRights(t *testing.T) {
	gs := position(t, "r3k2r/8/8/8/8/8/8/R3K2R", chessmg.White, chessmg.AllCastlingRights, "")
	before := gs.Clone()
	play(t, gs, "e1g1")
	if gs.PieceAt(sq(t, "f1")) != chessmg.WhiteRook || gs.PieceAt(sq(t, "h1")) != chessmg.NoPiece {
		t.Fatalf("kingside rook not relocated\n%s", gs)
	}
	cr := gs.CastlingRights()
	if cr.WhiteKingside || cr.WhiteQueenside || !cr.BlackKingside || !cr.BlackQueenside {
		t.Fatalf("castling rights after O-O: got %v want kq", cr)
	}
	play(t, gs, "e8c8")
	if gs.PieceAt(sq(t, "d8")) != chessmg.BlackRook || gs.PieceAt(sq(t, "a8")) != chessmg.NoPiece {
		t.Fatalf("queenside rook not relocated\n%s", gs)
	}
	if gs.KingLocation(chessmg.Black) != sq(t, "c8") {
		t.Fatalf("black king cache: got %v want c8", gs.KingLocation(chessmg.Black))
	}
	gs.UndoMove()
	gs.UndoMove()
	if !reflect.DeepEqual(before, gs) {
		t.Fatalf("undoing both castles did not restore the state\n%s", gs)
	}
}

func TestRookMovesAndCapturesRevokeRights(t *testing.T) {
	gs := position(t, "r3k2r/8/8/8/8/8/8/R3K2R", chessmg.White, chessmg.AllCastlingRights, "")
	play(t, gs, "a1a8")
	cr := gs.CastlingRights()
	if cr.WhiteQueenside {
		t.Fatalf("rook left a1: white queenside should be revoked")
	}
	if cr.BlackQueenside {
		t.Fatalf("rook captured on a8: black queenside should be revoked")
	}
	if !cr.WhiteKingside || !cr.BlackKingside {
		t.Fatalf("kingside rights should survive, got %v", cr)
	}
	gs.UndoMove()
	if gs.CastlingRights() != chessmg.AllCastlingRights {
		t.Fatalf("undo should restore KQkq, got %v", gs.CastlingRights())
	}
}

func TestPromotionAlwaysQueens(t *testing.T) {
	gs := position(t, "7k/P7/8/8/8/8/8/4K3", chessmg.White, noCastling, "")
	moves := gs.LegalMoves()
	m, ok := chessmg.FindMove(moves, "a7a8")
	if !ok || !m.IsPromotion() {
		t.Fatalf("a8=Q should be a legal promotion")
	}
	n := 0
	for _, mv := range moves {
		if mv.From() == sq(t, "a7") {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("promotion should generate a single move, got %d", n)
	}
	before := gs.Clone()
	gs.ApplyMove(m)
	if gs.PieceAt(sq(t, "a8")) != chessmg.WhiteQueen {
		t.Fatalf("a8: got %v want wQ", gs.PieceAt(sq(t, "a8")))
	}
	gs.UndoMove()
	if !reflect.DeepEqual(before, gs) {
		t.Fatalf("undo of promotion did not restore the pawn\n%s", gs)
	}
}

func TestApplyUndoRoundTripAllMoves(t *testing.T) {
	positions := []*chessmg.GameState{
		chessmg.NewGameState(),
		position(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R", chessmg.White, chessmg.AllCastlingRights, ""),
		position(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8", chessmg.White, noCastling, ""),
		position(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR", chessmg.White, chessmg.AllCastlingRights, "f6"),
		position(t, "4k3/1P6/8/8/8/8/6p1/4K2R", chessmg.Black, chessmg.CastlingRights{WhiteKingside: true}, ""),
	}
	for _, gs := range positions {
		roundTrip(t, gs)
	}
}

func TestRandomGamesUnwindToStart(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		gs := chessmg.NewGameState()
		start := gs.Clone()
		for ply := 0; ply < 120; ply++ {
			moves := gs.LegalMoves()
			if len(moves) == 0 {
				break
			}
			gs.ApplyMove(moves[rng.Intn(len(moves))])
			if !gs.Validate() {
				t.Fatalf("game %d ply %d: invalid state\n%s", game, ply, gs)
			}
		}
		for gs.Ply() > 0 {
			gs.UndoMove()
		}
		if !reflect.DeepEqual(start, gs) {
			t.Fatalf("game %d: full unwind did not restore the initial position\n%s", game, gs)
		}
	}
}
