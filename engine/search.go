package engine

import (
	gm "negachess/chessmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore bounds every score, including mates, so the first root move is
	// always adopted even when every move loses.
	MaxScore  int32 = 200000
	Checkmate int32 = 100000
	Stalemate int32 = 0
)

// DefaultDepth is the search depth used by the interactive front end.
const DefaultDepth = 3

// Result is the outcome of one search.
type Result struct {
	Move  gm.Move
	Found bool
	Score int32 // from the side to move's point of view
	PV    PVLine
	Stats Stats
}

// searcher owns all per-search state so concurrent searches on different
// positions never share anything.
type searcher struct {
	gs    *gm.GameState
	prune bool
	stats Stats
}

// FindBestMove searches legalMoves of gs to the given depth with alpha-beta
// pruning and returns the chosen move. It reports false at depth 0 or when
// there are no moves. gs is returned to its exact prior state.
func FindBestMove(gs *gm.GameState, legalMoves []gm.Move, depth int) (gm.Move, bool) {
	res := Search(gs, legalMoves, depth)
	return res.Move, res.Found
}

// FindBestMoveNoPruning is FindBestMove without cutoffs. It visits the full tree
// and picks the same move with the same score.
func FindBestMoveNoPruning(gs *gm.GameState, legalMoves []gm.Move, depth int) (gm.Move, bool) {
	res := SearchNoPruning(gs, legalMoves, depth)
	return res.Move, res.Found
}

// Search runs a negamax alpha-beta search and reports the move, score,
// principal variation and node statistics.
func Search(gs *gm.GameState, legalMoves []gm.Move, depth int) Result {
	return runSearch(gs, legalMoves, depth, true)
}

// SearchNoPruning runs the plain negamax reference search.
func SearchNoPruning(gs *gm.GameState, legalMoves []gm.Move, depth int) Result {
	return runSearch(gs, legalMoves, depth, false)
}

func runSearch(gs *gm.GameState, legalMoves []gm.Move, depth int, prune bool) Result {
	if depth <= 0 || len(legalMoves) == 0 {
		return Result{}
	}
	s := &searcher{gs: gs, prune: prune}
	var pv PVLine
	score, best, found := s.negamax(legalMoves, depth, -MaxScore, MaxScore, sideSign(gs.SideToMove()), &pv)
	return Result{Move: best, Found: found, Score: score, PV: pv, Stats: s.stats}
}

func sideSign(c gm.Color) int32 {
	if c == gm.White {
		return 1
	}
	return -1
}

// negamax returns the score of the node for the side to move together with the
// first move that reached it. moves are the legal moves of the current node;
// sign is +1 when White is to move. Ties keep the earliest move.
func (s *searcher) negamax(moves []gm.Move, depth int, alpha, beta, sign int32, pvLine *PVLine) (int32, gm.Move, bool) {
	s.stats.Nodes++
	pvLine.Clear()

	if len(moves) == 0 {
		s.stats.Terminal++
		us := s.gs.SideToMove()
		if s.gs.IsSquareAttacked(s.gs.KingLocation(us), us.Other()) {
			return -Checkmate, gm.Move{}, false
		}
		return Stalemate, gm.Move{}, false
	}
	if depth == 0 {
		s.stats.Leaves++
		return sign * Evaluate(s.gs), gm.Move{}, false
	}

	bestScore := -MaxScore
	var bestMove gm.Move
	found := false
	var childPV PVLine

	for _, move := range moves {
		unapply := applyMove(s.gs, move)
		replies := s.gs.LegalMoves()
		score, _, _ := s.negamax(replies, depth-1, -beta, -alpha, -sign, &childPV)
		score = -score
		unapply()

		if score > bestScore {
			bestScore = score
			bestMove = move
			found = true
			pvLine.Update(move, childPV)
		}

		if !s.prune {
			continue
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			s.stats.BetaCutoffs++
			break
		}
	}
	return bestScore, bestMove, found
}

func applyMove(gs *gm.GameState, move gm.Move) func() {
	gs.ApplyMove(move)
	return gs.UndoMove
}
