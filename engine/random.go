package engine

import (
	"math/rand"

	gm "negachess/chessmg"
)

// MaxDepth caps the depth accepted by ChooseMove.
const MaxDepth = 8

// FindRandomMove picks a uniformly random move. It reports false for an empty list.
func FindRandomMove(legalMoves []gm.Move, rng *rand.Rand) (gm.Move, bool) {
	if len(legalMoves) == 0 {
		return gm.Move{}, false
	}
	return legalMoves[rng.Intn(len(legalMoves))], true
}

// ChooseMove picks the engine's move for the side to move: the search result
// when there is one, a random legal move otherwise. It reports false only when
// the game is over.
func ChooseMove(gs *gm.GameState, depth int, rng *rand.Rand) (gm.Move, bool) {
	moves := gs.LegalMoves()
	if move, ok := FindBestMove(gs, moves, Clamp(depth, 0, MaxDepth)); ok {
		return move, true
	}
	return FindRandomMove(moves, rng)
}
