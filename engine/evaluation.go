package engine

import (
	gm "negachess/chessmg"
)

// Scores are in centipawns, positive when White is better.

// PieceValue is the material worth of each piece type. Kings carry none.
var PieceValue = [7]int32{
	gm.PieceTypePawn:   100,
	gm.PieceTypeKnight: 300,
	gm.PieceTypeBishop: 300,
	gm.PieceTypeRook:   500,
	gm.PieceTypeQueen:  900,
	gm.PieceTypeKing:   0,
}

// PositionWeight scales a piece-square entry into centipawns: each table
// point is worth a tenth of a pawn.
const PositionWeight int32 = 10

// PSQT holds the piece-square tables indexed by [type][row][col], row 0 being
// rank 8. The minor and major piece tables are used for both sides as is.
// Pawns use a table per color; kings have none.
var PSQT = [7][8][8]int32{
	gm.PieceTypeKnight: {
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 2, 2, 2, 2, 2, 2, 1},
		{1, 2, 3, 3, 3, 3, 2, 1},
		{1, 2, 3, 4, 4, 3, 2, 1},
		{1, 2, 3, 4, 4, 3, 2, 1},
		{1, 2, 3, 3, 3, 3, 2, 1},
		{1, 2, 2, 2, 2, 2, 2, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
	},
	gm.PieceTypeBishop: {
		{4, 3, 2, 1, 1, 2, 3, 4},
		{3, 4, 3, 2, 2, 3, 4, 3},
		{2, 3, 4, 3, 3, 4, 3, 2},
		{1, 2, 3, 4, 4, 3, 2, 1},
		{1, 2, 3, 4, 4, 3, 2, 1},
		{2, 3, 4, 3, 3, 4, 3, 2},
		{3, 4, 3, 2, 2, 3, 4, 3},
		{4, 3, 2, 1, 1, 2, 3, 4},
	},
	gm.PieceTypeRook: {
		{4, 3, 4, 4, 4, 4, 3, 4},
		{4, 4, 4, 4, 4, 4, 4, 4},
		{1, 1, 2, 3, 3, 2, 1, 1},
		{1, 2, 3, 4, 4, 3, 2, 1},
		{1, 2, 3, 4, 4, 3, 2, 1},
		{1, 1, 2, 2, 2, 2, 1, 1},
		{4, 4, 4, 4, 4, 4, 4, 4},
		{4, 3, 4, 4, 4, 4, 3, 4},
	},
	gm.PieceTypeQueen: {
		{1, 1, 1, 3, 1, 1, 1, 1},
		{1, 2, 3, 3, 3, 1, 1, 1},
		{1, 4, 3, 3, 3, 4, 2, 1},
		{1, 2, 3, 3, 3, 2, 2, 1},
		{1, 2, 3, 3, 3, 2, 2, 1},
		{1, 4, 3, 3, 3, 4, 2, 1},
		{1, 1, 2, 3, 3, 1, 1, 1},
		{1, 1, 1, 3, 1, 1, 1, 1},
	},
}

// PawnPSQT is indexed by [color][row][col]. Each side is rewarded for advancing.
var PawnPSQT = [2][8][8]int32{
	gm.White: {
		{10, 10, 10, 10, 10, 10, 10, 10},
		{8, 8, 8, 8, 8, 8, 8, 8},
		{5, 6, 6, 7, 7, 6, 6, 5},
		{2, 3, 3, 5, 5, 3, 3, 2},
		{1, 2, 3, 4, 4, 3, 2, 1},
		{1, 1, 2, 3, 3, 2, 1, 1},
		{1, 1, 1, 0, 0, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	gm.Black: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 0, 0, 1, 1, 1},
		{1, 1, 2, 3, 3, 2, 1, 1},
		{1, 2, 3, 4, 4, 3, 2, 1},
		{2, 3, 3, 5, 5, 3, 3, 2},
		{5, 6, 6, 7, 7, 6, 6, 5},
		{8, 8, 8, 8, 8, 8, 8, 8},
		{10, 10, 10, 10, 10, 10, 10, 10},
	},
}

// pieceScore is the material plus positional worth of p on (row, col), always positive.
func pieceScore(p gm.Piece, row, col int) int32 {
	pt := p.Type()
	score := PieceValue[pt]
	switch pt {
	case gm.PieceTypePawn:
		score += PawnPSQT[p.Color()][row][col] * PositionWeight
	case gm.PieceTypeKing:
	default:
		score += PSQT[pt][row][col] * PositionWeight
	}
	return score
}

// Evaluate returns the static score of the position from White's point of
// view. It does not look at checkmate or stalemate.
func Evaluate(gs *gm.GameState) int32 {
	var score int32
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := gs.PieceAt(gm.Square{Row: row, Col: col})
			if p == gm.NoPiece {
				continue
			}
			if p.Color() == gm.White {
				score += pieceScore(p, row, col)
			} else {
				score -= pieceScore(p, row, col)
			}
		}
	}
	return score
}

// Material returns the bare material balance, White minus Black.
func Material(gs *gm.GameState) int32 {
	var score int32
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := gs.PieceAt(gm.Square{Row: row, Col: col})
			if p == gm.NoPiece {
				continue
			}
			if p.Color() == gm.White {
				score += PieceValue[p.Type()]
			} else {
				score -= PieceValue[p.Type()]
			}
		}
	}
	return score
}
