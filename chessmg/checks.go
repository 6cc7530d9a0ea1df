package chessmg

// Ray directions, orthogonal first then diagonal. The pawn checks below depend on
// this order: a White pawn attacks the king from indices 6-7 (below it), a Black
// pawn from indices 4-5 (above it).
var rayDirs = [8][2]int{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = rayDirs

// pin records a friendly piece that may only move along (dr, dc) or its reverse.
type pin struct {
	sq     Square
	dr, dc int
}

// check records an enemy piece attacking the king and the ray it attacks along.
// Knight checks carry a zero direction.
type check struct {
	sq     Square
	dr, dc int
}

// pinsAndChecks scans outward from the king of the side to move. The king itself
// is transparent so a square it would step back onto along the ray still counts
// as attacked.
func (gs *GameState) pinsAndChecks() (inCheck bool, pins []pin, checks []check) {
	us := gs.sideToMove
	them := us.Other()
	king := gs.kingLocation[us]
	if !king.Valid() {
		panic("chessmg: side to move has no king on the board")
	}

	for i, d := range rayDirs {
		possiblePin := NoSquare
		for step := 1; step < 8; step++ {
			r, c := king.Row+d[0]*step, king.Col+d[1]*step
			if !onBoard(r, c) {
				break
			}
			p := gs.board[r][c]
			if p == NoPiece || (p.Type() == PieceTypeKing && p.Color() == us) {
				continue
			}
			if p.Color() == us {
				if possiblePin != NoSquare {
					break
				}
				possiblePin = Square{Row: r, Col: c}
				continue
			}
			if rayAttacker(p, them, i, step) {
				if possiblePin == NoSquare {
					inCheck = true
					checks = append(checks, check{sq: Square{Row: r, Col: c}, dr: d[0], dc: d[1]})
				} else {
					pins = append(pins, pin{sq: possiblePin, dr: d[0], dc: d[1]})
				}
			}
			break
		}
	}

	for _, o := range knightOffsets {
		r, c := king.Row+o[0], king.Col+o[1]
		if onBoard(r, c) && gs.board[r][c] == PieceFromType(them, PieceTypeKnight) {
			inCheck = true
			checks = append(checks, check{sq: Square{Row: r, Col: c}})
		}
	}
	return inCheck, pins, checks
}

// rayAttacker reports whether an enemy piece found at the given distance along
// rayDirs[dir] attacks back along that ray.
func rayAttacker(p Piece, them Color, dir, step int) bool {
	switch p.Type() {
	case PieceTypeRook:
		return dir <= 3
	case PieceTypeBishop:
		return dir >= 4
	case PieceTypeQueen:
		return true
	case PieceTypeKing:
		return step == 1
	case PieceTypePawn:
		if step != 1 {
			return false
		}
		if them == White {
			return dir >= 6
		}
		return dir == 4 || dir == 5
	}
	return false
}

// kingInCheck reruns the full pin/check scan and reports only the check flag.
func (gs *GameState) kingInCheck() bool {
	inCheck, _, _ := gs.pinsAndChecks()
	return inCheck
}

// IsSquareAttacked reports whether any piece of side by reaches sq. Pawn diagonals
// count whether or not sq is occupied, and the square's own occupant does not
// block anything.
func (gs *GameState) IsSquareAttacked(sq Square, by Color) bool {
	mustOnBoard(sq)

	pawnRow := sq.Row + 1
	if by == Black {
		pawnRow = sq.Row - 1
	}
	for _, dc := range [2]int{-1, 1} {
		if onBoard(pawnRow, sq.Col+dc) && gs.board[pawnRow][sq.Col+dc] == PieceFromType(by, PieceTypePawn) {
			return true
		}
	}

	for _, o := range knightOffsets {
		r, c := sq.Row+o[0], sq.Col+o[1]
		if onBoard(r, c) && gs.board[r][c] == PieceFromType(by, PieceTypeKnight) {
			return true
		}
	}

	for _, o := range kingOffsets {
		r, c := sq.Row+o[0], sq.Col+o[1]
		if onBoard(r, c) && gs.board[r][c] == PieceFromType(by, PieceTypeKing) {
			return true
		}
	}

	for i, d := range rayDirs {
		for step := 1; step < 8; step++ {
			r, c := sq.Row+d[0]*step, sq.Col+d[1]*step
			if !onBoard(r, c) {
				break
			}
			p := gs.board[r][c]
			if p == NoPiece {
				continue
			}
			if p.Color() == by {
				switch p.Type() {
				case PieceTypeQueen:
					return true
				case PieceTypeRook:
					if i <= 3 {
						return true
					}
				case PieceTypeBishop:
					if i >= 4 {
						return true
					}
				}
			}
			break
		}
	}
	return false
}
