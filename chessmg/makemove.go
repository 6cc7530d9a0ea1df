package chessmg

// ApplyMove plays m on the board. The move is assumed legal; the caller obtains it
// from LegalMoves. Pre-move castling rights, en-passant target and derived status
// are pushed onto their logs so UndoMove restores them exactly.
func (gs *GameState) ApplyMove(m Move) {
	us := m.moved.Color()
	if m.moved == NoPiece || gs.board[m.from.Row][m.from.Col] != m.moved {
		panic("chessmg.ApplyMove: move " + m.UCI() + " does not match the board")
	}

	gs.moveLog = append(gs.moveLog, m)
	gs.castlingLog = append(gs.castlingLog, gs.castling)
	gs.enPassantLog = append(gs.enPassantLog, gs.enPassant)
	gs.statusLog = append(gs.statusLog, gs.status)
	gs.status = status{}

	gs.board[m.from.Row][m.from.Col] = NoPiece
	if m.IsEnPassant() {
		gs.board[m.from.Row][m.to.Col] = NoPiece
	}
	placed := m.moved
	if m.IsPromotion() {
		placed = PieceFromType(us, PieceTypeQueen)
	}
	gs.board[m.to.Row][m.to.Col] = placed

	if m.moved.Type() == PieceTypeKing {
		gs.kingLocation[us] = m.to
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m)
		gs.board[rookTo.Row][rookTo.Col] = gs.board[rookFrom.Row][rookFrom.Col]
		gs.board[rookFrom.Row][rookFrom.Col] = NoPiece
	}

	if m.moved.Type() == PieceTypePawn && abs(m.to.Row-m.from.Row) == 2 {
		gs.enPassant = Square{Row: (m.from.Row + m.to.Row) / 2, Col: m.from.Col}
	} else {
		gs.enPassant = NoSquare
	}

	gs.updateCastlingRights(m)
	gs.sideToMove = gs.sideToMove.Other()
}

// UndoMove reverts the most recent move. It is a no-op when the log is empty.
func (gs *GameState) UndoMove() {
	n := len(gs.moveLog)
	if n == 0 {
		return
	}
	m := gs.moveLog[n-1]
	gs.moveLog = gs.moveLog[:n-1]

	gs.board[m.from.Row][m.from.Col] = m.moved
	if m.IsEnPassant() {
		gs.board[m.to.Row][m.to.Col] = NoPiece
		gs.board[m.from.Row][m.to.Col] = m.captured
	} else {
		gs.board[m.to.Row][m.to.Col] = m.captured
	}

	if m.moved.Type() == PieceTypeKing {
		gs.kingLocation[m.moved.Color()] = m.from
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m)
		gs.board[rookFrom.Row][rookFrom.Col] = gs.board[rookTo.Row][rookTo.Col]
		gs.board[rookTo.Row][rookTo.Col] = NoPiece
	}

	gs.castling = gs.castlingLog[n-1]
	gs.castlingLog = gs.castlingLog[:n-1]
	gs.enPassant = gs.enPassantLog[n-1]
	gs.enPassantLog = gs.enPassantLog[:n-1]
	gs.status = gs.statusLog[n-1]
	gs.statusLog = gs.statusLog[:n-1]

	gs.sideToMove = gs.sideToMove.Other()
}

// Reset discards the game and restores the initial position.
func (gs *GameState) Reset() {
	*gs = *NewGameState()
}

// castleRookSquares returns the rook's origin and destination for a castling move.
func castleRookSquares(m Move) (from, to Square) {
	row := m.from.Row
	if m.to.Col > m.from.Col {
		return Square{Row: row, Col: 7}, Square{Row: row, Col: m.to.Col - 1}
	}
	return Square{Row: row, Col: 0}, Square{Row: row, Col: m.to.Col + 1}
}

// updateCastlingRights revokes rights after a king move, a rook leaving its
// corner, or a capture landing on a rook's corner.
func (gs *GameState) updateCastlingRights(m Move) {
	switch m.moved {
	case WhiteKing:
		gs.castling.WhiteKingside = false
		gs.castling.WhiteQueenside = false
	case BlackKing:
		gs.castling.BlackKingside = false
		gs.castling.BlackQueenside = false
	case WhiteRook, BlackRook:
		gs.revokeCorner(m.from)
	}
	if m.captured.Type() == PieceTypeRook {
		gs.revokeCorner(m.to)
	}
}

func (gs *GameState) revokeCorner(sq Square) {
	switch sq {
	case Square{Row: 7, Col: 0}:
		gs.castling.WhiteQueenside = false
	case Square{Row: 7, Col: 7}:
		gs.castling.WhiteKingside = false
	case Square{Row: 0, Col: 0}:
		gs.castling.BlackQueenside = false
	case Square{Row: 0, Col: 7}:
		gs.castling.BlackKingside = false
	}
}
