package chessmg

// LegalMoves returns every legal move for the side to move and refreshes the
// derived flags reported by InCheck, Checkmate and Stalemate.
//
// Candidates are generated per piece and filtered against the pins and checks
// found by scanning outward from the king:
//   - in double check only king moves survive
//   - in single check a move must capture the checker or land between it and the king
//   - a pinned piece may only move along its pin axis; pinned knights never move
//   - king moves are verified by re-running the scan from the destination
//   - every en-passant capture is verified by lifting both pawns off the board
func (gs *GameState) LegalMoves() []Move {
	inCheck, pins, checks := gs.pinsAndChecks()
	king := gs.kingLocation[gs.sideToMove]

	var blocks []Square
	if len(checks) == 1 {
		blocks = checkBlockSquares(king, checks[0])
	}

	candidates := gs.appendPieceMoves(make([]Move, 0, 48))
	legal := candidates[:0]
	for _, m := range candidates {
		if gs.keepMove(m, pins, checks, blocks) {
			legal = append(legal, m)
		}
	}
	if !inCheck {
		legal = gs.appendCastleMoves(legal, true)
	}

	gs.status = status{
		inCheck:   inCheck,
		checkmate: len(legal) == 0 && inCheck,
		stalemate: len(legal) == 0 && !inCheck,
	}
	return legal
}

// PseudoLegalMoves returns moves that follow piece movement rules only. Pins,
// checks and attacked castling squares are ignored; castling still requires the
// right, the king and rook on their home squares and empty squares between them.
func (gs *GameState) PseudoLegalMoves() []Move {
	moves := gs.appendPieceMoves(make([]Move, 0, 48))
	return gs.appendCastleMoves(moves, false)
}

func (gs *GameState) keepMove(m Move, pins []pin, checks []check, blocks []Square) bool {
	if m.moved.Type() == PieceTypeKing {
		return gs.kingMoveSafe(m)
	}
	if len(checks) > 1 {
		return false
	}
	for _, p := range pins {
		if p.sq != m.from {
			continue
		}
		if m.moved.Type() == PieceTypeKnight {
			return false
		}
		dr, dc := sign(m.to.Row-m.from.Row), sign(m.to.Col-m.from.Col)
		if !(dr == p.dr && dc == p.dc) && !(dr == -p.dr && dc == -p.dc) {
			return false
		}
		break
	}
	if len(checks) == 1 && m.capturedSquare() != checks[0].sq && !containsSquare(blocks, m.to) {
		return false
	}
	if m.IsEnPassant() {
		return gs.enPassantSafe(m)
	}
	return true
}

// checkBlockSquares lists the squares from the king to the checker, checker
// included. A knight check can only be answered by capturing the knight.
func checkBlockSquares(king Square, ch check) []Square {
	if ch.dr == 0 && ch.dc == 0 {
		return []Square{ch.sq}
	}
	out := make([]Square, 0, 7)
	for step := 1; step < 8; step++ {
		sq := Square{Row: king.Row + ch.dr*step, Col: king.Col + ch.dc*step}
		out = append(out, sq)
		if sq == ch.sq {
			break
		}
	}
	return out
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// kingMoveSafe moves the cached king square to the destination and reruns check
// detection. The king left on its origin square is transparent to the scan.
func (gs *GameState) kingMoveSafe(m Move) bool {
	us := m.moved.Color()
	saved := gs.kingLocation[us]
	gs.kingLocation[us] = m.to
	attacked := gs.kingInCheck()
	gs.kingLocation[us] = saved
	return !attacked
}

// enPassantSafe catches the case where both pawns leave a rank shared with the
// king and an enemy slider.
func (gs *GameState) enPassantSafe(m Move) bool {
	capSq := m.capturedSquare()
	gs.board[m.from.Row][m.from.Col] = NoPiece
	gs.board[capSq.Row][capSq.Col] = NoPiece
	gs.board[m.to.Row][m.to.Col] = m.moved
	attacked := gs.kingInCheck()
	gs.board[m.to.Row][m.to.Col] = NoPiece
	gs.board[capSq.Row][capSq.Col] = m.captured
	gs.board[m.from.Row][m.from.Col] = m.moved
	return !attacked
}

// appendPieceMoves appends the piece-rule moves of every piece of the side to
// move in board scan order. Castling is generated separately.
func (gs *GameState) appendPieceMoves(moves []Move) []Move {
	us := gs.sideToMove
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := gs.board[r][c]
			if p == NoPiece || p.Color() != us {
				continue
			}
			from := Square{Row: r, Col: c}
			switch p.Type() {
			case PieceTypePawn:
				moves = gs.appendPawnMoves(moves, from, us)
			case PieceTypeKnight:
				moves = gs.appendStepMoves(moves, from, us, knightOffsets[:])
			case PieceTypeBishop:
				moves = gs.appendSlideMoves(moves, from, us, rayDirs[4:])
			case PieceTypeRook:
				moves = gs.appendSlideMoves(moves, from, us, rayDirs[:4])
			case PieceTypeQueen:
				moves = gs.appendSlideMoves(moves, from, us, rayDirs[:])
			case PieceTypeKing:
				moves = gs.appendStepMoves(moves, from, us, kingOffsets[:])
			}
		}
	}
	return moves
}

func (gs *GameState) appendPawnMoves(moves []Move, from Square, us Color) []Move {
	dir, startRow := -1, 6
	if us == Black {
		dir, startRow = 1, 1
	}
	r := from.Row + dir
	if !onBoard(r, from.Col) {
		return moves
	}
	if gs.board[r][from.Col] == NoPiece {
		moves = append(moves, NewMove(gs, from, Square{Row: r, Col: from.Col}, FlagNone))
		if from.Row == startRow && gs.board[r+dir][from.Col] == NoPiece {
			moves = append(moves, NewMove(gs, from, Square{Row: r + dir, Col: from.Col}, FlagNone))
		}
	}
	for _, dc := range [2]int{-1, 1} {
		c := from.Col + dc
		if !onBoard(r, c) {
			continue
		}
		to := Square{Row: r, Col: c}
		target := gs.board[r][c]
		switch {
		case target != NoPiece && target.Color() != us:
			moves = append(moves, NewMove(gs, from, to, FlagNone))
		case target == NoPiece && to == gs.enPassant:
			moves = append(moves, NewMove(gs, from, to, FlagEnPassant))
		}
	}
	return moves
}

func (gs *GameState) appendStepMoves(moves []Move, from Square, us Color, offsets [][2]int) []Move {
	for _, o := range offsets {
		r, c := from.Row+o[0], from.Col+o[1]
		if !onBoard(r, c) {
			continue
		}
		if t := gs.board[r][c]; t == NoPiece || t.Color() != us {
			moves = append(moves, NewMove(gs, from, Square{Row: r, Col: c}, FlagNone))
		}
	}
	return moves
}

func (gs *GameState) appendSlideMoves(moves []Move, from Square, us Color, dirs [][2]int) []Move {
	for _, d := range dirs {
		for step := 1; step < 8; step++ {
			r, c := from.Row+d[0]*step, from.Col+d[1]*step
			if !onBoard(r, c) {
				break
			}
			t := gs.board[r][c]
			if t == NoPiece {
				moves = append(moves, NewMove(gs, from, Square{Row: r, Col: c}, FlagNone))
				continue
			}
			if t.Color() != us {
				moves = append(moves, NewMove(gs, from, Square{Row: r, Col: c}, FlagNone))
			}
			break
		}
	}
	return moves
}

// appendCastleMoves adds castling for the side to move. With checkAttacks set the
// king must not be in check and the two squares it crosses must not be attacked.
func (gs *GameState) appendCastleMoves(moves []Move, checkAttacks bool) []Move {
	us := gs.sideToMove
	them := us.Other()
	row := 7
	if us == Black {
		row = 0
	}
	home := Square{Row: row, Col: 4}
	if gs.board[row][4] != PieceFromType(us, PieceTypeKing) {
		return moves
	}
	if checkAttacks && gs.IsSquareAttacked(home, them) {
		return moves
	}
	rook := PieceFromType(us, PieceTypeRook)

	if gs.castling.Kingside(us) && gs.board[row][7] == rook &&
		gs.board[row][5] == NoPiece && gs.board[row][6] == NoPiece {
		if !checkAttacks ||
			(!gs.IsSquareAttacked(Square{Row: row, Col: 5}, them) && !gs.IsSquareAttacked(Square{Row: row, Col: 6}, them)) {
			moves = append(moves, NewMove(gs, home, Square{Row: row, Col: 6}, FlagCastle))
		}
	}
	if gs.castling.Queenside(us) && gs.board[row][0] == rook &&
		gs.board[row][1] == NoPiece && gs.board[row][2] == NoPiece && gs.board[row][3] == NoPiece {
		if !checkAttacks ||
			(!gs.IsSquareAttacked(Square{Row: row, Col: 3}, them) && !gs.IsSquareAttacked(Square{Row: row, Col: 2}, them)) {
			moves = append(moves, NewMove(gs, home, Square{Row: row, Col: 2}, FlagCastle))
		}
	}
	return moves
}
