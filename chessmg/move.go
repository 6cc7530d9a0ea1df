package chessmg

import (
	"strings"

	"golang.org/x/exp/slices"
)

// MoveFlag marks the special kinds of move.
type MoveFlag uint8

const (
	FlagNone      MoveFlag = 0
	FlagEnPassant MoveFlag = 1 << iota
	FlagCastle
	FlagPromotion
)

// Move describes a single ply. It is a plain value and compares structurally with ==.
type Move struct {
	from     Square
	to       Square
	moved    Piece
	captured Piece
	flags    MoveFlag
}

// NewMove builds a move from the board of gs. The moved and captured pieces are read
// from the board; for en passant the captured pawn is the one behind the destination.
// The promotion flag is derived from the destination rank. Only FlagEnPassant and
// FlagCastle are read from flags.
func NewMove(gs *GameState, from, to Square, flags MoveFlag) Move {
	mustOnBoard(from)
	mustOnBoard(to)
	m := Move{
		from:     from,
		to:       to,
		moved:    gs.board[from.Row][from.Col],
		captured: gs.board[to.Row][to.Col],
		flags:    flags & (FlagEnPassant | FlagCastle),
	}
	if m.moved == NoPiece {
		panic("chessmg.NewMove: no piece on origin square " + from.String())
	}
	if m.flags&FlagEnPassant != 0 {
		m.captured = gs.board[from.Row][to.Col]
	}
	if m.moved.Type() == PieceTypePawn && to.Row == promotionRow(m.moved.Color()) {
		m.flags |= FlagPromotion
	}
	return m
}

func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// From returns the origin square.
func (m Move) From() Square { return m.from }

// To returns the destination square.
func (m Move) To() Square { return m.to }

// MovedPiece returns the piece that moves.
func (m Move) MovedPiece() Piece { return m.moved }

// CapturedPiece returns the captured piece, or NoPiece.
func (m Move) CapturedPiece() Piece { return m.captured }

// Flags returns the special move flags.
func (m Move) Flags() MoveFlag { return m.flags }

func (m Move) IsEnPassant() bool { return m.flags&FlagEnPassant != 0 }
func (m Move) IsCastle() bool    { return m.flags&FlagCastle != 0 }
func (m Move) IsPromotion() bool { return m.flags&FlagPromotion != 0 }
func (m Move) IsCapture() bool   { return m.captured != NoPiece }

// IsZero reports whether m is the zero Move (no move).
func (m Move) IsZero() bool { return m == Move{} }

// Equal compares origin, destination and flags.
func (m Move) Equal(o Move) bool {
	return m.from == o.from && m.to == o.to && m.flags == o.flags
}

// ID packs the squares into one integer, e.g. 6444 for e2e4.
func (m Move) ID() int {
	return m.from.Row*1000 + m.from.Col*100 + m.to.Row*10 + m.to.Col
}

// capturedSquare is where the captured piece stood before the move.
func (m Move) capturedSquare() Square {
	if m.IsEnPassant() {
		return Square{Row: m.from.Row, Col: m.to.Col}
	}
	return m.to
}

// String returns short notation for logs: piece letter plus destination, "x" for
// captures, "O-O"/"O-O-O" for castling and "=Q" for promotions. Pawn captures name
// the origin file ("exd5"). There is no disambiguation and no check suffix.
func (m Move) String() string {
	if m.IsZero() {
		return "-"
	}
	if m.IsCastle() {
		if m.to.Col > m.from.Col {
			return "O-O"
		}
		return "O-O-O"
	}
	var sb strings.Builder
	if m.moved.Type() == PieceTypePawn {
		if m.IsCapture() {
			sb.WriteByte(m.from.String()[0])
		}
	} else {
		sb.WriteString(m.moved.Type().Letter())
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.to.String())
	if m.IsPromotion() {
		sb.WriteString("=Q")
	}
	return sb.String()
}

// UCI returns the coordinate form of the move ("e2e4", "e7e8q").
func (m Move) UCI() string {
	s := m.from.String() + m.to.String()
	if m.IsPromotion() {
		s += "q"
	}
	return s
}

// FindMove looks a coordinate string ("e2e4", "e7e8q") up in a move list.
// A missing promotion suffix still matches a promotion.
func FindMove(moves []Move, coord string) (Move, bool) {
	coord = strings.TrimSpace(strings.ToLower(coord))
	if len(coord) == 4 {
		coord4 := coord
		i := slices.IndexFunc(moves, func(m Move) bool { return m.UCI()[:4] == coord4 })
		if i < 0 {
			return Move{}, false
		}
		return moves[i], true
	}
	i := slices.IndexFunc(moves, func(m Move) bool { return m.UCI() == coord })
	if i < 0 {
		return Move{}, false
	}
	return moves[i], true
}
