package chessmg

import (
	"errors"
	"fmt"
	"strings"
)

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Letter returns the notation letter of the piece type. Pawns have none.
func (pt PieceType) Letter() string {
	switch pt {
	case PieceTypeKnight:
		return "N"
	case PieceTypeBishop:
		return "B"
	case PieceTypeRook:
		return "R"
	case PieceTypeQueen:
		return "Q"
	case PieceTypeKing:
		return "K"
	default:
		return ""
	}
}

// Piece packs a side and a type into one byte.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// A black piece is its white counterpart with bit 3 set; Type and Color
	// mask the low three bits and that flag.
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	if color == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

// String returns the two-character code used in board diagrams ("wp", "bK", "--").
func (p Piece) String() string {
	if p == NoPiece {
		return "--"
	}
	letter := p.Type().Letter()
	if letter == "" {
		letter = "p"
	}
	return p.Color().String() + letter
}

// Square is a (row, col) pair. Row 0 is Black's back rank, row 7 White's.
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent square (no en-passant target, no king placed yet).
var NoSquare = Square{Row: -1, Col: -1}

func onBoard(r, c int) bool { return r >= 0 && r < 8 && c >= 0 && c < 8 }

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool { return onBoard(s.Row, s.Col) }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col), '8' - byte(s.Row)})
}

func mustOnBoard(s Square) {
	if !s.Valid() {
		panic(fmt.Sprintf("chessmg: square %d,%d is off the board", s.Row, s.Col))
	}
}

// ParseSquare converts algebraic coordinates ("e4") into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.New("invalid algebraic square")
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the starting set.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Kingside reports the short castling right of the given side.
func (cr CastlingRights) Kingside(c Color) bool {
	if c == White {
		return cr.WhiteKingside
	}
	return cr.BlackKingside
}

// Queenside reports the long castling right of the given side.
func (cr CastlingRights) Queenside(c Color) bool {
	if c == White {
		return cr.WhiteQueenside
	}
	return cr.BlackQueenside
}

func (cr CastlingRights) String() string {
	var sb strings.Builder
	if cr.WhiteKingside {
		sb.WriteByte('K')
	}
	if cr.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if cr.BlackKingside {
		sb.WriteByte('k')
	}
	if cr.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// status carries the flags derived by LegalMoves.
type status struct {
	inCheck   bool
	checkmate bool
	stalemate bool
}

// GameState represents the board and all mutable game metadata.
type GameState struct {
	board [8][8]Piece

	sideToMove Color

	// Cached king squares, indexed by Color. Must match the board at all times.
	kingLocation [2]Square

	castling  CastlingRights
	enPassant Square

	// Parallel logs: entry i holds the values in force before moveLog[i] was applied.
	moveLog      []Move
	castlingLog  []CastlingRights
	enPassantLog []Square
	statusLog    []status

	status status
}

var initialRows = [8][8]Piece{
	{BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook},
	{BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn},
	{},
	{},
	{},
	{},
	{WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn},
	{WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook},
}

// NewGameState returns the standard initial position with White to move.
func NewGameState() *GameState {
	gs := NewEmptyGameState()
	gs.board = initialRows
	gs.kingLocation[White] = Square{Row: 7, Col: 4}
	gs.kingLocation[Black] = Square{Row: 0, Col: 4}
	gs.castling = AllCastlingRights
	return gs
}

// NewEmptyGameState returns an empty board with White to move and no castling rights.
// Positions are then built with SetPiece; used by tests and tools.
func NewEmptyGameState() *GameState {
	return &GameState{
		sideToMove:   White,
		kingLocation: [2]Square{NoSquare, NoSquare},
		enPassant:    NoSquare,
		moveLog:      make([]Move, 0, 64),
		castlingLog:  make([]CastlingRights, 0, 64),
		enPassantLog: make([]Square, 0, 64),
		statusLog:    make([]status, 0, 64),
	}
}

// Clone returns a deep copy of the state.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.moveLog = append(make([]Move, 0, cap(gs.moveLog)), gs.moveLog...)
	c.castlingLog = append(make([]CastlingRights, 0, cap(gs.castlingLog)), gs.castlingLog...)
	c.enPassantLog = append(make([]Square, 0, cap(gs.enPassantLog)), gs.enPassantLog...)
	c.statusLog = append(make([]status, 0, cap(gs.statusLog)), gs.statusLog...)
	return &c
}

// PieceAt returns the piece on a square.
func (gs *GameState) PieceAt(sq Square) Piece {
	mustOnBoard(sq)
	return gs.board[sq.Row][sq.Col]
}

// SetPiece places p on sq, replacing whatever was there, and keeps the king cache in sync.
// Use with care; it bypasses the move log.
func (gs *GameState) SetPiece(sq Square, p Piece) {
	mustOnBoard(sq)
	old := gs.board[sq.Row][sq.Col]
	if old.Type() == PieceTypeKing && gs.kingLocation[old.Color()] == sq {
		gs.kingLocation[old.Color()] = NoSquare
	}
	gs.board[sq.Row][sq.Col] = p
	if p.Type() == PieceTypeKing {
		gs.kingLocation[p.Color()] = sq
	}
}

// SideToMove reports which side is to play.
func (gs *GameState) SideToMove() Color { return gs.sideToMove }

// SetSideToMove updates the side to play. Normal move making toggles automatically.
func (gs *GameState) SetSideToMove(c Color) { gs.sideToMove = c }

// KingLocation returns the cached king square of the given side.
func (gs *GameState) KingLocation(c Color) Square { return gs.kingLocation[c] }

// CastlingRights returns the current castling permissions.
func (gs *GameState) CastlingRights() CastlingRights { return gs.castling }

// SetCastlingRights overwrites the castling permissions. Intended for position set-up.
func (gs *GameState) SetCastlingRights(cr CastlingRights) { gs.castling = cr }

// EnPassantTarget returns the current en-passant target square or NoSquare.
func (gs *GameState) EnPassantTarget() Square { return gs.enPassant }

// SetEnPassantTarget overwrites the en-passant target. Intended for position set-up.
func (gs *GameState) SetEnPassantTarget(sq Square) {
	if sq != NoSquare {
		mustOnBoard(sq)
	}
	gs.enPassant = sq
}

// MoveLog returns a copy of the applied moves, oldest first.
func (gs *GameState) MoveLog() []Move {
	return append([]Move(nil), gs.moveLog...)
}

// Ply returns the number of moves applied so far.
func (gs *GameState) Ply() int { return len(gs.moveLog) }

// InCheck reports whether the side to move was in check when LegalMoves last ran.
func (gs *GameState) InCheck() bool { return gs.status.inCheck }

// Checkmate reports whether the last LegalMoves call found the side to move mated.
func (gs *GameState) Checkmate() bool { return gs.status.checkmate }

// Stalemate reports whether the last LegalMoves call found no moves without check.
func (gs *GameState) Stalemate() bool { return gs.status.stalemate }

// Validate checks that the king cache matches the board, that each side has exactly
// one king, and that the history logs are the same length.
func (gs *GameState) Validate() bool {
	var kings [2]int
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := gs.board[r][c]
			if p.Type() != PieceTypeKing {
				continue
			}
			kings[p.Color()]++
			if gs.kingLocation[p.Color()] != (Square{Row: r, Col: c}) {
				return false
			}
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return false
	}
	n := len(gs.moveLog)
	return len(gs.castlingLog) == n && len(gs.enPassantLog) == n && len(gs.statusLog) == n
}

// String creates an ASCII representation of the board.
func (gs *GameState) String() string {
	var sb strings.Builder
	sb.WriteString("  a  b  c  d  e  f  g  h\n")
	for r := 0; r < 8; r++ {
		sb.WriteString(fmt.Sprintf("%d ", 8-r))
		for c := 0; c < 8; c++ {
			sb.WriteString(gs.board[r][c].String())
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%d\n", 8-r))
	}
	sb.WriteString("  a  b  c  d  e  f  g  h")
	return sb.String()
}
