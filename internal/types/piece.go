package types

// PieceType identifies a kind of chess piece independent of color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength
)

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// Char returns the lowercase algebraic letter for pt ("" for pawn).
func (pt PieceType) Char() string {
	switch pt {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	case Pawn:
		return "p"
	default:
		return ""
	}
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "NoPieceType"
	}
}

// Piece is the pair (Color, PieceType) packed as color*6 + (type-1),
// with PieceNone as the empty-square sentinel.
type Piece uint8

const (
	PieceNone Piece = 12
)

// NewPiece packs a color and piece type into a Piece.
func NewPiece(c Color, pt PieceType) Piece {
	if !pt.IsValid() {
		return PieceNone
	}
	return Piece(uint8(c)*6 + uint8(pt-1))
}

// TypeOf returns the PieceType part of the piece.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return NoPieceType
	}
	return PieceType(uint8(p)%6) + 1
}

// ColorOf returns the Color part of the piece.
func (p Piece) ColorOf() Color {
	if p == PieceNone {
		return ColorNone
	}
	return Color(uint8(p) / 6)
}

// IsValid reports whether p denotes an actual piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p < PieceNone
}

// Char returns the FEN letter for p: uppercase for White, lowercase
// for Black.
func (p Piece) Char() string {
	if !p.IsValid() {
		return "."
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == White {
		switch p.TypeOf() {
		case Pawn:
			return "P"
		case Knight:
			return "N"
		case Bishop:
			return "B"
		case Rook:
			return "R"
		case Queen:
			return "Q"
		case King:
			return "K"
		}
	}
	return c
}

// PieceFromChar parses a single FEN piece letter into a Piece.
// Returns PieceNone for any character that is not a recognized piece.
func PieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return NewPiece(White, Pawn)
	case 'N':
		return NewPiece(White, Knight)
	case 'B':
		return NewPiece(White, Bishop)
	case 'R':
		return NewPiece(White, Rook)
	case 'Q':
		return NewPiece(White, Queen)
	case 'K':
		return NewPiece(White, King)
	case 'p':
		return NewPiece(Black, Pawn)
	case 'n':
		return NewPiece(Black, Knight)
	case 'b':
		return NewPiece(Black, Bishop)
	case 'r':
		return NewPiece(Black, Rook)
	case 'q':
		return NewPiece(Black, Queen)
	case 'k':
		return NewPiece(Black, King)
	default:
		return PieceNone
	}
}

// Material is the standard centipawn value of each piece type, used by
// both the evaluator's material term and the search's MVV-LVA move
// ordering. King is 0 here; mate/stalemate are handled by the search.
var Material = [PieceTypeLength]int{
	NoPieceType: 0,
	Pawn:        100,
	Knight:      320,
	Bishop:      330,
	Rook:        500,
	Queen:       900,
	King:        0,
}
