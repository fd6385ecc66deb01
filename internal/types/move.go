package types

import "strings"

// MoveKind tags what a Move does, beyond its from/to squares. These
// eight kinds are the closed set named by the move generator's
// contract: quiet, double pawn push, the two castles, capture, en
// passant, promotion, and promotion-capture.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	Promotion
	PromotionCapture
)

// IsCapture reports whether the move kind removes an enemy piece,
// including the en-passant and promotion-capture variants.
func (k MoveKind) IsCapture() bool {
	return k == Capture || k == EnPassant || k == PromotionCapture
}

// IsPromotion reports whether the move kind carries a promotion piece.
func (k MoveKind) IsPromotion() bool {
	return k == Promotion || k == PromotionCapture
}

// IsCastle reports whether the move kind is one of the two castles.
func (k MoveKind) IsCastle() bool {
	return k == KingCastle || k == QueenCastle
}

// Move packs a chess move into a 32-bit value:
//
//	bits 0-5:   to square
//	bits 6-11:  from square
//	bits 12-13: promotion piece type, encoded as (pt - Knight), 0-3
//	bits 14-16: move kind
//
// MoveNone (zero value) is never a valid move since SqA1->SqA1 is not
// producible by the generator.
type Move uint32

const (
	MoveNone Move = 0

	moveToShift   = 0
	moveFromShift = 6
	movePromShift = 12
	moveKindShift = 14

	moveSquareMask Move = 0x3F
	movePromMask   Move = 0x3 << movePromShift
	moveKindMask   Move = 0x7 << moveKindShift
)

// NewMove encodes a move. promo is ignored unless kind is Promotion or
// PromotionCapture, in which case it must be one of Knight/Bishop/Rook/Queen.
func NewMove(from, to Square, kind MoveKind, promo PieceType) Move {
	var promBits Move
	if kind.IsPromotion() {
		promBits = Move(promo-Knight) << movePromShift
	}
	return Move(to)<<moveToShift |
		Move(from)<<moveFromShift |
		promBits |
		Move(kind)<<moveKindShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveSquareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> moveToShift) & moveSquareMask)
}

// Kind returns the move's MoveKind tag.
func (m Move) Kind() MoveKind {
	return MoveKind((m & moveKindMask) >> moveKindShift)
}

// PromotionType returns the promoted-to piece type. Only meaningful
// when Kind().IsPromotion().
func (m Move) PromotionType() PieceType {
	return PieceType((m&movePromMask)>>movePromShift) + Knight
}

// IsValid reports whether m is a non-zero move with valid squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// StringUci renders m in UCI long algebraic form, e.g. "e2e4",
// "e7e8q", "e1g1" (king-side castle), "e5d6" (en passant).
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Kind().IsPromotion() {
		b.WriteString(m.PromotionType().Char())
	}
	return b.String()
}

func (m Move) String() string {
	return m.StringUci()
}
