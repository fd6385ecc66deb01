package movegen

import (
	"github.com/mkvoss/gochess/internal/position"
	. "github.com/mkvoss/gochess/internal/types"
)

// MoveFromUCI parses a UCI long-algebraic move string (e.g. "e2e4",
// "e7e8q", "e1g1", "e5d6") against the legal moves of pos. Returns
// MoveNone if s does not name a legal move - this is how an absent
// promotion suffix on a promoting move, or any other malformed or
// illegal token, is rejected per the move generator's contract.
func MoveFromUCI(pos *position.Position, s string) Move {
	if len(s) < 4 || len(s) > 5 {
		return MoveNone
	}
	from := SquareFromString(s[0:2])
	to := SquareFromString(s[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone
	}
	var promo PieceType = NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return MoveNone
		}
	}
	for _, m := range GenerateLegal(pos) {
		if m.From() == from && m.To() == to {
			if m.Kind().IsPromotion() {
				if promo == NoPieceType || m.PromotionType() != promo {
					continue
				}
			} else if promo != NoPieceType {
				continue
			}
			return m
		}
	}
	return MoveNone
}
