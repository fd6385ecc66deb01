package position

import (
	. "github.com/mkvoss/gochess/internal/types"
)

// UndoInfo captures everything UndoMove needs to reverse a move: the
// irreversible parts of position state plus whatever was captured.
type UndoInfo struct {
	CastlingRights uint8
	EPSquare       Square
	HalfMoveClock  int
	FullMoveNumber int
	CapturedPiece  Piece
	CapturedSquare Square
	Hash           uint64
}

// castleRookSquares maps a castle kind and color to the rook's home and
// destination square.
func castleRookSquares(c Color, kind MoveKind) (from, to Square) {
	if c == White {
		if kind == KingCastle {
			return SqH1, SqF1
		}
		return SqA1, SqD1
	}
	if kind == KingCastle {
		return SqH8, SqF8
	}
	return SqA8, SqD8
}

// DoMove applies m to pos, mutating every field described in the data
// model (bitboards, mailbox, castling rights, en-passant target,
// clocks, Zobrist hash, side to move) and returns the UndoInfo needed
// to reverse it with UndoMove. m is assumed pseudo-legal; legality
// (not leaving the mover in check) is the move generator's concern.
func (pos *Position) DoMove(m Move) UndoInfo {
	from, to, kind := m.From(), m.To(), m.Kind()
	mover := pos.board[from]
	us := pos.SideToMove

	undo := UndoInfo{
		CastlingRights: pos.CastlingRights,
		EPSquare:       pos.EPSquare,
		HalfMoveClock:  pos.HalfMoveClock,
		FullMoveNumber: pos.FullMoveNumber,
		CapturedPiece:  PieceNone,
		CapturedSquare: SqNone,
		Hash:           pos.Hash,
	}

	if pos.EPSquare != SqNone {
		pos.Hash ^= epFileKey(pos.EPSquare)
	}
	pos.EPSquare = SqNone

	switch kind {
	case EnPassant:
		capSq := to + 8
		if us == White {
			capSq = to - 8
		}
		undo.CapturedPiece = pos.board[capSq]
		undo.CapturedSquare = capSq
		pos.Hash ^= pieceKey(undo.CapturedPiece, capSq)
		pos.removePiece(capSq)
		pos.Hash ^= pieceKey(mover, from)
		pos.movePiece(from, to)
		pos.Hash ^= pieceKey(mover, to)

	case KingCastle, QueenCastle:
		pos.Hash ^= pieceKey(mover, from)
		pos.movePiece(from, to)
		pos.Hash ^= pieceKey(mover, to)
		rFrom, rTo := castleRookSquares(us, kind)
		rook := pos.board[rFrom]
		pos.Hash ^= pieceKey(rook, rFrom)
		pos.movePiece(rFrom, rTo)
		pos.Hash ^= pieceKey(rook, rTo)

	case Promotion, PromotionCapture:
		if kind == PromotionCapture {
			undo.CapturedPiece = pos.board[to]
			undo.CapturedSquare = to
			pos.Hash ^= pieceKey(undo.CapturedPiece, to)
			pos.removePiece(to)
		}
		pos.Hash ^= pieceKey(mover, from)
		pos.removePiece(from)
		promoted := NewPiece(us, m.PromotionType())
		pos.putPiece(promoted, to)
		pos.Hash ^= pieceKey(promoted, to)

	case Capture:
		undo.CapturedPiece = pos.board[to]
		undo.CapturedSquare = to
		pos.Hash ^= pieceKey(undo.CapturedPiece, to)
		pos.removePiece(to)
		pos.Hash ^= pieceKey(mover, from)
		pos.movePiece(from, to)
		pos.Hash ^= pieceKey(mover, to)

	case DoublePawnPush:
		pos.Hash ^= pieceKey(mover, from)
		pos.movePiece(from, to)
		pos.Hash ^= pieceKey(mover, to)
		epSq := to + 8
		if us == White {
			epSq = to - 8
		}
		pos.EPSquare = epSq

	default: // Quiet
		pos.Hash ^= pieceKey(mover, from)
		pos.movePiece(from, to)
		pos.Hash ^= pieceKey(mover, to)
	}

	// Halfmove clock resets on pawn moves and any capture.
	pos.HalfMoveClock++
	if mover.TypeOf() == Pawn || kind.IsCapture() {
		pos.HalfMoveClock = 0
	}

	// Castling rights: revoked when a king/rook moves away from or a
	// rook is captured on its original square, regardless of which
	// side made the capture.
	newRights := pos.CastlingRights
	switch {
	case mover.TypeOf() == King && us == White:
		newRights &^= WhiteKingside | WhiteQueenside
	case mover.TypeOf() == King && us == Black:
		newRights &^= BlackKingside | BlackQueenside
	}
	clearRookRight(&newRights, from)
	clearRookRight(&newRights, to)
	if newRights != pos.CastlingRights {
		pos.Hash ^= castleKeyDelta(pos.CastlingRights, newRights)
		pos.CastlingRights = newRights
	}

	if pos.EPSquare != SqNone {
		pos.Hash ^= epFileKey(pos.EPSquare)
	}

	pos.SideToMove = us.Flip()
	pos.Hash ^= zobristSide

	if us == Black {
		pos.FullMoveNumber++
	}

	return undo
}

// clearRookRight revokes the castling right tied to a rook's home
// square, if sq is one of the four rook home squares.
func clearRookRight(rights *uint8, sq Square) {
	switch sq {
	case SqA1:
		*rights &^= WhiteQueenside
	case SqH1:
		*rights &^= WhiteKingside
	case SqA8:
		*rights &^= BlackQueenside
	case SqH8:
		*rights &^= BlackKingside
	}
}

// UndoMove reverses m, restoring pos to exactly the state it was in
// before the matching DoMove call (structural equality on every
// field, including Hash).
func (pos *Position) UndoMove(m Move, undo UndoInfo) {
	from, to, kind := m.From(), m.To(), m.Kind()
	us := pos.SideToMove.Flip()

	switch kind {
	case EnPassant:
		pos.movePiece(to, from)
		pos.putPiece(undo.CapturedPiece, undo.CapturedSquare)

	case KingCastle, QueenCastle:
		pos.movePiece(to, from)
		rFrom, rTo := castleRookSquares(us, kind)
		pos.movePiece(rTo, rFrom)

	case Promotion, PromotionCapture:
		pos.removePiece(to)
		pos.putPiece(NewPiece(us, Pawn), from)
		if kind == PromotionCapture {
			pos.putPiece(undo.CapturedPiece, undo.CapturedSquare)
		}

	case Capture:
		pos.movePiece(to, from)
		pos.putPiece(undo.CapturedPiece, undo.CapturedSquare)

	default: // Quiet, DoublePawnPush
		pos.movePiece(to, from)
	}

	pos.SideToMove = us
	pos.CastlingRights = undo.CastlingRights
	pos.EPSquare = undo.EPSquare
	pos.HalfMoveClock = undo.HalfMoveClock
	pos.FullMoveNumber = undo.FullMoveNumber
	pos.Hash = undo.Hash
}
