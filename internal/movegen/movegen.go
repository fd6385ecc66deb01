//
// gochess - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2021-2024 The gochess Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package movegen generates pseudo-legal and legal moves from a
// Position and implements perft. Legality is established the simple
// way the spec allows: generate pseudo-legal moves per piece type,
// then make each one and check whether it left the mover's own king
// in check.
package movegen

import (
	"github.com/mkvoss/gochess/internal/attacks"
	"github.com/mkvoss/gochess/internal/position"
	. "github.com/mkvoss/gochess/internal/types"
)

// GeneratePseudoLegal appends every pseudo-legal move for the side to
// move to moves and returns the extended slice.
func GeneratePseudoLegal(pos *position.Position, moves []Move) []Move {
	us := pos.SideToMove
	them := us.Flip()
	ownPieces := pos.ColorBB(us)
	enemyPieces := pos.ColorBB(them)
	occ := pos.Occupied()

	moves = genPawnMoves(pos, us, enemyPieces, occ, moves)
	moves = genLeaperMoves(pos, NewPiece(us, Knight), ownPieces, func(sq Square, _ Bitboard) Bitboard {
		return attacks.KnightAttacks(sq)
	}, moves)
	moves = genSliderMoves(pos, NewPiece(us, Bishop), ownPieces, occ, attacks.BishopAttacks, moves)
	moves = genSliderMoves(pos, NewPiece(us, Rook), ownPieces, occ, attacks.RookAttacks, moves)
	moves = genSliderMoves(pos, NewPiece(us, Queen), ownPieces, occ, attacks.QueenAttacks, moves)
	moves = genLeaperMoves(pos, NewPiece(us, King), ownPieces, func(sq Square, _ Bitboard) Bitboard {
		return attacks.KingAttacks(sq)
	}, moves)
	moves = genCastles(pos, us, moves)
	return moves
}

func genLeaperMoves(pos *position.Position, p Piece, ownPieces Bitboard, attacksFn func(Square, Bitboard) Bitboard, moves []Move) []Move {
	pieces := pos.PieceBB(p)
	for pieces != BbEmpty {
		from := pieces.PopLsb()
		targets := attacksFn(from, BbEmpty) &^ ownPieces
		for targets != BbEmpty {
			to := targets.PopLsb()
			kind := Quiet
			if pos.PieceOn(to).IsValid() {
				kind = Capture
			}
			moves = append(moves, NewMove(from, to, kind, NoPieceType))
		}
	}
	return moves
}

func genSliderMoves(pos *position.Position, p Piece, ownPieces, occ Bitboard, attacksFn func(Square, Bitboard) Bitboard, moves []Move) []Move {
	pieces := pos.PieceBB(p)
	for pieces != BbEmpty {
		from := pieces.PopLsb()
		targets := attacksFn(from, occ) &^ ownPieces
		for targets != BbEmpty {
			to := targets.PopLsb()
			kind := Quiet
			if pos.PieceOn(to).IsValid() {
				kind = Capture
			}
			moves = append(moves, NewMove(from, to, kind, NoPieceType))
		}
	}
	return moves
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func genPawnMoves(pos *position.Position, us Color, enemyPieces, occ Bitboard, moves []Move) []Move {
	pawns := pos.PieceBB(NewPiece(us, Pawn))
	forward := 8
	startRank := Rank2
	lastRank := Rank8
	if us == Black {
		forward = -8
		startRank = Rank7
		lastRank = Rank1
	}

	for bb := pawns; bb != BbEmpty; {
		from := bb.PopLsb()
		single := Square(int8(from) + int8(forward))
		if single.IsValid() && !occ.Has(single) {
			if single.RankOf() == lastRank {
				moves = appendPromotions(moves, from, single, Quiet)
			} else {
				moves = append(moves, NewMove(from, single, Quiet, NoPieceType))
				if from.RankOf() == startRank {
					double := Square(int8(single) + int8(forward))
					if !occ.Has(double) {
						moves = append(moves, NewMove(from, double, DoublePawnPush, NoPieceType))
					}
				}
			}
		}

		captures := attacks.PawnAttacks(us, from)
		for t := captures; t != BbEmpty; {
			to := t.PopLsb()
			if enemyPieces.Has(to) {
				if to.RankOf() == lastRank {
					moves = appendPromotions(moves, from, to, PromotionCapture)
				} else {
					moves = append(moves, NewMove(from, to, Capture, NoPieceType))
				}
			} else if to == pos.EPSquare && pos.EPSquare != SqNone {
				moves = append(moves, NewMove(from, to, EnPassant, NoPieceType))
			}
		}
	}
	return moves
}

func appendPromotions(moves []Move, from, to Square, kind MoveKind) []Move {
	for _, pt := range promotionPieces {
		moves = append(moves, NewMove(from, to, kind, pt))
	}
	return moves
}

func genCastles(pos *position.Position, us Color, moves []Move) []Move {
	occ := pos.Occupied()
	them := us.Flip()
	if us == White {
		if pos.CastlingRights&position.WhiteKingside != 0 &&
			attacks.Between(SqE1, SqH1)&occ == BbEmpty &&
			!anyAttacked(pos, them, SqE1, SqF1, SqG1) {
			moves = append(moves, NewMove(SqE1, SqG1, KingCastle, NoPieceType))
		}
		if pos.CastlingRights&position.WhiteQueenside != 0 &&
			attacks.Between(SqA1, SqE1)&occ == BbEmpty &&
			!anyAttacked(pos, them, SqE1, SqD1, SqC1) {
			moves = append(moves, NewMove(SqE1, SqC1, QueenCastle, NoPieceType))
		}
	} else {
		if pos.CastlingRights&position.BlackKingside != 0 &&
			attacks.Between(SqE8, SqH8)&occ == BbEmpty &&
			!anyAttacked(pos, them, SqE8, SqF8, SqG8) {
			moves = append(moves, NewMove(SqE8, SqG8, KingCastle, NoPieceType))
		}
		if pos.CastlingRights&position.BlackQueenside != 0 &&
			attacks.Between(SqA8, SqE8)&occ == BbEmpty &&
			!anyAttacked(pos, them, SqE8, SqD8, SqC8) {
			moves = append(moves, NewMove(SqE8, SqC8, QueenCastle, NoPieceType))
		}
	}
	return moves
}

func anyAttacked(pos *position.Position, byColor Color, squares ...Square) bool {
	for _, sq := range squares {
		if pos.IsSquareAttacked(sq, byColor) {
			return true
		}
	}
	return false
}

// GenerateLegal returns every legal move for the side to move: every
// pseudo-legal move that, once made, does not leave the mover's own
// king in check.
func GenerateLegal(pos *position.Position) []Move {
	us := pos.SideToMove
	pseudo := GeneratePseudoLegal(pos, make([]Move, 0, 48))
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		undo := pos.DoMove(m)
		if !pos.InCheck(us) {
			legal = append(legal, m)
		}
		pos.UndoMove(m, undo)
	}
	return legal
}
