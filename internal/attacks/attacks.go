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

// Package attacks precomputes every piece's attack pattern so the move
// generator and evaluator never walk the board by hand. Pawn, knight
// and king tables are plain square lookups; sliding-piece (bishop,
// rook, queen) attacks are classical ray tables: at query time the
// nearest blocker's own ray in the same direction is masked off the
// full ray, not fancy magic bitboards - simpler to verify and fast enough for a
// single-threaded engine. Every table is built once in init() and is
// immutable afterwards; there is no further global mutable state.
package attacks

import (
	. "github.com/mkvoss/gochess/internal/types"
)

// direction is a ray direction used for sliding-piece attacks.
type direction int

const (
	north direction = iota
	south
	east
	west
	northEast
	northWest
	southEast
	southWest
	numDirections
)

// positive reports whether squares increase along the ray, which
// determines whether the nearest blocker is the ray's Lsb or Msb.
func (d direction) positive() bool {
	switch d {
	case north, east, northEast, northWest:
		return true
	default:
		return false
	}
}

var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // indexed by Color

	// rays[d][sq] is every square strictly beyond sq in direction d,
	// stopping at the board edge.
	rays [numDirections][64]Bitboard

	// lineBetween[sq1][sq2] is the set of squares strictly between the
	// two squares on their shared rank, file or diagonal, or BbEmpty if
	// they don't share one. Read through Between.
	lineBetween [64][64]Bitboard
)

func init() {
	initLeaperAttacks()
	initRays()
	initBetween()
}

func initLeaperAttacks() {
	knightDeltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if onBoard(nf, nr) {
				knightAttacks[sq] = knightAttacks[sq].Set(SquareOf(File(nf), Rank(nr)))
			}
		}
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if onBoard(nf, nr) {
				kingAttacks[sq] = kingAttacks[sq].Set(SquareOf(File(nf), Rank(nr)))
			}
		}
		if onBoard(f-1, r+1) {
			pawnAttacks[White][sq] = pawnAttacks[White][sq].Set(SquareOf(File(f-1), Rank(r+1)))
		}
		if onBoard(f+1, r+1) {
			pawnAttacks[White][sq] = pawnAttacks[White][sq].Set(SquareOf(File(f+1), Rank(r+1)))
		}
		if onBoard(f-1, r-1) {
			pawnAttacks[Black][sq] = pawnAttacks[Black][sq].Set(SquareOf(File(f-1), Rank(r-1)))
		}
		if onBoard(f+1, r-1) {
			pawnAttacks[Black][sq] = pawnAttacks[Black][sq].Set(SquareOf(File(f+1), Rank(r-1)))
		}
	}
}

func onBoard(f, r int) bool {
	return f >= 0 && f < 8 && r >= 0 && r < 8
}

var dirDeltas = [numDirections][2]int{
	north:     {0, 1},
	south:     {0, -1},
	east:      {1, 0},
	west:      {-1, 0},
	northEast: {1, 1},
	northWest: {-1, 1},
	southEast: {1, -1},
	southWest: {-1, -1},
}

func initRays() {
	for d := direction(0); d < numDirections; d++ {
		delta := dirDeltas[d]
		for sq := SqA1; sq <= SqH8; sq++ {
			f, r := int(sq.FileOf()), int(sq.RankOf())
			var ray Bitboard
			nf, nr := f+delta[0], r+delta[1]
			for onBoard(nf, nr) {
				ray = ray.Set(SquareOf(File(nf), Rank(nr)))
				nf += delta[0]
				nr += delta[1]
			}
			rays[d][sq] = ray
		}
	}
}

func initBetween() {
	straightDirs := []direction{north, south, east, west}
	diagDirs := []direction{northEast, northWest, southEast, southWest}
	for from := SqA1; from <= SqH8; from++ {
		for _, d := range append(append([]direction{}, straightDirs...), diagDirs...) {
			ray := rays[d][from]
			for ray != 0 {
				to := ray.Lsb()
				ray &= ray - 1
				// line segment strictly between from and to, along d.
				seg := rays[d][from] &^ rays[d][to]
				seg = seg.Clear(to)
				lineBetween[from][to] = seg
			}
		}
	}
}

// slidingAttacks resolves one ray direction against blockers using the
// "ray minus blocker's continuation" trick: take the full ray, and if
// it hits a blocker, subtract everything beyond that blocker (which is
// just that blocker square's own ray in the same direction).
func slidingAttacks(d direction, sq Square, occupied Bitboard) Bitboard {
	ray := rays[d][sq]
	blockers := ray & occupied
	if blockers == BbEmpty {
		return ray
	}
	var blockerSq Square
	if d.positive() {
		blockerSq = blockers.Lsb()
	} else {
		blockerSq = blockers.Msb()
	}
	return ray &^ rays[d][blockerSq]
}

// BishopAttacks returns the bishop's attack set from sq given the
// current total occupancy (blockers are included in the attack set so
// captures are representable).
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(northEast, sq, occupied) |
		slidingAttacks(northWest, sq, occupied) |
		slidingAttacks(southEast, sq, occupied) |
		slidingAttacks(southWest, sq, occupied)
}

// RookAttacks returns the rook's attack set from sq given the current
// total occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(north, sq, occupied) |
		slidingAttacks(south, sq, occupied) |
		slidingAttacks(east, sq, occupied) |
		slidingAttacks(west, sq, occupied)
}

// QueenAttacks returns the queen's attack set from sq given the
// current total occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// KnightAttacks returns the knight's attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king's (non-castling) attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the diagonal capture squares of a pawn of color
// c standing on sq.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// AttacksOf returns the attack set of a piece of type pt on sq given
// the current occupancy. For pawns this is the capture set only (push
// squares are not "attacks" and are handled by the move generator
// directly).
func AttacksOf(pt PieceType, c Color, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return pawnAttacks[c][sq]
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	case King:
		return kingAttacks[sq]
	default:
		return BbEmpty
	}
}

// Between returns the squares strictly between from and to if they
// share a rank, file or diagonal, else BbEmpty. Used for castling
// clearance checks.
func Between(from, to Square) Bitboard {
	return lineBetween[from][to]
}
