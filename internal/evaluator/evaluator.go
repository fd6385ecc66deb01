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

// Package evaluator turns a position into a centipawn Value from the
// side-to-move's point of view: material plus a tapered piece-square
// table term, blended by a game-phase factor derived from the
// non-pawn material still on the board.
package evaluator

import (
	"github.com/mkvoss/gochess/internal/position"
	. "github.com/mkvoss/gochess/internal/types"
)

// Evaluate returns the static evaluation of pos in centipawns from
// the perspective of the side to move.
func Evaluate(pos *position.Position) Value {
	var total Score
	var phase int32

	for pt := Pawn; pt < PieceTypeLength; pt++ {
		whiteBB := pos.PieceBB(NewPiece(White, pt))
		blackBB := pos.PieceBB(NewPiece(Black, pt))

		w, b := whiteBB, blackBB
		for w != BbEmpty {
			sq := w.PopLsb()
			total.Add(materialScore(pt))
			total.Add(pieceSquareScore(NewPiece(White, pt), sq))
		}
		for b != BbEmpty {
			sq := b.PopLsb()
			total.Sub(materialScore(pt))
			total.Sub(pieceSquareScore(NewPiece(Black, pt), sq))
		}

		phase += PhaseWeight(pt) * int32(whiteBB.PopCount()+blackBB.PopCount())
	}

	value := total.Taper(phase)
	if pos.SideToMove == Black {
		value = -value
	}
	return value
}

func materialScore(pt PieceType) Score {
	m := int32(Material[pt])
	return Score{Mid: m, End: m}
}
