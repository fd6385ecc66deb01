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

// Package moveslice provides the ordered-move-list helper the search
// sorts before visiting a node's children, and the MoveSlice used to
// record a principal variation.
package moveslice

import (
	"strings"

	. "github.com/mkvoss/gochess/internal/types"
)

// MoveSlice is a plain list of moves, used for PV storage and for
// passing generated moves around.
type MoveSlice []Move

// NewMoveSlice returns an empty move slice with the given capacity.
func NewMoveSlice(capacity int) MoveSlice {
	return make(MoveSlice, 0, capacity)
}

// PushFront prepends m, shifting every other element one slot right -
// used when building a PV by prepending the current ply's move onto
// the continuation returned by the recursive search call.
func (ms *MoveSlice) PushFront(m Move) {
	*ms = append(*ms, MoveNone)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// Clear empties the slice while retaining its backing array.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone deep-copies the slice.
func (ms MoveSlice) Clone() MoveSlice {
	dest := make(MoveSlice, len(ms))
	copy(dest, ms)
	return dest
}

// StringUci renders the slice as a space-separated list of UCI
// long-algebraic moves, the format the "pv" field of a UCI info line
// and the final "bestmove ponder" line both use.
func (ms MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range ms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.StringUci())
	}
	return b.String()
}

// Scored pairs a move with an ordering score assigned by the move
// orderer; higher sorts first. The score itself is never a search
// value - it only orders which branch is visited first.
type Scored struct {
	Move  Move
	Score int32
}

// ScoredSlice is a list of moves annotated with an order-by score.
type ScoredSlice []Scored

// Sort orders moves from highest score to lowest using insertion
// sort, which is fast for the short, mostly-already-ordered lists a
// move generator produces at one node.
func (ss ScoredSlice) Sort() {
	for i := 1; i < len(ss); i++ {
		tmp := ss[i]
		j := i
		for j > 0 && ss[j-1].Score < tmp.Score {
			ss[j] = ss[j-1]
			j--
		}
		ss[j] = tmp
	}
}

// Moves extracts the plain move list in current (sorted) order.
func (ss ScoredSlice) Moves() MoveSlice {
	out := make(MoveSlice, len(ss))
	for i, s := range ss {
		out[i] = s.Move
	}
	return out
}
