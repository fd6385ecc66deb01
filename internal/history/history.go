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

// Package history provides the move-ordering tables the search
// consults between the transposition-table move and the quiet moves:
// two killer-move slots per ply, and a by-(color,from,to) history
// counter incremented on quiet beta cutoffs.
package history

import (
	. "github.com/mkvoss/gochess/internal/types"
)

// MaxPly bounds the killer table; search never recurses deeper than this.
const MaxPly = 128

// Tables holds killer and history data for one search session. It is
// cleared on ucinewgame and persists across the iterative-deepening
// plies of a single search.
type Tables struct {
	killers [MaxPly][2]Move
	counts  [2][64][64]int64
}

// NewTables returns a zeroed move-ordering table set.
func NewTables() *Tables {
	return &Tables{}
}

// Clear resets every killer and history entry.
func (t *Tables) Clear() {
	*t = Tables{}
}

// Killers returns the two killer moves recorded for ply, in most- to
// least-recent order. Either or both may be MoveNone.
func (t *Tables) Killers(ply int) (Move, Move) {
	if ply < 0 || ply >= MaxPly {
		return MoveNone, MoveNone
	}
	return t.killers[ply][0], t.killers[ply][1]
}

// AddKiller records m as a killer at ply, on a beta cutoff by a quiet
// move. The most recent killer is kept in slot 0; the previous slot-0
// killer slides to slot 1 unless it was the same move.
func (t *Tables) AddKiller(ply int, m Move) {
	if ply < 0 || ply >= MaxPly || m == t.killers[ply][0] {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = m
}

// IsKiller reports whether m is one of ply's two killer moves.
func (t *Tables) IsKiller(ply int, m Move) bool {
	k0, k1 := t.Killers(ply)
	return m == k0 || m == k1
}

// History returns the accumulated history score for a quiet move by
// color c from `from` to `to`.
func (t *Tables) History(c Color, from, to Square) int64 {
	return t.counts[c][from][to]
}

// AddHistory bumps the history score of a quiet cutoff move by
// depth^2, the conventional weighting that favors cutoffs found deep
// in the tree over shallow ones.
func (t *Tables) AddHistory(c Color, from, to Square, depth int) {
	t.counts[c][from][to] += int64(depth) * int64(depth)
	// Halve all counters once a single entry gets large enough to risk
	// overflow dominating the int64 ordering comparisons; this is a
	// decay, not a correctness requirement.
	if t.counts[c][from][to] > 1<<40 {
		t.decay()
	}
}

func (t *Tables) decay() {
	for c := 0; c < 2; c++ {
		for f := 0; f < 64; f++ {
			for to := 0; to < 64; to++ {
				t.counts[c][f][to] /= 2
			}
		}
	}
}
