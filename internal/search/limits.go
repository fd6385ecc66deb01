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

package search

import "time"

// Limits describes how a `go` command bounds a search: a fixed
// depth, a node count, a fixed move time, whole-game clocks with
// increments, or an unbounded "infinite" search stopped only by
// `stop`. `go perft` has no Limits field: the UCI layer handles it
// without starting a search session.
type Limits struct {
	Infinite bool
	Depth    int
	Nodes    uint64
	MoveTime time.Duration

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MovesToGo   int
}

// NewLimits returns a zero-value Limits, equivalent to "infinite"
// until a field is set by the UCI `go` parser.
func NewLimits() Limits {
	return Limits{}
}

// allocate computes how long the session may think given these
// limits and the side to move, following the simple fraction-of-
// remaining-time allocation the teacher engine uses: remaining time
// divided by an estimate of moves left, plus that side's increment,
// with a safety margin subtracted so the session finishes an
// iteration before the GUI's clock would flag a timeout.
func (l Limits) allocate(whiteToMove bool) (time.Duration, bool) {
	if l.Infinite {
		return 0, false
	}
	if l.MoveTime > 0 {
		return l.MoveTime, true
	}
	if !l.TimeControl {
		return 0, false
	}

	remaining, inc := l.BlackTime, l.BlackInc
	if whiteToMove {
		remaining, inc = l.WhiteTime, l.WhiteInc
	}

	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}

	budget := remaining/time.Duration(movesToGo) + inc
	const safetyMargin = 50 * time.Millisecond
	budget -= safetyMargin
	if budget < 10*time.Millisecond {
		budget = 10 * time.Millisecond
	}
	return budget, true
}
