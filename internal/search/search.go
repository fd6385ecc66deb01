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

// Package search implements iterative-deepening negamax with
// alpha-beta pruning and quiescence, driven one bounded slice of work
// at a time through Session.Think so a host that cannot be
// monopolized (a browser worker's event loop, in particular) can
// interleave it with other work.
//
// A Session restarts the current iterative-deepening ply's root
// search from scratch on every Think call that did not finish it,
// rather than pausing mid-recursion. The transposition table, killer
// table and history table all survive across those restarts, so a
// resumed ply re-treads ground the ordering tables already know about
// and is far cheaper than the first pass at that depth. This is a
// deliberately coarser realization of the cooperative-stepping
// contract than a fiber paused mid-node would give; see the design
// notes for why that tradeoff was made.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkvoss/gochess/internal/config"
	"github.com/mkvoss/gochess/internal/history"
	applog "github.com/mkvoss/gochess/internal/logging"
	"github.com/mkvoss/gochess/internal/position"
	"github.com/mkvoss/gochess/internal/tt"
	. "github.com/mkvoss/gochess/internal/types"
)

var out = message.NewPrinter(language.English)

type abortReason int

const (
	abortNone abortReason = iota
	abortSlice
	abortStop
	abortTime
	abortNodeLimit
)

// sliceNodeBudget bounds how many nodes a single Think call visits
// before yielding control back to the caller.
const sliceNodeBudget = 4096

// Info is one iterative-deepening progress report, shaped to map
// directly onto a UCI "info" line.
type Info struct {
	Depth    int
	Score    Value
	Nodes    uint64
	Nps      uint64
	TimeMs   int64
	PV       string
	Hashfull int
}

// Session owns one search from `go` to `bestmove`: the root position,
// the transposition and move-ordering tables, and the resumable
// iterative-deepening state that Think advances.
type Session struct {
	log *logging.Logger

	tt   *tt.Table
	hist *history.Tables

	sem *semaphore.Weighted

	pos    *position.Position
	limits Limits

	startTime   time.Time
	deadline    time.Time
	hasDeadline bool

	nodes      uint64
	sliceNodes uint64
	abort      abortReason
	stop       bool

	currentDepth int
	maxDepth     int
	done         bool

	lastResult Result

	OnInfo func(Info)
}

// NewSession creates a search session bound to a shared transposition
// table (transposition tables persist across searches within a game,
// so the table itself is owned by the engine, not the session).
func NewSession(table *tt.Table) *Session {
	return &Session{
		log:  applog.GetLog(),
		tt:   table,
		hist: history.NewTables(),
		sem:  semaphore.NewWeighted(1),
	}
}

// Start begins a new search of pos under limits. It does not itself
// do any work; call Think repeatedly until it returns true.
func (s *Session) Start(pos *position.Position, limits Limits) {
	if !s.sem.TryAcquire(1) {
		s.log.Warning("search start requested while a session is already running")
		return
	}
	s.pos = pos.Clone()
	s.limits = limits
	s.startTime = time.Now()
	s.nodes = 0
	s.currentDepth = 1
	s.done = false
	s.stop = false
	s.abort = abortNone
	s.lastResult = Result{BestMove: MoveNone}
	s.tt.NewSearch()

	s.maxDepth = limits.Depth
	if s.maxDepth <= 0 || s.maxDepth > config.Settings.Search.MaxDepth {
		s.maxDepth = config.Settings.Search.MaxDepth
	}

	if d, ok := limits.allocate(pos.SideToMove == White); ok {
		s.hasDeadline = true
		s.deadline = s.startTime.Add(d)
		s.log.Info(out.Sprintf("search started: max depth %d, time budget %s", s.maxDepth, d))
	} else {
		s.hasDeadline = false
		s.log.Info(out.Sprintf("search started: max depth %d, no time budget", s.maxDepth))
	}
}

// Stop asks the session to finish as soon as possible. The next (or
// current) Think call will return true with the best move found so
// far.
func (s *Session) Stop() {
	s.stop = true
}

// Done reports whether the session has finished (by reaching its
// depth or time limit, or because Stop was called).
func (s *Session) Done() bool {
	return s.done
}

// Result returns the best move and PV found by the last fully
// completed iterative-deepening ply. If the session was stopped before
// any ply completed, it holds the best root move of the interrupted
// first ply (the first ordered move if none had been scored yet).
func (s *Session) Result() Result {
	return s.lastResult
}

// NewGame clears state that must not leak between games: the
// transposition table and the killer/history tables. If a search is
// still running it is stopped first.
func (s *Session) NewGame() {
	if !s.done && s.pos != nil {
		s.Stop()
	}
	s.tt.Clear()
	s.hist.Clear()
}

// Think performs one bounded slice of search work and returns true
// once the session has nothing more to do. It is safe to call
// repeatedly. The slice budget is checked at the same node-count polls
// as the clock (every checkInterval nodes), so a call that does not
// finish the session returns at the first poll after sliceNodeBudget
// nodes, overrunning the budget by less than one poll interval.
func (s *Session) Think(ctx context.Context) bool {
	if s.done {
		return true
	}
	defer func() {
		if s.done {
			s.sem.Release(1)
		}
	}()

	if ctx.Err() != nil {
		s.done = true
		return true
	}

	s.sliceNodes = 0
	s.abort = abortNone

	best, score, pv := s.searchRoot(s.currentDepth)

	switch s.abort {
	case abortNone:
		s.lastResult = Result{
			BestMove: best,
			Score:    score,
			Depth:    s.currentDepth,
			Nodes:    s.nodes,
			PV:       pv,
		}
		s.report()
		s.currentDepth++
		if s.currentDepth > s.maxDepth || s.stop {
			s.done = true
		}
	case abortSlice:
		// Not done: the caller should invoke Think again to resume
		// (restart) the current depth.
	case abortStop, abortTime, abortNodeLimit:
		if s.lastResult.BestMove == MoveNone {
			s.lastResult = Result{BestMove: best, Score: score, Depth: s.currentDepth, Nodes: s.nodes, PV: pv}
		}
		s.done = true
	}

	return s.done
}

func (s *Session) report() {
	if s.OnInfo == nil {
		return
	}
	elapsed := time.Since(s.startTime)
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(s.nodes) / elapsed.Seconds())
	}
	s.OnInfo(Info{
		Depth:    s.lastResult.Depth,
		Score:    s.lastResult.Score,
		Nodes:    s.nodes,
		Nps:      nps,
		TimeMs:   elapsed.Milliseconds(),
		PV:       s.lastResult.PV.StringUci(),
		Hashfull: s.tt.Hashfull(),
	})
}

// checkAbort is polled periodically from inside the recursive search
// and records why, if at all, the search should unwind immediately.
func (s *Session) checkAbort() {
	if s.stop {
		s.abort = abortStop
		return
	}
	if s.limits.Nodes > 0 && s.nodes >= s.limits.Nodes {
		s.abort = abortNodeLimit
		return
	}
	if s.hasDeadline && !time.Now().Before(s.deadline) {
		s.abort = abortTime
		return
	}
	if s.sliceNodes >= sliceNodeBudget {
		s.abort = abortSlice
		return
	}
}
