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

import (
	"github.com/mkvoss/gochess/internal/config"
	"github.com/mkvoss/gochess/internal/evaluator"
	"github.com/mkvoss/gochess/internal/movegen"
	"github.com/mkvoss/gochess/internal/moveslice"
	"github.com/mkvoss/gochess/internal/position"
	"github.com/mkvoss/gochess/internal/tt"
	. "github.com/mkvoss/gochess/internal/types"
)

// searchRoot runs one full iterative-deepening ply at the given
// depth and returns the best move, its score and its PV. It is only
// ever asked to search a depth from scratch - see Session.Think for
// why that is an acceptable realization of the cooperative stepping
// contract.
func (s *Session) searchRoot(depth int) (Move, Value, moveslice.MoveSlice) {
	moves := movegen.GenerateLegal(s.pos)
	if len(moves) == 0 {
		return MoveNone, ValueZero, nil
	}

	var ttMove Move
	if e, ok := s.tt.Probe(s.pos.Hash); ok {
		ttMove = e.Move
	}
	ordered := s.orderMoves(s.pos, moves, ttMove, 0)
	const ply = 0

	alpha, beta := -ValueInfinite, ValueInfinite
	best := ordered[0].Move
	bestScore := -ValueInfinite
	var bestPV moveslice.MoveSlice

	for _, sm := range ordered {
		m := sm.Move
		undo := s.pos.DoMove(m)
		childScore, childPV := s.negamax(s.pos, depth-1, -beta, -alpha, 1)
		value := -childScore
		s.pos.UndoMove(m, undo)

		if s.abort != abortNone {
			return best, bestScore, bestPV
		}

		if value > bestScore {
			bestScore = value
			best = m
			bestPV = append(moveslice.MoveSlice{m}, childPV...)
		}
		if value > alpha {
			alpha = value
		}
	}

	s.tt.Store(s.pos.Hash, best, int8(depth), valueToTT(bestScore, ply), ValueNone, tt.BoundExact)
	return best, bestScore, bestPV
}

// negamax searches one interior node. It returns the value from the
// side-to-move's perspective and the principal continuation below
// this node (not including the move that led here).
func (s *Session) negamax(pos *position.Position, depth int, alpha, beta Value, ply int) (Value, moveslice.MoveSlice) {
	s.nodes++
	s.sliceNodes++
	if s.nodes%s.checkInterval() == 0 {
		s.checkAbort()
	}
	if s.abort != abortNone {
		return ValueZero, nil
	}

	if pos.HalfMoveClock >= 100 {
		return ValueZero, nil
	}

	alphaOrig := alpha
	var ttMove Move
	if e, ok := s.tt.Probe(pos.Hash); ok {
		ttMove = e.Move
		ttValue := valueFromTT(e.Value, ply)
		if int(e.Depth) >= depth {
			switch e.Bound {
			case tt.BoundExact:
				return ttValue, nil
			case tt.BoundLower:
				if ttValue > alpha {
					alpha = ttValue
				}
			case tt.BoundUpper:
				if ttValue < beta {
					beta = ttValue
				}
			}
			if alpha >= beta {
				return ttValue, nil
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	moves := movegen.GenerateLegal(pos)
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove) {
			return -(ValueMate - Value(ply)), nil
		}
		return ValueZero, nil
	}

	ordered := s.orderMoves(pos, moves, ttMove, ply)

	best := ordered[0].Move
	bestScore := Value(-ValueInfinite)
	var bestPV moveslice.MoveSlice
	for i, sm := range ordered {
		m := sm.Move
		undo := pos.DoMove(m)
		childScore, childPV := s.negamax(pos, depth-1, -beta, -alpha, ply+1)
		value := -childScore
		pos.UndoMove(m, undo)

		if s.abort != abortNone {
			return bestScore, nil
		}

		if value > bestScore || i == 0 {
			bestScore = value
			best = m
			bestPV = append(moveslice.MoveSlice{m}, childPV...)
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			if !m.Kind().IsCapture() {
				s.hist.AddKiller(ply, m)
				s.hist.AddHistory(pos.SideToMove, m.From(), m.To(), depth)
			}
			break
		}
	}

	bound := tt.BoundExact
	if bestScore <= alphaOrig {
		bound = tt.BoundUpper
	} else if bestScore >= beta {
		bound = tt.BoundLower
	}
	s.tt.Store(pos.Hash, best, int8(depth), valueToTT(bestScore, ply), ValueNone, bound)

	return bestScore, bestPV
}

// valueToTT adjusts a mate score from "distance to mate from the
// current node" to "distance to mate from the root" before it is
// stored, so the same TT entry means the same thing regardless of
// which ply it is later read back at.
func valueToTT(value Value, ply int) Value {
	if value.IsMateScore() {
		if value > 0 {
			value += Value(ply)
		} else {
			value -= Value(ply)
		}
	}
	return value
}

// valueFromTT reverses valueToTT, converting a mate score stored
// relative to the root back into "distance to mate from this node"
// before it is used as this node's alpha-beta bound or return value.
func valueFromTT(value Value, ply int) Value {
	if value.IsMateScore() {
		if value > 0 {
			value -= Value(ply)
		} else {
			value += Value(ply)
		}
	}
	return value
}

// quiescence extends the search along captures only, to avoid
// evaluating a position where a hanging piece is about to be
// recaptured (the horizon effect).
func (s *Session) quiescence(pos *position.Position, alpha, beta Value, ply int) (Value, moveslice.MoveSlice) {
	s.nodes++
	s.sliceNodes++
	if s.nodes%s.checkInterval() == 0 {
		s.checkAbort()
	}
	if s.abort != abortNone {
		return ValueZero, nil
	}

	moves := movegen.GenerateLegal(pos)
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove) {
			return -(ValueMate - Value(ply)), nil
		}
		return ValueZero, nil
	}

	standPat := evaluator.Evaluate(pos)
	if standPat >= beta {
		return standPat, nil
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := s.orderCaptures(pos, moves)
	if len(captures) == 0 {
		return alpha, nil
	}

	best := alpha
	var bestPV moveslice.MoveSlice
	for _, sm := range captures {
		m := sm.Move
		undo := pos.DoMove(m)
		childScore, childPV := s.quiescence(pos, -beta, -alpha, ply+1)
		value := -childScore
		pos.UndoMove(m, undo)

		if s.abort != abortNone {
			return best, nil
		}

		if value > best {
			best = value
			bestPV = append(moveslice.MoveSlice{m}, childPV...)
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}
	return best, bestPV
}

// checkInterval returns how many nodes pass between polls of
// checkAbort, taken from config so it can be tuned without a rebuild;
// config.Settings.Search.NodesBetweenChecks defaults to 2048.
func (s *Session) checkInterval() uint64 {
	if n := config.Settings.Search.NodesBetweenChecks; n > 0 {
		return n
	}
	return 2048
}

// orderMoves scores every legal move by the standard ordering
// priority - TT move, then MVV-LVA captures, then killers, then
// history - and returns them sorted best-first.
func (s *Session) orderMoves(pos *position.Position, moves []Move, ttMove Move, ply int) moveslice.ScoredSlice {
	scored := make(moveslice.ScoredSlice, len(moves))
	for i, m := range moves {
		scored[i] = moveslice.Scored{Move: m, Score: s.moveOrderScore(pos, m, ttMove, ply)}
	}
	scored.Sort()
	return scored
}

func (s *Session) orderCaptures(pos *position.Position, moves []Move) moveslice.ScoredSlice {
	scored := make(moveslice.ScoredSlice, 0, len(moves))
	for _, m := range moves {
		if !m.Kind().IsCapture() {
			continue
		}
		scored = append(scored, moveslice.Scored{Move: m, Score: mvvLva(pos, m)})
	}
	scored.Sort()
	return scored
}

func (s *Session) moveOrderScore(pos *position.Position, m, ttMove Move, ply int) int32 {
	switch {
	case m == ttMove:
		return 1_000_000
	case m.Kind().IsCapture():
		return 100_000 + mvvLva(pos, m)
	case s.hist.IsKiller(ply, m):
		return 90_000
	default:
		// Cap history below the killer score so quiet moves never
		// outrank killers or captures (and never overflow int32).
		h := s.hist.History(pos.SideToMove, m.From(), m.To())
		if h >= 90_000 {
			h = 89_999
		}
		return int32(h)
	}
}

// mvvLva scores a capture as 10x the victim's material value minus
// the attacker's, so higher-value victims taken by lower-value
// attackers sort first.
func mvvLva(pos *position.Position, m Move) int32 {
	attacker := pos.PieceOn(m.From())
	var victimType PieceType
	if m.Kind() == EnPassant {
		victimType = Pawn
	} else {
		victimType = pos.PieceOn(m.To()).TypeOf()
	}
	return int32(10*Material[victimType] - Material[attacker.TypeOf()])
}
