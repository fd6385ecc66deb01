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

// Package tt implements the search's transposition table: a
// fixed-size, power-of-two array of entries indexed by the low bits
// of the Zobrist key, with depth-preferred replacement and a
// generation counter so stale entries from earlier searches yield to
// new ones whatever their depth.
package tt

import (
	"math"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	applog "github.com/mkvoss/gochess/internal/logging"
	. "github.com/mkvoss/gochess/internal/types"
)

var out = message.NewPrinter(language.English)

// Bound records which side of the alpha-beta window a stored value
// came from, following the spec's node-kind classification.
type Bound uint8

const (
	// BoundNone marks an empty slot.
	BoundNone Bound = iota
	// BoundExact records a value that fell strictly inside the window.
	BoundExact
	// BoundLower records a fail-high value (v >= beta).
	BoundLower
	// BoundUpper records a fail-low value (v <= alpha).
	BoundUpper
)

// MaxSizeInMB bounds the -setoption Hash value.
const MaxSizeInMB = 65_536

const entrySize = 24 // key(8) + move(4) + value(4) + eval(4) + depth/bound/age packed(4), rounded

// Entry is one transposition-table slot.
type Entry struct {
	Key   uint64
	Move  Move
	Value Value
	Eval  Value
	Depth int8
	Bound Bound
	Age   uint8
}

// Table is the transposition table. It is not safe for concurrent
// use; the engine's cooperative single-session search model means
// none is needed.
type Table struct {
	log        *logging.Logger
	data       []Entry
	mask       uint64
	generation uint8
	entries    uint64

	Puts       uint64
	Collisions uint64
	Probes     uint64
	Hits       uint64
}

// New creates a table sized to fit within sizeInMB of memory.
func New(sizeInMB int) *Table {
	t := &Table{log: applog.GetLog()}
	t.Resize(sizeInMB)
	return t
}

// Resize reallocates the table to the largest power-of-two entry
// count fitting in sizeInMB; all prior entries are lost.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB > MaxSizeInMB {
		t.log.Warning(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMB, MaxSizeInMB))
		sizeInMB = MaxSizeInMB
	}
	if sizeInMB < 0 {
		sizeInMB = 0
	}
	sizeInBytes := uint64(sizeInMB) * 1024 * 1024
	numEntries := uint64(0)
	if sizeInBytes >= entrySize {
		numEntries = uint64(1) << uint64(math.Floor(math.Log2(float64(sizeInBytes)/float64(entrySize))))
	}
	t.mask = 0
	if numEntries > 0 {
		t.mask = numEntries - 1
	}
	t.data = make([]Entry, numEntries)
	t.entries = 0
	t.log.Info(out.Sprintf("transposition table sized to %d entries (%d MB requested)", numEntries, sizeInMB))
}

// Clear empties the table without changing its size.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.entries = 0
	t.Puts, t.Collisions, t.Probes, t.Hits = 0, 0, 0, 0
}

// NewSearch bumps the generation counter, marking all existing
// entries as belonging to a previous search for replacement purposes.
func (t *Table) NewSearch() {
	t.generation++
}

func (t *Table) index(key uint64) uint64 {
	return key & t.mask
}

// Probe returns the entry stored for key and true, or a zero Entry
// and false if the slot is empty or holds a different key.
func (t *Table) Probe(key uint64) (Entry, bool) {
	if len(t.data) == 0 {
		return Entry{}, false
	}
	t.Probes++
	e := &t.data[t.index(key)]
	if e.Bound == BoundNone || e.Key != key {
		return Entry{}, false
	}
	t.Hits++
	return *e, true
}

// Store writes (or replaces) the entry for key. On a collision with a
// different key, the slot is replaced when the new depth is at least
// the stored one, or when the stored entry is from an older generation.
func (t *Table) Store(key uint64, move Move, depth int8, value, eval Value, bound Bound) {
	if len(t.data) == 0 {
		return
	}
	t.Puts++
	e := &t.data[t.index(key)]

	if e.Bound == BoundNone {
		t.entries++
		*e = Entry{Key: key, Move: move, Value: value, Eval: eval, Depth: depth, Bound: bound, Age: t.generation}
		return
	}
	if e.Key != key {
		t.Collisions++
		if depth >= e.Depth || e.Age != t.generation {
			*e = Entry{Key: key, Move: move, Value: value, Eval: eval, Depth: depth, Bound: bound, Age: t.generation}
		}
		return
	}
	// Same position: always refresh, preserving the existing move if
	// the new store has none.
	if move == MoveNone {
		move = e.Move
	}
	*e = Entry{Key: key, Move: move, Value: value, Eval: eval, Depth: depth, Bound: bound, Age: t.generation}
}

// Hashfull reports table occupancy in permille, as UCI's "info
// hashfull" wants it.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	return int((1000 * t.entries) / uint64(len(t.data)))
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 { return t.entries }
