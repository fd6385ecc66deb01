package tt

import (
	"testing"

	. "github.com/mkvoss/gochess/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestStoreAndProbeRoundTrip(t *testing.T) {
	table := New(1)
	m := NewMove(SqE2, SqE4, DoublePawnPush, NoPieceType)
	table.Store(0x1234, m, 4, 57, 40, BoundExact)

	e, ok := table.Probe(0x1234)
	assert.True(t, ok)
	assert.Equal(t, m, e.Move)
	assert.Equal(t, Value(57), e.Value)
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, BoundExact, e.Bound)
}

func TestProbeMissReturnsFalse(t *testing.T) {
	table := New(1)
	_, ok := table.Probe(0xdeadbeef)
	assert.False(t, ok)
}

func TestDeeperEntryReplacesShallowerCollision(t *testing.T) {
	table := New(1)
	shallow := NewMove(SqE2, SqE4, DoublePawnPush, NoPieceType)
	deep := NewMove(SqD2, SqD4, DoublePawnPush, NoPieceType)

	// Force a collision: after resizing to a fresh 1 MB table, key2
	// keeps key1's low (index) bits and sets every bit above the mask,
	// so the two distinct keys map to the same slot.
	table.Resize(0)
	table.Resize(1)
	key1, key2 := uint64(1), uint64(1)|^table.mask
	table.Store(key1, shallow, 2, 10, 10, BoundExact)
	table.Store(key2, deep, 6, 20, 20, BoundExact)

	e, ok := table.Probe(key2)
	assert.True(t, ok)
	assert.Equal(t, deep, e.Move)
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	table := New(1)
	assert.Equal(t, 0, table.Hashfull())
	// Hashfull is in permille, so fill enough of the 1 MB table's
	// 32768 slots to reach at least 1 permille.
	for key := uint64(1); key <= 100; key++ {
		table.Store(key, MoveNone, 1, ValueZero, ValueZero, BoundExact)
	}
	assert.Greater(t, table.Hashfull(), 0)
}
