package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkvoss/gochess/internal/position"
)

// Reference counts from the standard perft suite (chessprogrammingwiki).
func TestPerftStartPosition(t *testing.T) {
	expected := []uint64{1, 20, 400, 8902, 197281, 4865609}
	pos := position.New()
	for depth, want := range expected {
		assert.Equal(t, want, Perft(pos, depth), "perft(%d) from startpos", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	expected := []uint64{1, 48, 2039, 97862, 4085603}
	pos, err := position.FromFEN(position.KiwipeteFEN)
	assert.NoError(t, err)
	for depth, want := range expected {
		assert.Equal(t, want, Perft(pos, depth), "perft(%d) from kiwipete", depth)
	}
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	pos := position.New()
	entries := PerftDivide(pos, 3)
	assert.Equal(t, Perft(pos, 3), TotalNodes(entries))
	assert.Len(t, entries, 20)
}
