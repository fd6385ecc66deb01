package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkvoss/gochess/internal/movegen"
	"github.com/mkvoss/gochess/internal/position"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		position.StartFEN,
		position.KiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}
	for _, fen := range fens {
		pos, err := position.FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, pos.ToFEN())
	}
}

func TestFromFENRejectsMalformedInput(t *testing.T) {
	_, err := position.FromFEN("not a fen")
	assert.Error(t, err)
}

func TestComputeHashMatchesStoredHash(t *testing.T) {
	for _, fen := range []string{position.StartFEN, position.KiwipeteFEN} {
		pos, err := position.FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, pos.ComputeHash(), pos.Hash)
	}
}

// TestDoMoveUndoMoveRoundTrip walks every legal move several plies deep
// from two starting positions and checks that DoMove followed by
// UndoMove restores the position exactly, Hash included, and that the
// incrementally maintained Hash always matches a from-scratch
// recomputation.
func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	for _, fen := range []string{position.StartFEN, position.KiwipeteFEN} {
		pos, err := position.FromFEN(fen)
		assert.NoError(t, err)
		walk(t, pos, 3)
	}
}

func walk(t *testing.T, pos *position.Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	for _, m := range movegen.GenerateLegal(pos) {
		before := *pos
		undo := pos.DoMove(m)
		assert.Equal(t, pos.ComputeHash(), pos.Hash, "incremental hash diverged after %v", m)

		walk(t, pos, depth-1)

		pos.UndoMove(m, undo)
		assert.Equal(t, before, *pos, "UndoMove did not restore position after %v", m)
	}
}
