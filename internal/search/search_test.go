package search

import (
	"context"
	"testing"

	"github.com/mkvoss/gochess/internal/position"
	"github.com/mkvoss/gochess/internal/tt"
	. "github.com/mkvoss/gochess/internal/types"
	"github.com/stretchr/testify/assert"
)

func runToCompletion(t *testing.T, s *Session, pos *position.Position, limits Limits) Result {
	t.Helper()
	s.Start(pos, limits)
	ctx := context.Background()
	for i := 0; i < 100_000 && !s.Think(ctx); i++ {
	}
	assert.True(t, s.Done(), "search did not finish within the iteration budget")
	return s.Result()
}

func TestFindsMateInOne(t *testing.T) {
	// White to move, Qg6# available.
	pos, err := position.FromFEN("6k1/6PP/8/8/8/8/8/6QK w - - 0 1")
	assert.NoError(t, err)

	s := NewSession(tt.New(1))
	result := runToCompletion(t, s, pos, Limits{Depth: 3})

	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.True(t, result.Score.IsMateScore())
}

func TestNoLegalMovesReportsNoBestMove(t *testing.T) {
	// Black to move, checkmated.
	pos, err := position.FromFEN("7k/5KQ1/8/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)

	s := NewSession(tt.New(1))
	result := runToCompletion(t, s, pos, Limits{Depth: 1})

	assert.Equal(t, MoveNone, result.BestMove)
}

func TestDepthLimitedSearchTerminates(t *testing.T) {
	pos := position.New()
	s := NewSession(tt.New(1))
	result := runToCompletion(t, s, pos, Limits{Depth: 2})
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.GreaterOrEqual(t, result.Depth, 1)
}
