package evaluator

import (
	"testing"

	"github.com/mkvoss/gochess/internal/position"
	. "github.com/mkvoss/gochess/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	pos := position.New()
	assert.Equal(t, ValueZero, Evaluate(pos))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	// White is missing its queen; the side to move (White) should
	// show a large material deficit.
	pos, err := position.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Less(t, Evaluate(pos), ValueZero)
}
