package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// drive runs Think until the current search finishes, simulating the
// host's think-pump without needing an actual stdin loop.
func drive(t *testing.T, h *Handler) string {
	t.Helper()
	var out strings.Builder
	for i := 0; h.Searching() && i < 1_000_000; i++ {
		out.WriteString(h.Think())
	}
	assert.False(t, h.Searching(), "search did not finish within the iteration budget")
	return out.String()
}

func TestPositionStartposThenD(t *testing.T) {
	h := NewHandler()
	h.HandleLine("position startpos")
	out := h.HandleLine("d")
	assert.Contains(t, out, "Fen: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
}

func TestPositionWithMovesThenD(t *testing.T) {
	h := NewHandler()
	h.HandleLine("position startpos moves e2e4")
	out := h.HandleLine("d")
	assert.Contains(t, out, "Fen: rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3")
}

func TestGoPerft1AfterE4(t *testing.T) {
	h := NewHandler()
	h.HandleLine("position startpos moves e2e4")
	out := h.HandleLine("go perft 1")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 20 move lines + 1 blank + 1 total line.
	assert.Len(t, lines, 22)
	assert.Equal(t, "Nodes searched: 20", lines[len(lines)-1])
}

func TestSingleLegalMoveIsPlayed(t *testing.T) {
	// Black king h8 has exactly one legal reply, Kh7: g8 and g7 are
	// both controlled by the white king on f7.
	h := NewHandler()
	h.HandleLine("position fen 7k/5K2/8/8/8/8/8/8 b - - 0 1")
	h.HandleLine("go depth 1")
	out := drive(t, h)
	assert.Contains(t, out, "bestmove h8h7")
}

func TestCheckmatedSideReportsNoBestMove(t *testing.T) {
	h := NewHandler()
	h.HandleLine("position fen 7k/5KQ1/8/8/8/8/8/8 b - - 0 1")
	h.HandleLine("go depth 1")
	out := drive(t, h)
	assert.Contains(t, out, "bestmove (none)")
}

func TestStopProducesBestMove(t *testing.T) {
	h := NewHandler()
	h.HandleLine("position startpos")
	h.HandleLine("go infinite")
	assert.True(t, h.Searching())
	_ = h.Think()
	out := h.HandleLine("stop")
	assert.Contains(t, out, "bestmove")
	assert.False(t, h.Searching())
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	h := NewHandler()
	out := h.HandleLine("notacommand foo bar")
	assert.Equal(t, "", out)
}

func TestQuitSetsQuitFlag(t *testing.T) {
	h := NewHandler()
	assert.False(t, h.Quit())
	h.HandleLine("quit")
	assert.True(t, h.Quit())
}
