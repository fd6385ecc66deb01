package movegen

import (
	"github.com/mkvoss/gochess/internal/position"
	. "github.com/mkvoss/gochess/internal/types"
)

// Perft counts the leaf nodes of the legal-move tree rooted at pos to
// the given depth. Perft(pos, 0) == 1 by definition.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range GenerateLegal(pos) {
		undo := pos.DoMove(m)
		nodes += Perft(pos, depth-1)
		pos.UndoMove(m, undo)
	}
	return nodes
}

// PerftDivideEntry is one root move's contribution to a divided perft.
type PerftDivideEntry struct {
	Move  Move
	Nodes uint64
}

// PerftDivide returns, for each legal root move, the perft count of
// the subtree after that move - used by `go perft N` and by tests to
// localize a move-generator bug to a specific root move.
func PerftDivide(pos *position.Position, depth int) []PerftDivideEntry {
	moves := GenerateLegal(pos)
	entries := make([]PerftDivideEntry, 0, len(moves))
	for _, m := range moves {
		undo := pos.DoMove(m)
		var nodes uint64
		if depth > 1 {
			nodes = Perft(pos, depth-1)
		} else {
			nodes = 1
		}
		pos.UndoMove(m, undo)
		entries = append(entries, PerftDivideEntry{Move: m, Nodes: nodes})
	}
	return entries
}

// TotalNodes sums every entry's node count.
func TotalNodes(entries []PerftDivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
