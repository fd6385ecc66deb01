package position

import (
	. "github.com/mkvoss/gochess/internal/types"
)

// Zobrist keys are generated once from a fixed-seed PRNG rather than
// crypto/rand so that a built engine is reproducible across runs and
// platforms - required for the search-determinism property (spec
// invariant 5: same depth, same seed, same best move and node count).
type splitMix64 struct{ state uint64 }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

var (
	zobristPiece [12][64]uint64 // indexed by Piece, Square
	zobristSide  uint64
	zobristCastle [16]uint64 // indexed by the 4-bit castling rights mask
	zobristEpFile [8]uint64
)

func init() {
	rng := splitMix64{state: 0x9E3779B97F4A7C15}
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rng.next()
		}
	}
	zobristSide = rng.next()
	for f := 0; f < 8; f++ {
		zobristEpFile[f] = rng.next()
	}
	// Each of the 4 castling-right bits gets its own independent key;
	// zobristCastle[mask] is their XOR so callers can toggle one right
	// at a time with a single table lookup.
	var bitKey [4]uint64
	for i := range bitKey {
		bitKey[i] = rng.next()
	}
	for mask := 0; mask < 16; mask++ {
		var k uint64
		for i := 0; i < 4; i++ {
			if mask&(1<<uint(i)) != 0 {
				k ^= bitKey[i]
			}
		}
		zobristCastle[mask] = k
	}
}

func pieceKey(p Piece, sq Square) uint64 {
	return zobristPiece[p][sq]
}

// castleKeyDelta returns the XOR needed to move the castling-rights
// contribution of the hash from 'from' to 'to'.
func castleKeyDelta(from, to uint8) uint64 {
	return zobristCastle[from] ^ zobristCastle[to]
}

func epFileKey(sq Square) uint64 {
	return zobristEpFile[sq.FileOf()]
}

// ComputeHash recomputes the Zobrist hash of pos from scratch. Used by
// FromFEN and by tests to cross-check the incrementally maintained
// Position.Hash (invariant 2: incremental update matches recomputation).
func (pos *Position) ComputeHash() uint64 {
	var h uint64
	for sq := SqA1; sq <= SqH8; sq++ {
		p := pos.board[sq]
		if p.IsValid() {
			h ^= pieceKey(p, sq)
		}
	}
	if pos.SideToMove == Black {
		h ^= zobristSide
	}
	h ^= zobristCastle[pos.CastlingRights]
	if pos.EPSquare != SqNone {
		h ^= epFileKey(pos.EPSquare)
	}
	return h
}
