package types

import "strconv"

// Value is a centipawn score from the perspective of the side to move
// unless documented otherwise.
type Value int32

const (
	// ValueZero is a drawn / neutral score.
	ValueZero Value = 0

	// ValueInfinite bounds alpha-beta windows; never stored in the TT.
	ValueInfinite Value = 32000

	// ValueMate is the score of an immediate checkmate at ply 0. Scores
	// closer to zero than this (but further than MateThreshold) denote
	// a forced mate in some number of plies, following the usual
	// "distance to mate" convention: store as ValueMate - ply.
	ValueMate Value = 30000

	// MateThreshold marks the boundary: any |v| greater than this is a
	// mate score and needs ply-adjustment when entering/leaving the TT.
	MateThreshold Value = ValueMate - 1024

	// ValueNone marks "no score computed", distinct from any legal value.
	ValueNone Value = -ValueInfinite - 1
)

// IsMateScore reports whether v represents a forced mate (for or
// against the side to move).
func (v Value) IsMateScore() bool {
	return v > MateThreshold || v < -MateThreshold
}

// MateIn returns the number of full moves to mate if v is a mate
// score in favor of the side to move, or 0 otherwise. Used only for
// UCI "score mate N" formatting.
func (v Value) MateIn() int {
	if v > MateThreshold {
		plies := int(ValueMate - v)
		return (plies + 1) / 2
	}
	if v < -MateThreshold {
		plies := int(ValueMate + v)
		return -(plies + 1) / 2
	}
	return 0
}

// String renders v the way UCI "info score" wants it: either
// "cp <centipawns>" or "mate <moves>".
func (v Value) String() string {
	if v.IsMateScore() {
		return "mate " + strconv.Itoa(v.MateIn())
	}
	return "cp " + strconv.Itoa(int(v))
}

// Score is a tapered (midgame, endgame) centipawn pair accumulated by
// the evaluator before being blended by game phase into a single Value.
type Score struct {
	Mid int32
	End int32
}

// Add accumulates another score in place.
func (s *Score) Add(o Score) {
	s.Mid += o.Mid
	s.End += o.End
}

// Sub subtracts another score in place.
func (s *Score) Sub(o Score) {
	s.Mid -= o.Mid
	s.End -= o.End
}

// MakeScore builds a Score from separate midgame/endgame components.
func MakeScore(mid, end int32) Score {
	return Score{Mid: mid, End: end}
}

// GamePhaseMax is the non-pawn material phase value of the starting
// position (4 knights/bishops + 4 rooks + 2 queens weighted below),
// used to normalize the phase factor to [0, GamePhaseMax].
const GamePhaseMax = 24

var phaseWeight = [PieceTypeLength]int32{
	Pawn:   0,
	Knight: 1,
	Bishop: 1,
	Rook:   2,
	Queen:  4,
}

// PhaseWeight returns the game-phase contribution of one piece of the
// given type, used to compute how "endgame-like" a position is.
func PhaseWeight(pt PieceType) int32 {
	return phaseWeight[pt]
}

// Taper blends a Score's midgame and endgame components by phase,
// where phase is clamped to [0, GamePhaseMax] and GamePhaseMax means
// "full midgame material still on the board".
func (s Score) Taper(phase int32) Value {
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	if phase < 0 {
		phase = 0
	}
	return Value((s.Mid*phase + s.End*(GamePhaseMax-phase)) / GamePhaseMax)
}
