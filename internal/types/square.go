package types

import "fmt"

// Square is a board square numbered 0 (a1) to 63 (h8): file = sq % 8,
// rank = sq / 8.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// File is the column of a square, a (0) to h (7).
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is the row of a square, 1 (0) to 8 (7).
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// SquareOf builds a Square from a file and a rank.
func SquareOf(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// String returns the algebraic name of sq, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.FileOf()), '1'+byte(sq.RankOf()))
}

// SquareFromString parses an algebraic square name such as "e4".
// Returns SqNone if s is not a valid square.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), Rank(r-'1'))
}
