//
// gochess - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2021-2024 The gochess Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package position holds the board representation: a hybrid of twelve
// piece bitboards plus a mailbox array for O(1) piece-on-square
// lookup, the way the teacher's engine is structured. Position is
// mutated in place by DoMove/UndoMove; nothing here allocates on the
// hot path of search.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkvoss/gochess/internal/attacks"
	. "github.com/mkvoss/gochess/internal/types"
)

// Castling right bits.
const (
	WhiteKingside uint8 = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
	AllCastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// KiwipeteFEN is the well known move-generator torture position.
const KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// Position is the full, mutable game state.
type Position struct {
	pieceBB [12]Bitboard // indexed by Piece (White/Black x Pawn..King)
	colorBB [2]Bitboard  // indexed by Color
	allBB   Bitboard
	board   [64]Piece

	SideToMove     Color
	CastlingRights uint8
	EPSquare       Square
	HalfMoveClock  int
	FullMoveNumber int

	Hash uint64
}

// ParseError reports a malformed FEN or move string.
type ParseError struct {
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Msg, e.Token)
}

// New returns the standard starting position.
func New() *Position {
	pos, err := FromFEN(StartFEN)
	if err != nil {
		// StartFEN is a constant and must always parse.
		panic(err)
	}
	return pos
}

// Clone returns a deep copy of pos. Position contains no pointers so a
// plain dereference-copy suffices; this helper documents the intent at
// call sites (root snapshotting in the search).
func (pos *Position) Clone() *Position {
	cp := *pos
	return &cp
}

// FromFEN parses a FEN string, or the shorthand "startpos", into a new
// Position. It checks the syntax of each field (eight ranks of eight
// files, piece letters, side to move, castling letters, en-passant
// square name, halfmove clock); an unreadable fullmove number becomes 1.
// It does not check piece counts, and does not check that the castling
// rights or the en-passant square agree with the board.
func FromFEN(fen string) (*Position, error) {
	if strings.TrimSpace(fen) == "startpos" {
		fen = StartFEN
	}
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, &ParseError{Token: fen, Msg: "FEN needs at least 4 fields"}
	}
	for len(fields) < 6 {
		fields = append(fields, "0")
	}

	pos := &Position{EPSquare: SqNone}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, &ParseError{Token: fields[0], Msg: "FEN piece placement must have 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			if file > FileH {
				return nil, &ParseError{Token: fields[0], Msg: "FEN rank overflows 8 files"}
			}
			p := PieceFromChar(byte(ch))
			if !p.IsValid() {
				return nil, &ParseError{Token: string(ch), Msg: "invalid FEN piece letter"}
			}
			sq := SquareOf(file, rank)
			pos.putPiece(p, sq)
			file++
		}
		if file != FileH+1 {
			return nil, &ParseError{Token: fields[0], Msg: "FEN rank does not cover 8 files"}
		}
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, &ParseError{Token: fields[1], Msg: "side to move must be 'w' or 'b'"}
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				pos.CastlingRights |= WhiteKingside
			case 'Q':
				pos.CastlingRights |= WhiteQueenside
			case 'k':
				pos.CastlingRights |= BlackKingside
			case 'q':
				pos.CastlingRights |= BlackQueenside
			default:
				return nil, &ParseError{Token: fields[2], Msg: "invalid castling availability"}
			}
		}
	}

	if fields[3] != "-" {
		sq := SquareFromString(fields[3])
		if sq == SqNone {
			return nil, &ParseError{Token: fields[3], Msg: "invalid en-passant target"}
		}
		pos.EPSquare = sq
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, &ParseError{Token: fields[4], Msg: "invalid halfmove clock"}
	}
	pos.HalfMoveClock = halfMove

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		fullMove = 1
	}
	pos.FullMoveNumber = fullMove

	pos.Hash = pos.ComputeHash()
	return pos, nil
}

// ToFEN renders pos as a FEN string.
func (pos *Position) ToFEN() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := pos.board[SquareOf(f, r)]
			if !p.IsValid() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.SideToMove.String())
	sb.WriteByte(' ')
	if pos.CastlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if pos.CastlingRights&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if pos.CastlingRights&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if pos.CastlingRights&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if pos.CastlingRights&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	if pos.EPSquare == SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.EPSquare.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullMoveNumber))
	return sb.String()
}

// PieceOn returns the piece (or PieceNone) occupying sq.
func (pos *Position) PieceOn(sq Square) Piece {
	return pos.board[sq]
}

// PieceBB returns the bitboard of piece p.
func (pos *Position) PieceBB(p Piece) Bitboard {
	return pos.pieceBB[p]
}

// PieceTypeBB returns the combined bitboard of both colors' pieces of
// type pt.
func (pos *Position) PieceTypeBB(pt PieceType) Bitboard {
	return pos.pieceBB[NewPiece(White, pt)] | pos.pieceBB[NewPiece(Black, pt)]
}

// ColorBB returns the occupancy bitboard of color c.
func (pos *Position) ColorBB(c Color) Bitboard {
	return pos.colorBB[c]
}

// Occupied returns the bitboard of all occupied squares.
func (pos *Position) Occupied() Bitboard {
	return pos.allBB
}

// KingSquare returns the square of color c's king.
func (pos *Position) KingSquare(c Color) Square {
	return pos.pieceBB[NewPiece(c, King)].Lsb()
}

// putPiece places p on sq. sq must currently be empty; used only by
// FromFEN and DoMove/UndoMove internals, never by movegen directly.
func (pos *Position) putPiece(p Piece, sq Square) {
	pos.board[sq] = p
	pos.pieceBB[p] = pos.pieceBB[p].Set(sq)
	pos.colorBB[p.ColorOf()] = pos.colorBB[p.ColorOf()].Set(sq)
	pos.allBB = pos.allBB.Set(sq)
}

// removePiece clears sq, which must currently hold a piece.
func (pos *Position) removePiece(sq Square) Piece {
	p := pos.board[sq]
	pos.board[sq] = PieceNone
	pos.pieceBB[p] = pos.pieceBB[p].Clear(sq)
	pos.colorBB[p.ColorOf()] = pos.colorBB[p.ColorOf()].Clear(sq)
	pos.allBB = pos.allBB.Clear(sq)
	return p
}

// movePiece relocates the piece on `from` to `to`, which must be empty.
func (pos *Position) movePiece(from, to Square) Piece {
	p := pos.removePiece(from)
	pos.putPiece(p, to)
	return p
}

// AttacksTo returns the set of byColor's pieces that attack sq on the
// current board.
func (pos *Position) AttacksTo(sq Square, byColor Color) Bitboard {
	occ := pos.allBB
	var attackers Bitboard
	attackers |= attacks.PawnAttacks(byColor.Flip(), sq) & pos.pieceBB[NewPiece(byColor, Pawn)]
	attackers |= attacks.KnightAttacks(sq) & pos.pieceBB[NewPiece(byColor, Knight)]
	attackers |= attacks.KingAttacks(sq) & pos.pieceBB[NewPiece(byColor, King)]
	bishopsQueens := pos.pieceBB[NewPiece(byColor, Bishop)] | pos.pieceBB[NewPiece(byColor, Queen)]
	attackers |= attacks.BishopAttacks(sq, occ) & bishopsQueens
	rooksQueens := pos.pieceBB[NewPiece(byColor, Rook)] | pos.pieceBB[NewPiece(byColor, Queen)]
	attackers |= attacks.RookAttacks(sq, occ) & rooksQueens
	return attackers
}

// IsSquareAttacked reports whether sq is attacked by any piece of
// byColor.
func (pos *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	return pos.AttacksTo(sq, byColor) != BbEmpty
}

// InCheck reports whether color's king is currently attacked.
func (pos *Position) InCheck(color Color) bool {
	king := pos.KingSquare(color)
	if king == SqNone {
		return false
	}
	return pos.IsSquareAttacked(king, color.Flip())
}

// String renders the ASCII board used by the UCI "d" command.
func (pos *Position) String() string {
	var sb strings.Builder
	sb.WriteString("  +---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(fmt.Sprintf("%d ", int(r)+1))
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(pos.board[SquareOf(f, r)].Char())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n  +---+---+---+---+---+---+---+---+\n")
	}
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	return sb.String()
}
