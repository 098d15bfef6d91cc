// Package chess implements the board representation and move legality
// rules used by the chess match engine. It is persistence-free: callers
// serialize State to and from the game record.
package chess

import (
	"fmt"
	"strings"
)

// Color of a side or piece.
type Color byte

const (
	White Color = 'w'
	Black Color = 'b'
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceType in uppercase letters, pawn included.
type PieceType byte

const (
	Pawn   PieceType = 'P'
	Knight PieceType = 'N'
	Bishop PieceType = 'B'
	Rook   PieceType = 'R'
	Queen  PieceType = 'Q'
	King   PieceType = 'K'
)

// Piece is a typed, colored occupant of a square. The zero value is an
// empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// Empty reports whether the piece slot holds nothing.
func (p Piece) Empty() bool { return p.Type == 0 }

// rune encodes the piece for serialization: uppercase white, lowercase
// black, '.' empty.
func (p Piece) rune() byte {
	if p.Empty() {
		return '.'
	}
	if p.Color == White {
		return byte(p.Type)
	}
	return byte(p.Type) + ('a' - 'A')
}

// Square addresses a board cell. Rank 0 is white's back rank (row "1"),
// file 0 is the "a" file.
type Square struct {
	File int
	Rank int
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

// String renders algebraic form, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

// ParseSquare parses algebraic form ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	sq := Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	return sq, nil
}

// Board is the 8x8 grid, indexed [rank][file].
type Board [8][8]Piece

// At returns the piece on a square.
func (b *Board) At(s Square) Piece { return b[s.Rank][s.File] }

// set places a piece on a square.
func (b *Board) set(s Square, p Piece) { b[s.Rank][s.File] = p }

// Serialize flattens the board into the 64-char storage form, rank 8
// first so the string reads like a diagram.
func (b *Board) Serialize() string {
	var sb strings.Builder
	sb.Grow(64)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteByte(b[rank][file].rune())
		}
	}
	return sb.String()
}

// ParseBoard reads the 64-char storage form back into a Board.
func ParseBoard(s string) (*Board, error) {
	if len(s) != 64 {
		return nil, fmt.Errorf("board serialization must be 64 chars, got %d", len(s))
	}
	var b Board
	for i := 0; i < 64; i++ {
		c := s[i]
		rank := 7 - i/8
		file := i % 8
		if c == '.' {
			continue
		}
		piece := Piece{Color: White, Type: PieceType(c)}
		if c >= 'a' && c <= 'z' {
			piece.Color = Black
			piece.Type = PieceType(c - ('a' - 'A'))
		}
		switch piece.Type {
		case Pawn, Knight, Bishop, Rook, Queen, King:
		default:
			return nil, fmt.Errorf("invalid piece %q at index %d", c, i)
		}
		b[rank][file] = piece
	}
	return &b, nil
}

// InitialBoard returns the standard starting position.
func InitialBoard() *Board {
	var b Board
	back := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b[0][file] = Piece{Type: back[file], Color: White}
		b[1][file] = Piece{Type: Pawn, Color: White}
		b[6][file] = Piece{Type: Pawn, Color: Black}
		b[7][file] = Piece{Type: back[file], Color: Black}
	}
	return &b
}

// findKing locates the king of a color. Boards without a king are
// invalid; the zero square is returned only for corrupt state.
func (b *Board) findKing(c Color) Square {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b[rank][file]
			if p.Type == King && p.Color == c {
				return Square{File: file, Rank: rank}
			}
		}
	}
	return Square{File: -1, Rank: -1}
}
