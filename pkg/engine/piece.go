package engine

import (
	"fmt"
	"strings"
)

type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

type Kind int

const (
	Pawn Kind = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = map[Kind]string{
	Pawn:   "",
	Knight: "N",
	Bishop: "B",
	Rook:   "R",
	Queen:  "Q",
	King:   "K",
}

// Letter is the piece letter used in move notation. Pawns have none.
func (k Kind) Letter() string {
	return kindLetters[k]
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}

type Piece struct {
	Color Color
	Kind  Kind
}

var kindCodes = map[Kind]byte{
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

// Code returns the two letter piece code, e.g. "wp" or "bk".
func (p Piece) Code() string {
	c := byte('w')
	if p.Color == Black {
		c = 'b'
	}
	return string([]byte{c, kindCodes[p.Kind]})
}

// FEN returns the single letter used in FEN piece placement.
func (p Piece) FEN() string {
	letter := string(kindCodes[p.Kind])
	if p.Color == White {
		return strings.ToUpper(letter)
	}
	return letter
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Kind)
}

// ParsePiece parses a two letter piece code.
func ParsePiece(code string) (Piece, error) {
	if len(code) != 2 {
		return Piece{}, fmt.Errorf("%w: %q", ErrBadPiece, code)
	}
	var c Color
	switch code[0] {
	case 'w':
		c = White
	case 'b':
		c = Black
	default:
		return Piece{}, fmt.Errorf("%w: %q", ErrBadPiece, code)
	}
	for k, b := range kindCodes {
		if b == code[1] {
			return Piece{Color: c, Kind: k}, nil
		}
	}
	return Piece{}, fmt.Errorf("%w: %q", ErrBadPiece, code)
}
