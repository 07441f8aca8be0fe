package engine

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	NumFiles = 8
	NumRanks = 8
)

// Pos is a grid coordinate. Rank is the grid row: row 0 is the eighth rank,
// so (0, 0) is a8 and (7, 7) is h1.
type Pos struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (p Pos) InBounds() bool {
	return p.File >= 0 && p.File < NumFiles && p.Rank >= 0 && p.Rank < NumRanks
}

func (p Pos) add(df, dr int) Pos {
	return Pos{File: p.File + df, Rank: p.Rank + dr}
}

// String returns the algebraic square name, e.g. "e2".
func (p Pos) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return string(rune('a'+p.File)) + strconv.Itoa(NumRanks-p.Rank)
}

// ParsePos parses an algebraic square name such as "e2".
func ParsePos(s string) (Pos, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Pos{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	p := Pos{File: int(s[0] - 'a'), Rank: NumRanks - int(s[1]-'0')}
	if !p.InBounds() {
		return Pos{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return p, nil
}

// MustPos is ParsePos for square names known to be valid.
func MustPos(s string) Pos {
	p, err := ParsePos(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Square is either empty or holds a single piece. The zero value is empty.
type Square struct {
	piece    Piece
	occupied bool
}

var Empty = Square{}

func Occupied(p Piece) Square {
	return Square{piece: p, occupied: true}
}

func (s Square) IsEmpty() bool {
	return !s.occupied
}

func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}

// Code returns the piece code or "--" for an empty square.
func (s Square) Code() string {
	if !s.occupied {
		return "--"
	}
	return s.piece.Code()
}

// Board is the 8x8 grid, indexed [rank][file]. It has value semantics:
// assigning or copying a Board yields an independent grid.
type Board struct {
	grid [NumRanks][NumFiles]Square
}

var backRank = [NumFiles]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting layout.
func NewBoard() Board {
	var b Board
	for f := 0; f < NumFiles; f++ {
		b.grid[0][f] = Occupied(Piece{Color: Black, Kind: backRank[f]})
		b.grid[1][f] = Occupied(Piece{Color: Black, Kind: Pawn})
		b.grid[6][f] = Occupied(Piece{Color: White, Kind: Pawn})
		b.grid[7][f] = Occupied(Piece{Color: White, Kind: backRank[f]})
	}
	return b
}

func EmptyBoard() Board {
	return Board{}
}

func (b *Board) IsInBounds(pos Pos) bool {
	return pos.InBounds()
}

// Get panics on out of bounds positions.
func (b *Board) Get(pos Pos) Square {
	return b.grid[pos.Rank][pos.File]
}

func (b *Board) Set(pos Pos, sq Square) {
	b.grid[pos.Rank][pos.File] = sq
}

// Place puts a piece on pos.
func (b *Board) Place(pos Pos, p Piece) {
	b.Set(pos, Occupied(p))
}

func (b *Board) Copy() Board {
	return *b
}

// move relocates whatever stands on from to to, returning the previous
// occupant of to.
func (b *Board) move(from, to Pos) Square {
	captured := b.Get(to)
	b.Set(to, b.Get(from))
	b.Set(from, Empty)
	return captured
}

// Each calls fn for every occupied square, row by row from a8.
func (b *Board) Each(fn func(pos Pos, p Piece)) {
	for r := 0; r < NumRanks; r++ {
		for f := 0; f < NumFiles; f++ {
			if p, ok := b.grid[r][f].Piece(); ok {
				fn(Pos{File: f, Rank: r}, p)
			}
		}
	}
}

// Count returns how many copies of p are on the board.
func (b *Board) Count(p Piece) int {
	n := 0
	b.Each(func(_ Pos, q Piece) {
		if q == p {
			n++
		}
	})
	return n
}

// Placement renders the piece placement field of a FEN record.
func (b *Board) Placement() string {
	var sb strings.Builder
	for r := 0; r < NumRanks; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < NumFiles; f++ {
			p, ok := b.grid[r][f].Piece()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.FEN())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}

// Codes returns the grid as piece codes, "--" for empty squares.
func (b *Board) Codes() [NumRanks][NumFiles]string {
	var out [NumRanks][NumFiles]string
	for r := 0; r < NumRanks; r++ {
		for f := 0; f < NumFiles; f++ {
			out[r][f] = b.grid[r][f].Code()
		}
	}
	return out
}

// BoardFromCodes is the inverse of Codes.
func BoardFromCodes(codes [NumRanks][NumFiles]string) (Board, error) {
	var b Board
	for r := 0; r < NumRanks; r++ {
		for f := 0; f < NumFiles; f++ {
			if codes[r][f] == "--" || codes[r][f] == "" {
				continue
			}
			p, err := ParsePiece(codes[r][f])
			if err != nil {
				return Board{}, err
			}
			b.grid[r][f] = Occupied(p)
		}
	}
	return b, nil
}
