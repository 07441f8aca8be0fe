package engine

import "fmt"

// FindKing returns the square of c's king.
func FindKing(b *Board, c Color) (Pos, bool) {
	king := Piece{Color: c, Kind: King}
	for r := 0; r < NumRanks; r++ {
		for f := 0; f < NumFiles; f++ {
			if p, ok := b.grid[r][f].Piece(); ok && p == king {
				return Pos{File: f, Rank: r}, true
			}
		}
	}
	return Pos{}, false
}

// IsAttacked reports whether any piece of color by covers target.
func IsAttacked(b *Board, target Pos, by Color) bool {
	attacked := false
	b.Each(func(from Pos, p Piece) {
		if attacked || p.Color != by {
			return
		}
		for _, sq := range RawAttacks(b, from) {
			if sq == target {
				attacked = true
				return
			}
		}
	})
	return attacked
}

// IsInCheck reports whether c's king is covered by an opposing piece. It
// does not modify b. A board without c's king is an engine bug and panics.
func IsInCheck(b *Board, c Color) bool {
	king, ok := FindKing(b, c)
	if !ok {
		panic(fmt.Errorf("%w: %s king missing from %s", ErrNoKing, c, b.Placement()))
	}
	return IsAttacked(b, king, c.Other())
}
