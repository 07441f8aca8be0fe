package engine

// LegalMoves filters the pseudo-legal targets of the piece on from down to
// those that do not leave its own king in check. Each candidate is tried on
// a scratch copy, so b is never modified. Order follows PseudoLegalMoves.
func LegalMoves(b *Board, from Pos) []Pos {
	p, ok := b.Get(from).Piece()
	if !ok {
		return nil
	}
	var legal []Pos
	for _, to := range PseudoLegalMoves(b, from) {
		if leavesKingSafe(b, p.Color, from, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// IsLegal reports whether moving the piece on from to to is legal.
func IsLegal(b *Board, from, to Pos) bool {
	if !from.InBounds() || !to.InBounds() {
		return false
	}
	for _, sq := range LegalMoves(b, from) {
		if sq == to {
			return true
		}
	}
	return false
}

// HasLegalMove reports whether any piece of color c can move.
func HasLegalMove(b *Board, c Color) bool {
	found := false
	b.Each(func(from Pos, p Piece) {
		if found || p.Color != c {
			return
		}
		found = len(LegalMoves(b, from)) > 0
	})
	return found
}

func leavesKingSafe(b *Board, c Color, from, to Pos) bool {
	scratch := b.Copy()
	scratch.move(from, to)
	return !IsInCheck(&scratch, c)
}
