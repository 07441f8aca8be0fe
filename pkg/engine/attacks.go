package engine

type offset struct {
	df, dr int
}

var (
	knightOffsets = []offset{{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}
	kingOffsets   = []offset{{0, 1}, {0, -1}, {-1, 0}, {1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs  = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs     = append(append([]offset{}, diagonalDirs...), straightDirs...)
)

// pawnDir is the row delta of a pawn step. White moves towards row 0.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func pawnHomeRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// PseudoLegalMoves returns the squares the piece on from could move to or
// capture on, without regard to its own king. An empty square yields nil.
func PseudoLegalMoves(b *Board, from Pos) []Pos {
	p, ok := b.Get(from).Piece()
	if !ok {
		return nil
	}
	switch p.Kind {
	case Pawn:
		return pawnMoves(b, from, p.Color)
	case Knight:
		return stepTargets(b, from, p.Color, knightOffsets)
	case Bishop:
		return rayTargets(b, from, p.Color, diagonalDirs)
	case Rook:
		return rayTargets(b, from, p.Color, straightDirs)
	case Queen:
		return rayTargets(b, from, p.Color, queenDirs)
	case King:
		return stepTargets(b, from, p.Color, kingOffsets)
	}
	return nil
}

// RawAttacks returns every square the piece on from covers, whatever stands
// there. Pawns cover both forward diagonals; sliders stop at the first
// occupied square and include it. Turn order plays no part.
func RawAttacks(b *Board, from Pos) []Pos {
	p, ok := b.Get(from).Piece()
	if !ok {
		return nil
	}
	switch p.Kind {
	case Pawn:
		dir := pawnDir(p.Color)
		return inBounds(from.add(-1, dir), from.add(1, dir))
	case Knight:
		return coverage(from, knightOffsets)
	case Bishop:
		return rays(b, from, diagonalDirs)
	case Rook:
		return rays(b, from, straightDirs)
	case Queen:
		return rays(b, from, queenDirs)
	case King:
		return coverage(from, kingOffsets)
	}
	return nil
}

func pawnMoves(b *Board, from Pos, c Color) []Pos {
	var moves []Pos
	dir := pawnDir(c)

	one := from.add(0, dir)
	if one.InBounds() && b.Get(one).IsEmpty() {
		moves = append(moves, one)
		two := from.add(0, 2*dir)
		if from.Rank == pawnHomeRank(c) && b.Get(two).IsEmpty() {
			moves = append(moves, two)
		}
	}

	for _, df := range []int{-1, 1} {
		target := from.add(df, dir)
		if !target.InBounds() {
			continue
		}
		if q, ok := b.Get(target).Piece(); ok && q.Color != c {
			moves = append(moves, target)
		}
	}
	return moves
}

func stepTargets(b *Board, from Pos, c Color, offsets []offset) []Pos {
	var moves []Pos
	for _, o := range offsets {
		target := from.add(o.df, o.dr)
		if !target.InBounds() {
			continue
		}
		if q, ok := b.Get(target).Piece(); ok && q.Color == c {
			continue
		}
		moves = append(moves, target)
	}
	return moves
}

func rayTargets(b *Board, from Pos, c Color, dirs []offset) []Pos {
	var moves []Pos
	for _, d := range dirs {
		for target := from.add(d.df, d.dr); target.InBounds(); target = target.add(d.df, d.dr) {
			q, ok := b.Get(target).Piece()
			if !ok {
				moves = append(moves, target)
				continue
			}
			if q.Color != c {
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

func coverage(from Pos, offsets []offset) []Pos {
	var out []Pos
	for _, o := range offsets {
		if target := from.add(o.df, o.dr); target.InBounds() {
			out = append(out, target)
		}
	}
	return out
}

func rays(b *Board, from Pos, dirs []offset) []Pos {
	var out []Pos
	for _, d := range dirs {
		for target := from.add(d.df, d.dr); target.InBounds(); target = target.add(d.df, d.dr) {
			out = append(out, target)
			if !b.Get(target).IsEmpty() {
				break
			}
		}
	}
	return out
}

func inBounds(candidates ...Pos) []Pos {
	var out []Pos
	for _, p := range candidates {
		if p.InBounds() {
			out = append(out, p)
		}
	}
	return out
}
