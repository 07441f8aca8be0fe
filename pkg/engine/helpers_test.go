package engine

import (
	"math/rand"
	"sort"
	"testing"
)

// boardOf builds a board from square name -> piece code.
func boardOf(t *testing.T, pieces map[string]string) Board {
	t.Helper()
	b := EmptyBoard()
	for sq, code := range pieces {
		pos, err := ParsePos(sq)
		if err != nil {
			t.Fatalf("bad square %q: %v", sq, err)
		}
		p, err := ParsePiece(code)
		if err != nil {
			t.Fatalf("bad piece %q: %v", code, err)
		}
		b.Place(pos, p)
	}
	return b
}

func squareNames(ps []Pos) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	sort.Strings(names)
	return names
}

func sameSquares(got []Pos, want ...string) bool {
	g := squareNames(got)
	w := append([]string(nil), want...)
	sort.Strings(w)
	if len(g) != len(w) {
		return false
	}
	for i := range g {
		if g[i] != w[i] {
			return false
		}
	}
	return true
}

type ply struct {
	from, to Pos
}

// allLegal lists every legal move of the side to move.
func allLegal(g *Game) []ply {
	var plies []ply
	b := g.Board()
	b.Each(func(from Pos, p Piece) {
		if p.Color != g.Turn() {
			return
		}
		for _, to := range LegalMoves(&b, from) {
			plies = append(plies, ply{from, to})
		}
	})
	return plies
}

// playRandom plays up to n random legal plies, calling fn before each one.
// It stops early when the game ends or fn returns false.
func playRandom(t *testing.T, rng *rand.Rand, g *Game, n int, fn func(g *Game) bool) {
	t.Helper()
	for i := 0; i < n && !g.IsOver(); i++ {
		if fn != nil && !fn(g) {
			return
		}
		plies := allLegal(g)
		if len(plies) == 0 {
			return
		}
		pick := plies[rng.Intn(len(plies))]
		if !g.Execute(pick.from, pick.to) {
			t.Fatalf("legal move %s%s rejected at %s", pick.from, pick.to, g.board.Placement())
		}
	}
}
