package engine

import (
	"math/rand"
	"testing"
)

func TestPinnedPieceCannotLeaveLine(t *testing.T) {
	b := boardOf(t, map[string]string{"e1": "wk", "e2": "wr", "e8": "bq", "a8": "bk"})
	got := LegalMoves(&b, MustPos("e2"))
	if !sameSquares(got, "e3", "e4", "e5", "e6", "e7", "e8") {
		t.Errorf("pinned rook moves = %v, want the e-file up to e8", squareNames(got))
	}
}

func TestKingCannotStepIntoAttack(t *testing.T) {
	b := boardOf(t, map[string]string{"e1": "wk", "d8": "br", "f8": "br", "a8": "bk"})
	got := LegalMoves(&b, MustPos("e1"))
	if !sameSquares(got, "e2") {
		t.Errorf("king moves = %v, want [e2]", squareNames(got))
	}
}

func TestKingCannotCaptureDefendedPiece(t *testing.T) {
	b := boardOf(t, map[string]string{"e1": "wk", "e2": "bq", "e8": "br", "a8": "bk"})
	for _, sq := range LegalMoves(&b, MustPos("e1")) {
		if sq == MustPos("e2") {
			t.Fatal("king allowed to capture defended queen on e2")
		}
	}
}

func TestCheckMustBeAnswered(t *testing.T) {
	b := boardOf(t, map[string]string{"e1": "wk", "a1": "wr", "h3": "wp", "e8": "br", "a8": "bk"})
	if got := LegalMoves(&b, MustPos("a1")); !sameSquares(got) {
		t.Errorf("rook a1 moves while in check = %v, want none", squareNames(got))
	}
	if got := LegalMoves(&b, MustPos("h3")); !sameSquares(got) {
		t.Errorf("pawn h3 moves while in check = %v, want none", squareNames(got))
	}

	blocker := boardOf(t, map[string]string{"e1": "wk", "a4": "wr", "e8": "br", "a8": "bk"})
	if got := LegalMoves(&blocker, MustPos("a4")); !sameSquares(got, "e4") {
		t.Errorf("rook a4 moves = %v, want only the block on e4", squareNames(got))
	}
}

func TestLegalMovesKeepOrder(t *testing.T) {
	b := boardOf(t, map[string]string{"d4": "wq", "e1": "wk", "e8": "bk"})
	pseudo := PseudoLegalMoves(&b, MustPos("d4"))
	legal := LegalMoves(&b, MustPos("d4"))
	i := 0
	for _, p := range pseudo {
		if i < len(legal) && legal[i] == p {
			i++
		}
	}
	if i != len(legal) {
		t.Errorf("legal moves %v are not an ordered subsequence of %v", legal, pseudo)
	}
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := NewGame()
		rng := rand.New(rand.NewSource(seed))
		playRandom(t, rng, g, 120, func(g *Game) bool {
			b := g.Board()
			before := b
			b.Each(func(from Pos, p Piece) {
				for _, to := range LegalMoves(&b, from) {
					scratch := b.Copy()
					scratch.move(from, to)
					if IsInCheck(&scratch, p.Color) {
						t.Errorf("seed %d: %s%s leaves %s in check at %s", seed, from, to, p.Color, b.Placement())
					}
				}
			})
			if b != before {
				t.Fatalf("seed %d: LegalMoves modified the board", seed)
			}
			return true
		})
	}
}
