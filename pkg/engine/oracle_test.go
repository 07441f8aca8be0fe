package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/notnil/chess"
)

// oracleMoves lists the moves notnil/chess allows in the same position with
// castling rights and the en passant square cleared. Promotions collapse to a
// single from-to pair.
func oracleMoves(t *testing.T, g *Game) []string {
	t.Helper()
	b := g.Board()
	side := "w"
	if g.Turn() == Black {
		side = "b"
	}
	fen, err := chess.FEN(b.Placement() + " " + side + " - - 0 1")
	if err != nil {
		t.Fatalf("oracle rejected %s: %v", b.Placement(), err)
	}
	seen := make(map[string]bool)
	var out []string
	for _, m := range chess.NewGame(fen).ValidMoves() {
		key := m.S1().String() + m.S2().String()
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

var oracleKinds = map[chess.PieceType]Kind{
	chess.Pawn:   Pawn,
	chess.Knight: Knight,
	chess.Bishop: Bishop,
	chess.Rook:   Rook,
	chess.Queen:  Queen,
	chess.King:   King,
}

func fromOracle(pos *chess.Position) (*Game, error) {
	b := EmptyBoard()
	for sq, p := range pos.Board().SquareMap() {
		c := White
		if p.Color() == chess.Black {
			c = Black
		}
		b.Place(Pos{File: int(sq.File()), Rank: NumRanks - 1 - int(sq.Rank())}, Piece{Color: c, Kind: oracleKinds[p.Type()]})
	}
	turn := White
	if pos.Turn() == chess.Black {
		turn = Black
	}
	return NewGameFromBoard(b, turn)
}

func engineMoves(g *Game) []string {
	var out []string
	for _, p := range allLegal(g) {
		out = append(out, p.from.String()+p.to.String())
	}
	sort.Strings(out)
	return out
}

func pawnOnLastRank(g *Game) bool {
	b := g.Board()
	for f := 0; f < NumFiles; f++ {
		for _, r := range []int{0, NumRanks - 1} {
			if p, ok := b.Get(Pos{f, r}).Piece(); ok && p.Kind == Pawn {
				return true
			}
		}
	}
	return false
}

func TestLegalMovesMatchOracle(t *testing.T) {
	positions := 0
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewGame()
		playRandom(t, rng, g, 150, func(g *Game) bool {
			// Without promotion the engine keeps pawns on the last rank,
			// which the oracle cannot represent.
			if pawnOnLastRank(g) {
				return false
			}
			positions++
			got, want := engineMoves(g), oracleMoves(t, g)
			b := g.Board()
			if len(got) != len(want) {
				t.Fatalf("seed %d at %s: engine %v, oracle %v", seed, b.Placement(), got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("seed %d at %s: engine %v, oracle %v", seed, b.Placement(), got, want)
				}
			}
			return true
		})
	}
	if positions < 100 {
		t.Errorf("only %d positions compared", positions)
	}
}

func TestCheckmateMatchesOracle(t *testing.T) {
	fens := []string{
		"3k4/3Q4/3K4/8/8/8/8/7R b - - 0 1",
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
		"7k/5K2/6Q1/8/8/8/8/8 b - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1",
	}
	for _, fen := range fens {
		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		ref := chess.NewGame(opt)
		g, err := fromOracle(ref.Position())
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		wantMate := ref.Method() == chess.Checkmate
		if g.IsOver() != wantMate {
			t.Errorf("%s: over = %v, oracle checkmate = %v", fen, g.IsOver(), wantMate)
		}
	}
}
