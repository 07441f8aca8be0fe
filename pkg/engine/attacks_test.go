package engine

import "testing"

func TestKnightFromCorner(t *testing.T) {
	b := boardOf(t, map[string]string{"b1": "wn"})
	got := PseudoLegalMoves(&b, MustPos("b1"))
	if !sameSquares(got, "a3", "c3", "d2") {
		t.Errorf("knight b1 moves = %v, want [a3 c3 d2]", squareNames(got))
	}
}

func TestKnightSkipsFriendlyTakesEnemy(t *testing.T) {
	b := boardOf(t, map[string]string{"b1": "wn", "d2": "wp", "c3": "bp"})
	got := PseudoLegalMoves(&b, MustPos("b1"))
	if !sameSquares(got, "a3", "c3") {
		t.Errorf("knight b1 moves = %v, want [a3 c3]", squareNames(got))
	}
}

func TestRookRayStopsAtBlockers(t *testing.T) {
	b := boardOf(t, map[string]string{"a1": "wr", "a4": "wp", "d1": "bn"})
	got := PseudoLegalMoves(&b, MustPos("a1"))
	if !sameSquares(got, "a2", "a3", "b1", "c1", "d1") {
		t.Errorf("rook a1 moves = %v, want [a2 a3 b1 c1 d1]", squareNames(got))
	}
}

func TestSliders(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]string
		from   string
		want   []string
	}{
		{
			name:   "bishop open",
			pieces: map[string]string{"c1": "wb"},
			from:   "c1",
			want:   []string{"b2", "a3", "d2", "e3", "f4", "g5", "h6"},
		},
		{
			name:   "bishop blocked",
			pieces: map[string]string{"c1": "wb", "d2": "wp", "b2": "bp"},
			from:   "c1",
			want:   []string{"b2"},
		},
		{
			name:   "queen center",
			pieces: map[string]string{"d4": "bq", "d6": "bp", "f6": "wp", "b4": "wn"},
			from:   "d4",
			want: []string{
				"d5", "d3", "d2", "d1",
				"e4", "f4", "g4", "h4", "c4", "b4",
				"e5", "f6", "c5", "b6", "a7",
				"e3", "f2", "g1", "c3", "b2", "a1",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.pieces)
			got := PseudoLegalMoves(&b, MustPos(tt.from))
			if !sameSquares(got, tt.want...) {
				t.Errorf("moves from %s = %v, want %v", tt.from, squareNames(got), tt.want)
			}
		})
	}
}

func TestKingSteps(t *testing.T) {
	b := boardOf(t, map[string]string{"e1": "wk", "d1": "wq", "f2": "bp"})
	got := PseudoLegalMoves(&b, MustPos("e1"))
	if !sameSquares(got, "d2", "e2", "f2", "f1") {
		t.Errorf("king e1 moves = %v, want [d2 e2 f1 f2]", squareNames(got))
	}
}

func TestPawnDoubleStepOnlyFromHome(t *testing.T) {
	b := NewBoard()
	for f := 0; f < NumFiles; f++ {
		for _, tt := range []struct {
			rank int
			want []Pos
		}{
			{6, []Pos{{f, 5}, {f, 4}}},
			{1, []Pos{{f, 2}, {f, 3}}},
		} {
			from := Pos{f, tt.rank}
			got := PseudoLegalMoves(&b, from)
			if len(got) != 2 || got[0] != tt.want[0] || got[1] != tt.want[1] {
				t.Errorf("pawn %s moves = %v, want %v", from, got, tt.want)
			}
		}
	}

	moved := boardOf(t, map[string]string{"e3": "wp", "d6": "bp"})
	if got := PseudoLegalMoves(&moved, MustPos("e3")); !sameSquares(got, "e4") {
		t.Errorf("white pawn e3 moves = %v, want [e4]", squareNames(got))
	}
	if got := PseudoLegalMoves(&moved, MustPos("d6")); !sameSquares(got, "d5") {
		t.Errorf("black pawn d6 moves = %v, want [d5]", squareNames(got))
	}
}

func TestPawnBlocked(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]string
		from   string
		want   []string
	}{
		{"blocked on first square", map[string]string{"e2": "wp", "e3": "bn"}, "e2", nil},
		{"blocked on second square", map[string]string{"e2": "wp", "e4": "wn"}, "e2", []string{"e3"}},
		{"black blocked", map[string]string{"c7": "bp", "c6": "wp"}, "c7", nil},
		{"captures enemies only", map[string]string{"e4": "wp", "d5": "bp", "f5": "wp"}, "e4", []string{"e5", "d5"}},
		{"black captures", map[string]string{"c7": "bp", "b6": "wn", "d6": "bn"}, "c7", []string{"c6", "c5", "b6"}},
		{"edge file", map[string]string{"a2": "wp", "b3": "bp"}, "a2", []string{"a3", "a4", "b3"}},
		{"last rank has nowhere to go", map[string]string{"e8": "wp", "d8": "bq"}, "e8", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.pieces)
			got := PseudoLegalMoves(&b, MustPos(tt.from))
			if !sameSquares(got, tt.want...) {
				t.Errorf("pawn %s moves = %v, want %v", tt.from, squareNames(got), tt.want)
			}
		})
	}
}

func TestEmptySquareHasNoMoves(t *testing.T) {
	b := NewBoard()
	if got := PseudoLegalMoves(&b, MustPos("e4")); got != nil {
		t.Errorf("empty e4 moves = %v, want none", got)
	}
	if got := RawAttacks(&b, MustPos("e4")); got != nil {
		t.Errorf("empty e4 attacks = %v, want none", got)
	}
}

func TestRawAttacks(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]string
		from   string
		want   []string
	}{
		{"pawn covers empty diagonals", map[string]string{"e4": "wp"}, "e4", []string{"d5", "f5"}},
		{"pawn covers friendly squares", map[string]string{"e4": "wp", "d5": "wn"}, "e4", []string{"d5", "f5"}},
		{"black pawn on edge", map[string]string{"a7": "bp"}, "a7", []string{"b6"}},
		{"knight covers friends", map[string]string{"b1": "wn", "d2": "wp"}, "b1", []string{"a3", "c3", "d2"}},
		{"king", map[string]string{"h8": "bk", "g8": "br"}, "h8", []string{"g8", "g7", "h7"}},
		{"rook includes first blocker", map[string]string{"a1": "wr", "a3": "wp", "c1": "bn"}, "a1", []string{"a2", "a3", "b1", "c1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.pieces)
			got := RawAttacks(&b, MustPos(tt.from))
			if !sameSquares(got, tt.want...) {
				t.Errorf("attacks from %s = %v, want %v", tt.from, squareNames(got), tt.want)
			}
		})
	}
}
