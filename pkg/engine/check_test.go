package engine

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]string
		color  Color
		want   bool
	}{
		{"start position", nil, White, false},
		{"rook on open file", map[string]string{"e1": "wk", "e8": "br", "a8": "bk"}, White, true},
		{"rook blocked", map[string]string{"e1": "wk", "e4": "wp", "e8": "br", "a8": "bk"}, White, false},
		{"black pawn gives check", map[string]string{"e1": "wk", "d2": "bp", "a8": "bk"}, White, true},
		{"pawn straight ahead is no check", map[string]string{"e1": "wk", "e2": "bp", "a8": "bk"}, White, false},
		{"white pawn gives check", map[string]string{"e8": "bk", "f7": "wp", "a1": "wk"}, Black, true},
		{"knight", map[string]string{"e8": "bk", "d6": "wn", "a1": "wk"}, Black, true},
		{"bishop through gap", map[string]string{"e8": "bk", "a4": "wb", "a1": "wk"}, Black, true},
		{"own piece shields", map[string]string{"e8": "bk", "d7": "bp", "a4": "wb", "a1": "wk"}, Black, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			if tt.pieces != nil {
				b = boardOf(t, tt.pieces)
			}
			before := b
			if got := IsInCheck(&b, tt.color); got != tt.want {
				t.Errorf("IsInCheck(%s) = %v, want %v", tt.color, got, tt.want)
			}
			if b != before {
				t.Error("IsInCheck modified the board")
			}
		})
	}
}

func TestIsInCheckWithoutKingPanics(t *testing.T) {
	b := boardOf(t, map[string]string{"e8": "bk", "a1": "wr"})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoKing) {
			t.Fatalf("recovered %v, want ErrNoKing", r)
		}
	}()
	IsInCheck(&b, White)
	t.Fatal("IsInCheck returned without a white king")
}

func TestIsAttacked(t *testing.T) {
	b := boardOf(t, map[string]string{"d4": "wn", "e1": "wk", "e8": "bk"})
	for _, sq := range []string{"c6", "e6", "f5", "f3", "e2", "c2", "b3", "b5"} {
		if !IsAttacked(&b, MustPos(sq), White) {
			t.Errorf("%s not attacked by white knight d4", sq)
		}
	}
	if IsAttacked(&b, MustPos("d5"), White) {
		t.Error("d5 reported attacked")
	}
}

func ExampleIsInCheck() {
	b := EmptyBoard()
	b.Place(MustPos("e1"), Piece{White, King})
	b.Place(MustPos("e8"), Piece{Black, King})
	b.Place(MustPos("e5"), Piece{Black, Rook})
	fmt.Println(IsInCheck(&b, White), IsInCheck(&b, Black))
	// Output: true false
}
