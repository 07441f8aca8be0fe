package engine

import (
	"fmt"
	"strings"
)

// Move is one executed ply.
type Move struct {
	Piece    Piece  `json:"piece"`
	From     Pos    `json:"from"`
	To       Pos    `json:"to"`
	Captured Square `json:"-"`
}

func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// Notation renders the move: "e4" or "exd5" for pawns, "Nf3" or "Nxf3"
// for pieces.
func (m Move) Notation() string {
	if m.Piece.Kind == Pawn {
		if m.IsCapture() {
			return m.From.String()[:1] + "x" + m.To.String()
		}
		return m.To.String()
	}
	if m.IsCapture() {
		return m.Piece.Kind.Letter() + "x" + m.To.String()
	}
	return m.Piece.Kind.Letter() + m.To.String()
}

func (m Move) String() string {
	return m.Notation()
}

// MoveList renders a history as a numbered list, e.g. "1. e4 e5 2. Nf3".
func MoveList(history []string) string {
	var sb strings.Builder
	for i, n := range history {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(n)
	}
	return sb.String()
}

// MovePairs splits a history into numbered White/Black pairs for display.
// The Black entry of the last pair is empty while Black has yet to move.
func MovePairs(history []string) [][2]string {
	pairs := make([][2]string, 0, (len(history)+1)/2)
	for i := 0; i < len(history); i += 2 {
		var pair [2]string
		pair[0] = history[i]
		if i+1 < len(history) {
			pair[1] = history[i+1]
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
