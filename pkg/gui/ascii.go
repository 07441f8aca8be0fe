package gui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/qnkhuat/uchess/pkg/engine"
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiRed, color.Bold)
	selected   = color.New(color.BgYellow, color.FgBlack)
	target     = color.New(color.BgGreen, color.FgBlack)
	checked    = color.New(color.BgRed, color.FgWhite)
	label      = color.New(color.FgHiBlack)
)

// DrawASCII writes the board as text using the piece codes, one rank per
// line, followed by the status and the move list. Highlights are colored
// unless color output is disabled (color.NoColor).
func DrawASCII(w io.Writer, s engine.Snapshot) {
	for r := 0; r < numrows; r++ {
		label.Fprintf(w, "%d ", engine.NumRanks-r)
		for f := 0; f < numcols; f++ {
			pos := engine.Pos{File: f, Rank: r}
			fmt.Fprint(w, asciiSquare(s, pos))
			if f < numcols-1 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
	label.Fprintln(w, "  a  b  c  d  e  f  g  h")
	fmt.Fprintln(w, s.Status())
	if moves := engine.MoveList(s.History); moves != "" {
		fmt.Fprintln(w, moves)
	}
}

func asciiSquare(s engine.Snapshot, pos engine.Pos) string {
	code := s.Square(pos)
	if code == "--" && s.IsLegalTarget(pos) {
		code = "::"
	}
	switch {
	case s.IsCheckedKing(pos):
		return checked.Sprint(code)
	case s.IsSelected(pos):
		return selected.Sprint(code)
	case s.IsLegalTarget(pos):
		return target.Sprint(code)
	case code[0] == 'w':
		return whitePiece.Sprint(code)
	case code[0] == 'b':
		return blackPiece.Sprint(code)
	default:
		return code
	}
}
