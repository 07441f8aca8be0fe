package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/uchess/pkg/engine"
	"github.com/rivo/tview"
)

const (
	numrows = engine.NumRanks
	numcols = engine.NumFiles
	// moveRows is how many move pairs the move box shows at once
	moveRows = 10
)

var glyphs = map[string]string{
	"wk": "♔", "wq": "♕", "wr": "♖", "wb": "♗", "wn": "♘", "wp": "♙",
	"bk": "♚", "bq": "♛", "br": "♜", "bb": "♝", "bn": "♞", "bp": "♟",
}

// Glyph returns the unicode chess symbol for a piece code, or a blank for
// an empty square
func Glyph(code string) string {
	if g, ok := glyphs[code]; ok {
		return g
	}
	return " "
}

// CellToPos maps a table cell to a board square. Column 0 holds the rank
// labels and row 8 the file labels. flip shows the board from Black's side.
func CellToPos(row, col int, flip bool) (engine.Pos, bool) {
	if row < 0 || row >= numrows || col < 1 || col > numcols {
		return engine.Pos{}, false
	}
	pos := engine.Pos{File: col - 1, Rank: row}
	if flip {
		pos = engine.Pos{File: numcols - col, Rank: numrows - 1 - row}
	}
	return pos, true
}

// PosToCell is the inverse of CellToPos
func PosToCell(pos engine.Pos, flip bool) (row, col int) {
	if flip {
		return numrows - 1 - pos.Rank, numcols - pos.File
	}
	return pos.Rank, pos.File + 1
}

// SquareBg returns the theme's color for a square given the game state.
// Check beats selection, which beats a legal target
func SquareBg(s engine.Snapshot, pos engine.Pos, t Theme) tcell.Color {
	switch {
	case s.IsCheckedKing(pos):
		return t.SquareCheck
	case s.IsSelected(pos):
		return t.SquareSelected
	case s.IsLegalTarget(pos):
		return t.SquareTarget
	case (pos.File+pos.Rank)%2 == 0:
		return t.SquareLight
	default:
		return t.SquareDark
	}
}

func pieceFg(code string, t Theme) tcell.Color {
	if strings.HasPrefix(code, "b") {
		return t.Black
	}
	return t.White
}

// RenderTable draws the board into table
func RenderTable(table *tview.Table, s engine.Snapshot, t Theme, flip bool) {
	for r := 0; r < numrows; r++ {
		rank := engine.NumRanks - r
		if flip {
			rank = r + 1
		}
		table.SetCell(r, 0, tview.NewTableCell(fmt.Sprintf("%d ", rank)).
			SetTextColor(t.Rank).
			SetSelectable(false))

		for c := 1; c <= numcols; c++ {
			pos, _ := CellToPos(r, c, flip)
			code := s.Square(pos)
			table.SetCell(r, c, tview.NewTableCell(" "+Glyph(code)+" ").
				SetAlign(tview.AlignCenter).
				SetTextColor(pieceFg(code, t)).
				SetBackgroundColor(SquareBg(s, pos, t)))
		}
	}

	// Draw files
	table.SetCell(numrows, 0, tview.NewTableCell("").SetSelectable(false))
	for c := 1; c <= numcols; c++ {
		file := c - 1
		if flip {
			file = numcols - c
		}
		table.SetCell(numrows, c, tview.NewTableCell(string(rune('a'+file))).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.File).
			SetSelectable(false))
	}
}

// FormatMoves renders the most recent move pairs, one per line
func FormatMoves(history []string) string {
	pairs := engine.MovePairs(history)
	offset := 0
	if len(pairs) > moveRows {
		offset = len(pairs) - moveRows
	}
	var sb strings.Builder
	for i := offset; i < len(pairs); i++ {
		fmt.Fprintf(&sb, "%-4s %-7s %-7s\n", fmt.Sprintf("%d.", i+1), pairs[i][0], pairs[i][1])
	}
	return sb.String()
}

// FormatCaptured lists captured pieces grouped by the side that lost them
func FormatCaptured(captured []string) string {
	var white, black []string
	for _, code := range captured {
		if strings.HasPrefix(code, "w") {
			white = append(white, Glyph(code))
		} else {
			black = append(black, Glyph(code))
		}
	}
	return fmt.Sprintf("White lost: %s\nBlack lost: %s", strings.Join(white, " "), strings.Join(black, " "))
}
