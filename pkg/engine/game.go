package engine

import "fmt"

type SelectResult int

const (
	// Ignored means the board, turn and history are untouched. The clicked
	// square may still become the selection, with no legal targets.
	Ignored SelectResult = iota
	Selected
	Deselected
	Moved
)

func (r SelectResult) String() string {
	switch r {
	case Ignored:
		return "Ignored"
	case Selected:
		return "Selected"
	case Deselected:
		return "Deselected"
	case Moved:
		return "Moved"
	default:
		return "Unknown"
	}
}

// Game holds the state of one game and is the only thing that mutates it.
// It is not safe for concurrent use.
type Game struct {
	board       Board
	turn        Color
	selection   *Pos
	legalMoves  []Pos
	moves       []Move
	captured    []Piece
	checkedKing *Pos
	over        bool
	winner      *Color
}

func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// NewGameFromBoard starts a game from an arbitrary position with turn to
// move. The position must have one king per side and the side not to move
// must not be in check. A position that is already mate starts over.
func NewGameFromBoard(b Board, turn Color) (*Game, error) {
	for _, c := range []Color{White, Black} {
		if n := b.Count(Piece{Color: c, Kind: King}); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d", ErrKingCount, c, n)
		}
	}
	if IsInCheck(&b, turn.Other()) {
		return nil, fmt.Errorf("%w: %s", ErrOpponentInCheck, turn.Other())
	}
	g := &Game{board: b, turn: turn}
	g.updateCheckedKing()
	g.checkMate(turn.Other())
	return g, nil
}

// Reset restores the starting layout and clears everything derived from play.
func (g *Game) Reset() {
	*g = Game{board: NewBoard(), turn: White}
}

// Select handles a click on pos. Clicking the selected square clears the
// selection, clicking a legal target plays the move, anything else becomes
// the new selection. Only the side to move gets legal targets: a click on an
// empty square or an opponent piece is selected with none and reports
// Ignored.
func (g *Game) Select(pos Pos) SelectResult {
	if !pos.InBounds() || g.over {
		return Ignored
	}
	if g.selection != nil {
		if *g.selection == pos {
			g.clearSelection()
			return Deselected
		}
		if containsPos(g.legalMoves, pos) {
			if g.Execute(*g.selection, pos) {
				return Moved
			}
			return Ignored
		}
	}

	sel := pos
	g.selection = &sel
	g.legalMoves = nil
	p, ok := g.board.Get(pos).Piece()
	if !ok || p.Color != g.turn {
		return Ignored
	}
	g.legalMoves = LegalMoves(&g.board, pos)
	return Selected
}

// Execute plays from -> to for the side to move. It reports false, changing
// nothing, when the piece is not the mover's or the target is not legal.
func (g *Game) Execute(from, to Pos) bool {
	if g.over || !from.InBounds() || !to.InBounds() {
		return false
	}
	p, ok := g.board.Get(from).Piece()
	if !ok || p.Color != g.turn {
		return false
	}
	if !IsLegal(&g.board, from, to) {
		return false
	}

	captured := g.board.move(from, to)
	g.moves = append(g.moves, Move{Piece: p, From: from, To: to, Captured: captured})
	if cp, ok := captured.Piece(); ok {
		g.captured = append(g.captured, cp)
	}
	g.clearSelection()
	g.turn = g.turn.Other()
	g.updateCheckedKing()
	g.checkMate(p.Color)
	return true
}

// Resign ends the game in favour of c's opponent.
func (g *Game) Resign(c Color) bool {
	if g.over {
		return false
	}
	winner := c.Other()
	g.over = true
	g.winner = &winner
	g.clearSelection()
	return true
}

func (g *Game) checkMate(mover Color) {
	if IsCheckmate(&g.board, mover.Other()) {
		g.over = true
		g.winner = &mover
	}
}

// updateCheckedKing records the square of the side to move's king when it is
// in check, for display. Legality trials never call it.
func (g *Game) updateCheckedKing() {
	g.checkedKing = nil
	if !IsInCheck(&g.board, g.turn) {
		return
	}
	king, _ := FindKing(&g.board, g.turn)
	g.checkedKing = &king
}

func (g *Game) clearSelection() {
	g.selection = nil
	g.legalMoves = nil
}

func (g *Game) Board() Board {
	return g.board
}

func (g *Game) Turn() Color {
	return g.turn
}

func (g *Game) Selection() (Pos, bool) {
	if g.selection == nil {
		return Pos{}, false
	}
	return *g.selection, true
}

func (g *Game) LegalMoves() []Pos {
	return append([]Pos(nil), g.legalMoves...)
}

func (g *Game) CheckedKing() (Pos, bool) {
	if g.checkedKing == nil {
		return Pos{}, false
	}
	return *g.checkedKing, true
}

func (g *Game) IsOver() bool {
	return g.over
}

func (g *Game) Winner() (Color, bool) {
	if g.winner == nil {
		return 0, false
	}
	return *g.winner, true
}

func (g *Game) Moves() []Move {
	return append([]Move(nil), g.moves...)
}

func (g *Game) MoveHistory() []string {
	history := make([]string, len(g.moves))
	for i, m := range g.moves {
		history[i] = m.Notation()
	}
	return history
}

func (g *Game) CapturedPieces() []Piece {
	return append([]Piece(nil), g.captured...)
}

func containsPos(list []Pos, pos Pos) bool {
	for _, p := range list {
		if p == pos {
			return true
		}
	}
	return false
}
