package engine

// Snapshot is a read-only copy of everything a front-end needs to draw the
// game. It travels over the wire as JSON.
type Snapshot struct {
	Board       [NumRanks][NumFiles]string `json:"board"`
	Turn        Color                      `json:"turn"`
	Selection   *Pos                       `json:"selection,omitempty"`
	LegalMoves  []Pos                      `json:"legalMoves"`
	History     []string                   `json:"history"`
	Captured    []string                   `json:"captured"`
	CheckedKing *Pos                       `json:"checkedKing,omitempty"`
	Over        bool                       `json:"over"`
	Winner      *Color                     `json:"winner,omitempty"`
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Board:      g.board.Codes(),
		Turn:       g.turn,
		LegalMoves: g.LegalMoves(),
		History:    g.MoveHistory(),
		Captured:   make([]string, len(g.captured)),
		Over:       g.over,
	}
	for i, p := range g.captured {
		s.Captured[i] = p.Code()
	}
	if pos, ok := g.Selection(); ok {
		s.Selection = &pos
	}
	if pos, ok := g.CheckedKing(); ok {
		s.CheckedKing = &pos
	}
	if c, ok := g.Winner(); ok {
		s.Winner = &c
	}
	return s
}

// Square returns the piece code at pos.
func (s Snapshot) Square(pos Pos) string {
	return s.Board[pos.Rank][pos.File]
}

func (s Snapshot) IsLegalTarget(pos Pos) bool {
	return containsPos(s.LegalMoves, pos)
}

func (s Snapshot) IsSelected(pos Pos) bool {
	return s.Selection != nil && *s.Selection == pos
}

func (s Snapshot) IsCheckedKing(pos Pos) bool {
	return s.CheckedKing != nil && *s.CheckedKing == pos
}

// Status is a one line summary such as "White to move" or "Black wins".
func (s Snapshot) Status() string {
	if s.Over {
		if s.Winner == nil {
			return "Game over"
		}
		return s.Winner.String() + " wins"
	}
	if s.CheckedKing != nil {
		return s.Turn.String() + " to move (check)"
	}
	return s.Turn.String() + " to move"
}
