package pkg

import (
	"fmt"

	"github.com/notnil/chess"
	"github.com/qnkhuat/uchess/pkg/engine"
)

var fenKinds = map[chess.PieceType]engine.Kind{
	chess.Pawn:   engine.Pawn,
	chess.Knight: engine.Knight,
	chess.Bishop: engine.Bishop,
	chess.Rook:   engine.Rook,
	chess.Queen:  engine.Queen,
	chess.King:   engine.King,
}

// GameFromFEN starts a game from a FEN record. Castling rights, the en
// passant square and the move counters are ignored.
func GameFromFEN(gamefen string) (*engine.Game, error) {
	fen, err := chess.FEN(gamefen)
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	pos := chess.NewGame(fen).Position()

	b := engine.EmptyBoard()
	for sq, p := range pos.Board().SquareMap() {
		color := engine.White
		if p.Color() == chess.Black {
			color = engine.Black
		}
		at := engine.Pos{File: int(sq.File()), Rank: engine.NumRanks - 1 - int(sq.Rank())}
		b.Place(at, engine.Piece{Color: color, Kind: fenKinds[p.Type()]})
	}

	turn := engine.White
	if pos.Turn() == chess.Black {
		turn = engine.Black
	}
	g, err := engine.NewGameFromBoard(b, turn)
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	return g, nil
}
