package engine

import "errors"

var (
	ErrBadPiece        = errors.New("engine: bad piece code")
	ErrBadSquare       = errors.New("engine: bad square")
	ErrNoKing          = errors.New("engine: no king on board")
	ErrKingCount       = errors.New("engine: each side needs exactly one king")
	ErrOpponentInCheck = errors.New("engine: side not to move is in check")
)
