package engine

import "errors"

var (
	ErrGameOver   = errors.New("game is over")
	ErrNoMoves    = errors.New("no legal moves")
	ErrNoUndo     = errors.New("nothing to undo")
	ErrBookFormat = errors.New("malformed opening book")
)
