package board

import "errors"

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrIllegalMove   = errors.New("illegal move")
	ErrNoPiece       = errors.New("no piece on source square")
	ErrWrongSide     = errors.New("piece belongs to the side not on move")
)
