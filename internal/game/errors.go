package game

import "errors"

var (
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrInvalidRank     = errors.New("invalid rank")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
