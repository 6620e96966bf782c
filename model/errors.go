package model

import "github.com/pkg/errors"

var (
	// ErrBoardInitialization is returned when the cell count does not match the dimensions
	ErrBoardInitialization = errors.New("board initialization error")
	// ErrCellDoesNotExist is returned when a lookup falls outside the cell sequence
	ErrCellDoesNotExist = errors.New("cell does not exist")
	// ErrOutOfBounds is returned by coordinate based accessors for positions off the board
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)
