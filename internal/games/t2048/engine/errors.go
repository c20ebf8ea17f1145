package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrBoardFull is returned when a tile is spawned onto a board with no empty cells.
	ErrBoardFull = errors.New("engine: board is full")

	// ErrOccupied is returned when a tile is placed onto an occupied cell.
	ErrOccupied = errors.New("engine: cell is occupied")

	// ErrInvalidValue is returned for tile values that are not powers of two >= 2.
	ErrInvalidValue = errors.New("engine: tile value must be a power of two >= 2")

	// ErrInvalidDirection is returned by Apply for an unknown direction.
	ErrInvalidDirection = errors.New("engine: invalid direction")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("engine: invalid config")
)

// InvalidPositionError reports coordinates outside the board.
type InvalidPositionError struct {
	Pos        Pos
	Rows, Cols int
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("engine: position (%d,%d) outside %dx%d board", e.Pos.Row, e.Pos.Col, e.Rows, e.Cols)
}
