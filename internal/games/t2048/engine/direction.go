package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all valid directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection accepts full names or single letters (l, r, u, d), any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return DirUp, nil
	case "d", "down":
		return DirDown, nil
	case "l", "left":
		return DirLeft, nil
	case "r", "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// columnMajor reports whether the direction moves tiles along columns.
func (d Direction) columnMajor() bool {
	return d == DirUp || d == DirDown
}

// towardEnd reports whether tiles move toward the last row/column.
func (d Direction) towardEnd() bool {
	return d == DirDown || d == DirRight
}

// lines returns every line along the move axis. Each line lists its
// positions ordered from the target edge outward.
func (d Direction) lines(rows, cols int) [][]Pos {
	count, length := rows, cols
	if d.columnMajor() {
		count, length = cols, rows
	}

	result := make([][]Pos, count)
	for i := range count {
		line := make([]Pos, length)
		for k := range length {
			j := k
			if d.towardEnd() {
				j = length - 1 - k
			}
			if d.columnMajor() {
				line[k] = Pos{Row: j, Col: i}
			} else {
				line[k] = Pos{Row: i, Col: j}
			}
		}
		result[i] = line
	}
	return result
}
