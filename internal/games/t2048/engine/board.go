// Package engine implements the 2048 board model and the slide/merge move
// engine. It has no terminal or UI dependencies; the presentation layer
// drives it through Session or Engine.Apply.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is a rows x cols grid of tiles. Absent cells are empty.
// A Board is not safe for concurrent use.
type Board struct {
	rows  int
	cols  int
	cells map[Pos]*Tile
	rng   Source
}

// NewBoard creates an empty board. rng is used for spawn positions.
func NewBoard(rows, cols int, rng Source) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, rows, cols)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make(map[Pos]*Tile, rows*cols),
		rng:   rng,
	}, nil
}

// FromValues builds a board from a row-major value grid where 0 means empty.
func FromValues(values [][]int, rng Source) (*Board, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty value grid", ErrInvalidConfig)
	}
	b, err := NewBoard(len(values), len(values[0]), rng)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		if len(row) != b.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfig, r, len(row), b.cols)
		}
		for c, v := range row {
			if v == 0 {
				continue
			}
			if err := b.Place(Tile{Value: v, Row: r, Col: c}); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Len returns the number of tiles on the board.
func (b *Board) Len() int { return len(b.cells) }

func (b *Board) inBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

func (b *Board) checkPos(p Pos) error {
	if !b.inBounds(p) {
		return &InvalidPositionError{Pos: p, Rows: b.rows, Cols: b.cols}
	}
	return nil
}

// Get returns the tile at p, if any.
func (b *Board) Get(p Pos) (Tile, bool, error) {
	if err := b.checkPos(p); err != nil {
		return Tile{}, false, err
	}
	t, ok := b.cells[p]
	if !ok {
		return Tile{}, false, nil
	}
	return *t, true, nil
}

// Place puts t at its own (Row, Col). The cell must be empty.
func (b *Board) Place(t Tile) error {
	p := t.Pos()
	if err := b.checkPos(p); err != nil {
		return err
	}
	if !isPowerOfTwo(t.Value) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, t.Value)
	}
	if _, ok := b.cells[p]; ok {
		return fmt.Errorf("%w: (%d,%d)", ErrOccupied, p.Row, p.Col)
	}
	b.cells[p] = &t
	return nil
}

// RemoveAt removes and returns the tile at p, if any.
func (b *Board) RemoveAt(p Pos) (Tile, bool, error) {
	if err := b.checkPos(p); err != nil {
		return Tile{}, false, err
	}
	t, ok := b.cells[p]
	if !ok {
		return Tile{}, false, nil
	}
	delete(b.cells, p)
	return *t, true, nil
}

// value returns the tile value at p or 0. p must be in bounds.
func (b *Board) value(p Pos) int {
	if t, ok := b.cells[p]; ok {
		return t.Value
	}
	return 0
}

// EmptyCellCount returns the number of unoccupied cells.
func (b *Board) EmptyCellCount() int {
	return b.rows*b.cols - len(b.cells)
}

// EmptyPositions returns all empty cells in row-major order.
func (b *Board) EmptyPositions() []Pos {
	empty := make([]Pos, 0, b.EmptyCellCount())
	for r := range b.rows {
		for c := range b.cols {
			p := Pos{Row: r, Col: c}
			if _, ok := b.cells[p]; !ok {
				empty = append(empty, p)
			}
		}
	}
	return empty
}

// HasAdjacentEqualPair reports whether any tile has a right or down
// neighbor of equal value.
func (b *Board) HasAdjacentEqualPair() bool {
	for p, t := range b.cells {
		if p.Col+1 < b.cols && b.value(Pos{Row: p.Row, Col: p.Col + 1}) == t.Value {
			return true
		}
		if p.Row+1 < b.rows && b.value(Pos{Row: p.Row + 1, Col: p.Col}) == t.Value {
			return true
		}
	}
	return false
}

// HasWinningTile reports whether any tile value is >= threshold.
func (b *Board) HasWinningTile(threshold int) bool {
	for _, t := range b.cells {
		if t.Value >= threshold {
			return true
		}
	}
	return false
}

// MaxTile returns the highest tile value, or 0 for an empty board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, t := range b.cells {
		maxVal = max(maxVal, t.Value)
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	total := 0
	for _, t := range b.cells {
		total += t.Value
	}
	return total
}

// RandomEmptyPosition picks an empty cell uniformly at random.
func (b *Board) RandomEmptyPosition() (Pos, error) {
	empty := b.EmptyPositions()
	if len(empty) == 0 {
		return Pos{}, ErrBoardFull
	}
	return empty[b.rng.Intn(len(empty))], nil
}

// SpawnTile places a new tile of the given value at a random empty cell.
func (b *Board) SpawnTile(value int) (Tile, error) {
	p, err := b.RandomEmptyPosition()
	if err != nil {
		return Tile{}, err
	}
	t := Tile{Value: value, Row: p.Row, Col: p.Col}
	if err := b.Place(t); err != nil {
		return Tile{}, err
	}
	return t, nil
}

// Tiles returns copies of all tiles in row-major order.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, 0, len(b.cells))
	for r := range b.rows {
		for c := range b.cols {
			if t, ok := b.cells[Pos{Row: r, Col: c}]; ok {
				tiles = append(tiles, *t)
			}
		}
	}
	return tiles
}

// Values returns the board as a row-major grid with 0 for empty cells.
func (b *Board) Values() [][]int {
	grid := make([][]int, b.rows)
	for r := range grid {
		grid[r] = make([]int, b.cols)
	}
	for p, t := range b.cells {
		grid[p.Row][p.Col] = t.Value
	}
	return grid
}

// Clone returns a deep copy. The copy has its own fixed source, so spawning
// on it never advances the original board's random stream.
func (b *Board) Clone() *Board {
	clone := &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: make(map[Pos]*Tile, len(b.cells)),
		rng:   frozenSource{},
	}
	for p, t := range b.cells {
		tc := *t
		clone.cells[p] = &tc
	}
	return clone
}

// Equal reports whether both boards have the same size and tiles.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols || len(b.cells) != len(other.cells) {
		return false
	}
	for p, t := range b.cells {
		if other.value(p) != t.Value {
			return false
		}
	}
	return true
}

// String renders the board as right-aligned columns, "." for empty cells.
func (b *Board) String() string {
	width := max(len(strconv.Itoa(b.MaxTile())), 1)
	var sb strings.Builder
	for r := range b.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.cols {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v := b.value(Pos{Row: r, Col: c}); v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
