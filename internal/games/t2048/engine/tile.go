package engine

// Pos is a 0-indexed grid coordinate.
type Pos struct {
	Row, Col int
}

// Tile is a numbered tile on the board.
// Values returned from a Board are copies; mutating them does not affect the board.
type Tile struct {
	Value int
	Row   int
	Col   int
}

// Pos returns the tile's grid position.
func (t Tile) Pos() Pos {
	return Pos{Row: t.Row, Col: t.Col}
}

// TileMove records where a tile ended up after a move.
// Merged is set on both tiles that collapsed into the same cell.
type TileMove struct {
	From   Pos
	To     Pos
	Value  int // value before the move
	Merged bool
}

// Moved reports whether the tile changed position.
func (m TileMove) Moved() bool {
	return m.From != m.To
}

// isPowerOfTwo reports whether v is 2, 4, 8, ...
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
