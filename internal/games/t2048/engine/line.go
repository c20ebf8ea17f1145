package engine

// slot is one cell of a line being collapsed.
type slot struct {
	value  int
	merged bool // produced by a merge this pass; blocked from merging again
}

// collapseLine slides and merges the tiles of one line toward its first
// position. line is ordered from the target edge outward. It returns the
// resulting values (0 = empty) and, for every source tile, its move record.
func collapseLine(b *Board, line []Pos) ([]int, []TileMove) {
	slots := make([]slot, len(line))
	var moves []TileMove
	cursor := -1 // index of the last written slot

	for _, p := range line {
		v := b.value(p)
		if v == 0 {
			continue
		}

		switch {
		case cursor >= 0 && slots[cursor].value == v && !slots[cursor].merged:
			slots[cursor].value *= 2
			slots[cursor].merged = true
			// The absorbed tile's partner is the last move landing on cursor.
			for i := len(moves) - 1; i >= 0; i-- {
				if moves[i].To == line[cursor] {
					moves[i].Merged = true
					break
				}
			}
			moves = append(moves, TileMove{From: p, To: line[cursor], Value: v, Merged: true})
		default:
			cursor++
			slots[cursor] = slot{value: v}
			moves = append(moves, TileMove{From: p, To: line[cursor], Value: v})
		}
	}

	values := make([]int, len(line))
	for i, s := range slots {
		values[i] = s.value
	}
	return values, moves
}
