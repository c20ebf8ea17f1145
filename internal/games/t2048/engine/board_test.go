package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fixedSource always picks the same index (mod n) and float.
type fixedSource struct {
	index int
	float float64
}

func (s fixedSource) Intn(n int) int     { return s.index % n }
func (s fixedSource) Float64() float64 { return s.float }

func mustBoard(t *testing.T, values [][]int) *Board {
	t.Helper()
	b, err := FromValues(values, fixedSource{float: 0.5})
	if err != nil {
		t.Fatalf("FromValues() failed: %v", err)
	}
	return b
}

func TestNewBoardRejectsBadInput(t *testing.T) {
	if _, err := NewBoard(0, 4, rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewBoard(0, 4) error = %v, want ErrInvalidConfig", err)
	}
	if _, err := NewBoard(4, 4, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewBoard with nil source error = %v, want ErrInvalidConfig", err)
	}
	if _, err := FromValues([][]int{{2, 0}, {2}}, fixedSource{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("FromValues ragged error = %v, want ErrInvalidConfig", err)
	}
	if _, err := FromValues([][]int{{3, 0}}, fixedSource{}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("FromValues with 3 error = %v, want ErrInvalidValue", err)
	}
}

func TestPlaceGetRemove(t *testing.T) {
	b, err := NewBoard(4, 4, fixedSource{})
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	if err := b.Place(Tile{Value: 8, Row: 1, Col: 2}); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}

	tile, ok, err := b.Get(Pos{Row: 1, Col: 2})
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v, %v", tile, ok, err)
	}
	if tile.Value != 8 || tile.Row != 1 || tile.Col != 2 {
		t.Errorf("Get() = %+v, want value 8 at (1,2)", tile)
	}

	if err := b.Place(Tile{Value: 2, Row: 1, Col: 2}); !errors.Is(err, ErrOccupied) {
		t.Errorf("Place on occupied cell error = %v, want ErrOccupied", err)
	}
	if err := b.Place(Tile{Value: 6, Row: 0, Col: 0}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Place(6) error = %v, want ErrInvalidValue", err)
	}

	removed, ok, err := b.RemoveAt(Pos{Row: 1, Col: 2})
	if err != nil || !ok || removed.Value != 8 {
		t.Errorf("RemoveAt() = %+v, %v, %v", removed, ok, err)
	}
	if _, ok, _ := b.Get(Pos{Row: 1, Col: 2}); ok {
		t.Error("cell should be empty after RemoveAt")
	}
	if b.EmptyCellCount() != 16 {
		t.Errorf("EmptyCellCount() = %d, want 16", b.EmptyCellCount())
	}
}

func TestInvalidPosition(t *testing.T) {
	b := mustBoard(t, [][]int{{0, 0}, {0, 0}})

	positions := []Pos{{Row: -1, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}}
	for _, p := range positions {
		_, _, err := b.Get(p)
		var posErr *InvalidPositionError
		if !errors.As(err, &posErr) {
			t.Errorf("Get(%v) error = %v, want InvalidPositionError", p, err)
			continue
		}
		if posErr.Pos != p || posErr.Rows != 2 || posErr.Cols != 2 {
			t.Errorf("InvalidPositionError = %+v", posErr)
		}
	}

	if err := b.Place(Tile{Value: 2, Row: 5, Col: 5}); err == nil {
		t.Error("Place out of bounds should fail")
	}
	if _, _, err := b.RemoveAt(Pos{Row: 0, Col: -1}); err == nil {
		t.Error("RemoveAt out of bounds should fail")
	}
}

func TestHasAdjacentEqualPair(t *testing.T) {
	tests := []struct {
		name     string
		values   [][]int
		expected bool
	}{
		{
			name:     "horizontal pair",
			values:   [][]int{{2, 2, 4, 8}, {4, 8, 16, 32}, {8, 16, 32, 64}, {16, 32, 64, 128}},
			expected: true,
		},
		{
			name:     "vertical pair",
			values:   [][]int{{2, 4, 8, 16}, {32, 64, 128, 16}, {2, 4, 8, 2}, {4, 8, 16, 4}},
			expected: true,
		},
		{
			name:     "pair in last row",
			values:   [][]int{{2, 4, 8, 16}, {4, 8, 16, 32}, {2, 4, 8, 16}, {4, 8, 32, 32}},
			expected: true,
		},
		{
			name:     "checkerboard",
			values:   [][]int{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}},
			expected: false,
		},
		{
			name:     "equal values separated by gap",
			values:   [][]int{{2, 0, 2, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.values)
			if got := b.HasAdjacentEqualPair(); got != tt.expected {
				t.Errorf("HasAdjacentEqualPair() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHasWinningTile(t *testing.T) {
	b := mustBoard(t, [][]int{{1024, 512}, {0, 2}})
	if b.HasWinningTile(2048) {
		t.Error("1024 should not win at threshold 2048")
	}
	if !b.HasWinningTile(1024) {
		t.Error("1024 should win at threshold 1024")
	}
	if b.MaxTile() != 1024 {
		t.Errorf("MaxTile() = %d, want 1024", b.MaxTile())
	}
	if b.Sum() != 1538 {
		t.Errorf("Sum() = %d, want 1538", b.Sum())
	}
}

func TestRandomEmptyPosition(t *testing.T) {
	values := [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	b, err := FromValues(values, fixedSource{index: 7})
	if err != nil {
		t.Fatalf("FromValues() failed: %v", err)
	}

	if b.EmptyCellCount() != 8 {
		t.Fatalf("EmptyCellCount() = %d, want 8", b.EmptyCellCount())
	}

	// Index 7 of 8 empty cells in row-major order is the last one.
	p, err := b.RandomEmptyPosition()
	if err != nil {
		t.Fatalf("RandomEmptyPosition() failed: %v", err)
	}
	if p != (Pos{Row: 3, Col: 2}) {
		t.Errorf("RandomEmptyPosition() = %v, want (3,2)", p)
	}
}

func TestRandomEmptyPositionCoversAllCells(t *testing.T) {
	b, err := FromValues([][]int{{2, 0}, {0, 0}}, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("FromValues() failed: %v", err)
	}

	seen := make(map[Pos]int)
	for range 600 {
		p, err := b.RandomEmptyPosition()
		if err != nil {
			t.Fatalf("RandomEmptyPosition() failed: %v", err)
		}
		if p == (Pos{}) {
			t.Fatal("RandomEmptyPosition() returned an occupied cell")
		}
		seen[p]++
	}

	for _, p := range []Pos{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		// Expect ~200 each; a wide band keeps this stable for any seed.
		if seen[p] < 120 || seen[p] > 280 {
			t.Errorf("position %v picked %d times out of 600", p, seen[p])
		}
	}
}

func TestSpawnTileOnFullBoard(t *testing.T) {
	b := mustBoard(t, [][]int{{2, 4}, {8, 16}})

	if _, err := b.RandomEmptyPosition(); !errors.Is(err, ErrBoardFull) {
		t.Errorf("RandomEmptyPosition() error = %v, want ErrBoardFull", err)
	}
	if _, err := b.SpawnTile(2); !errors.Is(err, ErrBoardFull) {
		t.Errorf("SpawnTile() error = %v, want ErrBoardFull", err)
	}
}

func TestSampleSpawnValue(t *testing.T) {
	if v := SampleSpawnValue(fixedSource{float: 0.05}, 0.1); v != 4 {
		t.Errorf("SampleSpawnValue(0.05) = %d, want 4", v)
	}
	if v := SampleSpawnValue(fixedSource{float: 0.5}, 0.1); v != 2 {
		t.Errorf("SampleSpawnValue(0.5) = %d, want 2", v)
	}

	rng := rand.New(rand.NewSource(99))
	fours := 0
	for range 10000 {
		if SampleSpawnValue(rng, 0.1) == 4 {
			fours++
		}
	}
	if fours < 800 || fours > 1200 {
		t.Errorf("got %d fours in 10000 samples, want about 1000", fours)
	}
}

func TestCloneAndEqual(t *testing.T) {
	b := mustBoard(t, [][]int{{2, 0}, {0, 4}})
	clone := b.Clone()

	if !b.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	if _, _, err := clone.RemoveAt(Pos{Row: 0, Col: 0}); err != nil {
		t.Fatalf("RemoveAt() failed: %v", err)
	}
	if b.Equal(clone) {
		t.Error("mutating clone should not affect original")
	}
	if b.Len() != 2 {
		t.Errorf("original Len() = %d, want 2", b.Len())
	}
}

func TestTilesAreCopies(t *testing.T) {
	b := mustBoard(t, [][]int{{0, 2}, {4, 0}})

	tiles := b.Tiles()
	want := []Tile{{Value: 2, Row: 0, Col: 1}, {Value: 4, Row: 1, Col: 0}}
	if diff := cmp.Diff(want, tiles); diff != "" {
		t.Errorf("Tiles() mismatch (-want +got):\n%s", diff)
	}

	tiles[0].Value = 1024
	if got, _, _ := b.Get(Pos{Row: 0, Col: 1}); got.Value != 2 {
		t.Errorf("board tile changed through Tiles() copy: %d", got.Value)
	}
}

func TestBoardString(t *testing.T) {
	b := mustBoard(t, [][]int{{2, 0}, {128, 4}})
	want := "  2   .\n128   4"
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
