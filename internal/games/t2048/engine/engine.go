package engine

import (
	"fmt"
)

// Default rule values for the classic game.
const (
	DefaultSize              = 4
	DefaultWinThreshold      = 2048
	DefaultSpawn4Probability = 0.10
	DefaultInitialTiles      = 2
)

// State is the game state after a move.
type State int

const (
	Continue State = iota
	Won
	Lost
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether the state ends the game.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// Config holds the rules the engine is built with.
type Config struct {
	Rows              int
	Cols              int
	WinThreshold      int
	Spawn4Probability float64
	InitialTiles      int
}

// DefaultConfig returns the classic 4x4, 2048-to-win rules.
func DefaultConfig() Config {
	return Config{
		Rows:              DefaultSize,
		Cols:              DefaultSize,
		WinThreshold:      DefaultWinThreshold,
		Spawn4Probability: DefaultSpawn4Probability,
		InitialTiles:      DefaultInitialTiles,
	}
}

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case !isPowerOfTwo(c.WinThreshold) || c.WinThreshold < 4:
		return fmt.Errorf("%w: win threshold %d must be a power of two >= 4", ErrInvalidConfig, c.WinThreshold)
	case c.Spawn4Probability < 0 || c.Spawn4Probability > 1:
		return fmt.Errorf("%w: spawn-4 probability %v outside [0,1]", ErrInvalidConfig, c.Spawn4Probability)
	case c.InitialTiles < 0 || c.InitialTiles > c.Rows*c.Cols:
		return fmt.Errorf("%w: %d initial tiles on a %dx%d board", ErrInvalidConfig, c.InitialTiles, c.Rows, c.Cols)
	}
	return nil
}

// MoveResult is the outcome of Apply.
type MoveResult struct {
	Changed bool
	State   State
	Moves   []TileMove // one entry per tile present before the move
	Spawned *Tile      // tile added after the move, nil if none
}

// Engine applies moves to boards according to a Config.
type Engine struct {
	cfg Config
}

// New creates an engine. The config must be valid.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's rules.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewBoard creates an empty board sized by the engine config.
func (e *Engine) NewBoard(rng Source) (*Board, error) {
	return NewBoard(e.cfg.Rows, e.cfg.Cols, rng)
}

// GenerateInitialTiles spawns the configured number of starting tiles.
func (e *Engine) GenerateInitialTiles(b *Board) error {
	for range e.cfg.InitialTiles {
		if _, err := b.SpawnTile(SampleSpawnValue(b.rng, e.cfg.Spawn4Probability)); err != nil {
			return fmt.Errorf("generate initial tiles: %w", err)
		}
	}
	return nil
}

// Apply slides and merges every line of b toward dir, spawns a tile if the
// board changed, and reports the resulting state. b is modified in place.
func (e *Engine) Apply(b *Board, dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	lines := dir.lines(b.rows, b.cols)
	collapsed := make([][]int, len(lines))
	var moves []TileMove
	changed := false

	for i, line := range lines {
		values, lineMoves := collapseLine(b, line)
		collapsed[i] = values
		moves = append(moves, lineMoves...)
		for k, p := range line {
			if b.value(p) != values[k] {
				changed = true
			}
		}
	}

	if !changed {
		return MoveResult{Changed: false, State: Continue}, nil
	}

	for i, line := range lines {
		for k, p := range line {
			delete(b.cells, p)
			if v := collapsed[i][k]; v != 0 {
				b.cells[p] = &Tile{Value: v, Row: p.Row, Col: p.Col}
			}
		}
	}

	result := MoveResult{Changed: true, Moves: moves}

	// A winning merge ends the game before anything spawns.
	if b.HasWinningTile(e.cfg.WinThreshold) {
		result.State = Won
		return result, nil
	}

	if b.EmptyCellCount() > 0 {
		spawned, err := b.SpawnTile(SampleSpawnValue(b.rng, e.cfg.Spawn4Probability))
		if err != nil {
			return result, fmt.Errorf("spawn after %s: %w", dir, err)
		}
		result.Spawned = &spawned
	}

	result.State = e.Evaluate(b)
	return result, nil
}

// Evaluate returns the terminal state of b without moving anything.
func (e *Engine) Evaluate(b *Board) State {
	if b.HasWinningTile(e.cfg.WinThreshold) {
		return Won
	}
	if b.EmptyCellCount() == 0 && !b.HasAdjacentEqualPair() {
		return Lost
	}
	return Continue
}

// CanMove reports whether any direction would change b.
func (e *Engine) CanMove(b *Board) bool {
	return b.EmptyCellCount() > 0 || b.HasAdjacentEqualPair()
}
