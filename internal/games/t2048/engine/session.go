package engine

import "fmt"

// Snapshot is a read-only view of a session after a state change.
type Snapshot struct {
	Values [][]int
	Tiles  []Tile
	State  State
	Turns  int
	Last   *MoveResult // nil right after a reset
}

// ChangeFunc is invoked after every state change (move or reset).
type ChangeFunc func(Snapshot)

// Session runs one game: a board, its engine and the current state.
// Moves are ignored once the game has been won or lost, until Reset.
type Session struct {
	engine   *Engine
	rng      Source
	board    *Board
	state    State
	turns    int
	onChange ChangeFunc
}

// NewSession creates a session and generates the starting tiles.
// onChange may be nil.
func NewSession(cfg Config, rng Source, onChange ChangeFunc) (*Session, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	s := &Session{
		engine:   e,
		rng:      rng,
		onChange: onChange,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionFromBoard creates a session around an existing board.
// The state is evaluated immediately.
func NewSessionFromBoard(cfg Config, b *Board, onChange ChangeFunc) (*Session, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if b.rows != cfg.Rows || b.cols != cfg.Cols {
		return nil, fmt.Errorf("%w: board is %dx%d, config wants %dx%d", ErrInvalidConfig, b.rows, b.cols, cfg.Rows, cfg.Cols)
	}
	return &Session{
		engine:   e,
		rng:      b.rng,
		board:    b,
		state:    e.Evaluate(b),
		onChange: onChange,
	}, nil
}

// Reset discards the board and starts a new game.
func (s *Session) Reset() error {
	b, err := s.engine.NewBoard(s.rng)
	if err != nil {
		return err
	}
	if err := s.engine.GenerateInitialTiles(b); err != nil {
		return err
	}
	s.board = b
	s.state = Continue
	s.turns = 0
	s.notify(nil)
	return nil
}

// Move applies dir. Once the game is over it returns an unchanged result.
func (s *Session) Move(dir Direction) (MoveResult, error) {
	if s.state.Terminal() {
		return MoveResult{State: s.state}, nil
	}

	result, err := s.engine.Apply(s.board, dir)
	if err != nil {
		return result, err
	}
	if !result.Changed {
		return result, nil
	}

	s.state = result.State
	s.turns++
	s.notify(&result)
	return result, nil
}

func (s *Session) notify(last *MoveResult) {
	if s.onChange != nil {
		s.onChange(s.snapshot(last))
	}
}

func (s *Session) snapshot(last *MoveResult) Snapshot {
	return Snapshot{
		Values: s.board.Values(),
		Tiles:  s.board.Tiles(),
		State:  s.state,
		Turns:  s.turns,
		Last:   last,
	}
}

// Board returns a copy of the current board.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Turns returns the number of moves that changed the board.
func (s *Session) Turns() int {
	return s.turns
}

// Config returns the rules the session runs with.
func (s *Session) Config() Config {
	return s.engine.Config()
}

// Snapshot returns a view of the current session.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot(nil)
}
