package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWin         GameStateType = "win"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Target  int
	Turns   int
	Board   [][]int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state == engine.Won:
		state = StateWin
	case g.state == engine.Lost:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	b := g.session.Board()
	return Snapshot{
		Tick:    g.tick,
		Target:  g.Target(),
		Turns:   g.session.Turns(),
		Board:   b.Values(),
		MaxTile: b.MaxTile(),
		State:   state,
	}
}
