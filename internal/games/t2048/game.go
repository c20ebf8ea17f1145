// Package t2048 is the terminal presentation of the 2048 puzzle. It turns
// input actions into engine moves, animates the results and draws the board
// onto a core.Screen. The rules themselves live in the engine subpackage.
package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// Game implements the 2048 puzzle on top of an engine.Session.
type Game struct {
	cfg     config.GameConfig
	rng     *rand.Rand
	session *engine.Session
	tick    uint64

	// Last board pushed by the session's change callback.
	values [][]int
	state  engine.State

	anim animator

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.GameConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		cfg:  cfg,
		anim: newAnimator(cfg.Animation),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("2048 (target %d)", g.cfg.Rules.WinThreshold)
}

// Target returns the winning tile value.
func (g *Game) Target() int {
	return g.cfg.Rules.WinThreshold
}

// Reset starts a new game. The seed in cfg drives every spawn.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.anim.stop()
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	return g.newSession()
}

// newSession replaces the session with a fresh deal from the game's RNG.
// On error the current session is kept.
func (g *Game) newSession() error {
	session, err := engine.NewSession(g.cfg.Engine(), g.rng, g.onChange)
	if err != nil {
		return fmt.Errorf("t2048: start session: %w", err)
	}
	g.session = session
	return nil
}

// restart discards the board and deals two new tiles, keeping the RNG stream.
func (g *Game) restart() error {
	if err := g.newSession(); err != nil {
		return err
	}
	g.paused = false
	g.anim.stop()
	return nil
}

// onChange receives every state change from the session.
func (g *Game) onChange(snap engine.Snapshot) {
	g.values = snap.Values
	g.state = snap.State
	if snap.Last != nil {
		g.anim.start(*snap.Last)
	}
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.state.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.state.Terminal() {
		if err := g.restart(); err != nil {
			return core.StepResult{State: g.State(), Err: err}
		}
		return core.StepResult{State: g.State(), Changed: true}
	}

	g.anim.update()

	changed := false
	for _, a := range in.Moves() {
		if g.state.Terminal() {
			break
		}
		// A new move cuts the running animation short.
		g.anim.stop()

		res, err := g.session.Move(actionDirection(a))
		if err != nil {
			continue
		}
		changed = changed || res.Changed
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// actionDirection maps a move action to an engine direction.
func actionDirection(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.DirUp
	case core.ActionDown:
		return engine.DirDown
	case core.ActionLeft:
		return engine.DirLeft
	case core.ActionRight:
		return engine.DirRight
	default:
		return engine.Direction(-1)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.state.Terminal(),
		Won:      g.state == engine.Won,
		Paused:   g.paused || g.tooSmall,
	}
}

// Animating reports whether a slide or pop is in progress.
func (g *Game) Animating() bool {
	return g.anim.active()
}

// Board returns a copy of the current board.
func (g *Game) Board() *engine.Board {
	return g.session.Board()
}
