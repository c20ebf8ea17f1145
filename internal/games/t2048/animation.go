package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// TileAnimation is one tile sliding from its old cell to its new one.
type TileAnimation struct {
	Value    int // value before the move
	From     engine.Pos
	To       engine.Pos
	Progress float64 // 0.0 → 1.0
	Merged   bool
}

// AnimationPhase is the current phase of the move animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// animator replays a MoveResult as a slide followed by a pop of the
// spawned tile. It never changes the board; it only decides what to draw.
type animator struct {
	enabled    bool
	slideTicks int
	popTicks   int

	phase   AnimationPhase
	ticks   int
	tiles   []TileAnimation
	spawned *engine.Tile
}

func newAnimator(cfg config.AnimationConfig) animator {
	return animator{
		enabled:    cfg.Enabled,
		slideTicks: cfg.SlideTicks,
		popTicks:   cfg.PopTicks,
	}
}

// start begins animating a changed move.
func (a *animator) start(res engine.MoveResult) {
	a.stop()
	if !a.enabled || !res.Changed {
		return
	}

	a.spawned = res.Spawned
	if a.slideTicks > 0 {
		a.tiles = make([]TileAnimation, 0, len(res.Moves))
		for _, m := range res.Moves {
			a.tiles = append(a.tiles, TileAnimation{
				Value:  m.Value,
				From:   m.From,
				To:     m.To,
				Merged: m.Merged,
			})
		}
		a.phase = PhaseSlide
		return
	}
	a.startPop()
}

func (a *animator) startPop() {
	a.tiles = nil
	a.ticks = 0
	if a.spawned == nil || a.popTicks <= 0 {
		a.stop()
		return
	}
	a.phase = PhasePop
}

// update advances one tick. It returns true while animation continues.
func (a *animator) update() bool {
	if a.phase == PhaseNone {
		return false
	}

	a.ticks++
	duration := a.slideTicks
	if a.phase == PhasePop {
		duration = a.popTicks
	}

	progress := core.ClampF(float64(a.ticks)/float64(duration), 0, 1)
	for i := range a.tiles {
		a.tiles[i].Progress = progress
	}

	if a.ticks < duration {
		return true
	}

	if a.phase == PhaseSlide {
		a.startPop()
		return a.phase != PhaseNone
	}
	a.stop()
	return false
}

// stop drops any running animation.
func (a *animator) stop() {
	a.phase = PhaseNone
	a.ticks = 0
	a.tiles = nil
	a.spawned = nil
}

func (a *animator) active() bool {
	return a.phase != PhaseNone
}

// popProgress returns how far the spawned tile has popped in, 1 when idle.
func (a *animator) popProgress() float64 {
	switch a.phase {
	case PhaseSlide:
		return 0
	case PhasePop:
		return core.ClampF(float64(a.ticks)/float64(a.popTicks), 0, 1)
	default:
		return 1
	}
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// position returns the interpolated (row, col) of the tile.
func (t TileAnimation) position() (row, col float64) {
	p := easeOutQuad(t.Progress)
	row = core.Lerp(float64(t.From.Row), float64(t.To.Row), p)
	col = core.Lerp(float64(t.From.Col), float64(t.To.Col), p)
	return row, col
}
