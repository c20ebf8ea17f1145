// Package config provides YAML-based game configuration loading and the
// target presets offered by the menu.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// GameConfig contains all configuration for the 2048 game.
type GameConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Rules     RulesConfig     `yaml:"rules"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RulesConfig defines winning and spawning rules.
type RulesConfig struct {
	WinThreshold      int     `yaml:"win_threshold"`
	Spawn4Probability float64 `yaml:"spawn4_probability"` // chance a spawned tile is 4 instead of 2
	InitialTiles      int     `yaml:"initial_tiles"`
}

// AnimationConfig defines slide and pop timings in ticks.
type AnimationConfig struct {
	Enabled    bool `yaml:"enabled"`
	SlideTicks int  `yaml:"slide_ticks"`
	PopTicks   int  `yaml:"pop_ticks"`
}

// SupportedSize is the only board size the product ships with.
const SupportedSize = 4

// Engine converts the config into engine rules.
func (c GameConfig) Engine() engine.Config {
	return engine.Config{
		Rows:              c.Board.Rows,
		Cols:              c.Board.Cols,
		WinThreshold:      c.Rules.WinThreshold,
		Spawn4Probability: c.Rules.Spawn4Probability,
		InitialTiles:      c.Rules.InitialTiles,
	}
}

// Validate checks the config against engine rules and product limits.
func (c GameConfig) Validate() error {
	if c.Board.Rows != SupportedSize || c.Board.Cols != SupportedSize {
		return fmt.Errorf("config: board must be %dx%d, got %dx%d",
			SupportedSize, SupportedSize, c.Board.Rows, c.Board.Cols)
	}
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 {
		return fmt.Errorf("config: animation ticks must not be negative")
	}
	return nil
}
