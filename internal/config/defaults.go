package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Rows: SupportedSize,
			Cols: SupportedSize,
		},
		Rules: RulesConfig{
			WinThreshold:      engine.DefaultWinThreshold,
			Spawn4Probability: engine.DefaultSpawn4Probability,
			InitialTiles:      engine.DefaultInitialTiles,
		},
		Animation: AnimationConfig{
			Enabled:    true,
			SlideTicks: 8,
			PopTicks:   6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
