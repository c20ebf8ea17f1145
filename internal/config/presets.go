package config

import (
	"fmt"
	"strings"
)

// Preset is a named win target offered by the menu.
type Preset struct {
	Name   string
	Title  string
	Target int     // tile value that wins the game
	Spawn4 float64 // probability of spawning 4 instead of 2
}

// Presets lists the available targets, easiest first.
var Presets = []Preset{
	{Name: "quick", Title: "Quick Game", Target: 512, Spawn4: 0.10},
	{Name: "short", Title: "Short Game", Target: 1024, Spawn4: 0.10},
	{Name: "classic", Title: "Classic 2048", Target: 2048, Spawn4: 0.10},
	{Name: "long", Title: "Beyond Limits", Target: 4096, Spawn4: 0.12},
	{Name: "marathon", Title: "Marathon", Target: 8192, Spawn4: 0.15},
}

// DefaultPreset is the classic 2048 target.
const DefaultPreset = "classic"

// PresetByName looks up a preset, case-insensitively.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("config: unknown target %q", name)
}

// PresetNames returns the names of all presets.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// ApplyPreset sets the win target and spawn probability from a preset.
func ApplyPreset(cfg *GameConfig, p Preset) {
	cfg.Rules.WinThreshold = p.Target
	cfg.Rules.Spawn4Probability = p.Spawn4
}

// ConfigPresetName names the menu entry built from a loaded config file.
const ConfigPresetName = "config"

// FromConfig returns a preset carrying the config's own rules.
// Applying it to the same config changes nothing.
func FromConfig(cfg GameConfig) Preset {
	return Preset{
		Name:   ConfigPresetName,
		Title:  "From config",
		Target: cfg.Rules.WinThreshold,
		Spawn4: cfg.Rules.Spawn4Probability,
	}
}

// MenuChoices returns the targets offered before a game and the one the
// cursor starts on. A config loaded from a file is listed first and
// preselected so its rules are kept unless the user picks another preset.
func MenuChoices(cfg GameConfig, source string) ([]Preset, string) {
	if source == SourceEmbedded {
		return Presets, DefaultPreset
	}
	choices := make([]Preset, 0, len(Presets)+1)
	choices = append(choices, FromConfig(cfg))
	choices = append(choices, Presets...)
	return choices, ConfigPresetName
}
