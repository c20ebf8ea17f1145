package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List win target presets",
	Long:  `Shows the target presets accepted by 'play --target' and 'simulate --target'.`,
	Args:  cobra.NoArgs,
	Run:   runTargets,
}

func runTargets(cmd *cobra.Command, args []string) {
	fmt.Print(formatTargets(config.Presets, config.DefaultPreset))
	fmt.Println()
	fmt.Println("Run 't2048 play --target <name>' to skip the menu.")
}

// formatTargets renders the preset table; the default preset is marked.
func formatTargets(presets []config.Preset, def string) string {
	header := lipgloss.NewStyle().Bold(true)
	marked := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	maxNameLen := len("Name")
	for _, p := range presets {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	out := "Available targets:\n\n"
	out += header.Render(fmt.Sprintf("  %-*s  %-14s  %6s  %s", maxNameLen, "Name", "Title", "Target", "4-chance")) + "\n"
	for _, p := range presets {
		line := fmt.Sprintf("  %-*s  %-14s  %6d  %.0f%%", maxNameLen, p.Name, p.Title, p.Target, p.Spawn4*100)
		if p.Name == def {
			line = marked.Render(line + "  (default)")
		}
		out += line + "\n"
	}
	return out
}
