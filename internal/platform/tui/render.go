package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorGrid:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorOverlay: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),

	core.ColorTile2:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorTile4:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	core.ColorTile8:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	core.ColorTile16:    lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	core.ColorTile32:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorTile64:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorTile128:   lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
	core.ColorTile256:   lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true),
	core.ColorTile512:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorTile1024:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorTile2048:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	core.ColorTileSuper: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
}

// styleFor returns the style for a color, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
