package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// targetMenuKeys is the subset of KeyMap shown under the target table.
type targetMenuKeys struct {
	KeyMap
}

// ShortHelp returns key bindings for the short help view.
func (k targetMenuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k targetMenuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// TargetModel lets the user pick a win target before the game starts.
type TargetModel struct {
	presets  []config.Preset
	table    table.Model
	help     help.Model
	keys     targetMenuKeys
	width    int
	height   int
	selected *config.Preset
	quitting bool
}

// NewTargetModel creates a target selector with the cursor on initial.
func NewTargetModel(presets []config.Preset, initial string, width, height int) TargetModel {
	m := TargetModel{
		presets: presets,
		help:    help.New(),
		keys:    targetMenuKeys{DefaultKeyMap()},
		width:   width,
		height:  height,
	}
	m.table = m.createTable()

	for i, p := range presets {
		if strings.EqualFold(p.Name, initial) {
			m.table.SetCursor(i)
		}
	}
	return m
}

// createTable builds the preset table.
func (m TargetModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Mode", Width: 16},
		{Title: "Target", Width: 8},
		{Title: "4-chance", Width: 9},
	}

	rows := make([]table.Row, len(m.presets))
	for i, p := range m.presets {
		rows[i] = table.Row{
			p.Title,
			fmt.Sprintf("%d", p.Target),
			fmt.Sprintf("%.0f%%", p.Spawn4*100),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+3),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m TargetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TargetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionSelect:
			if i := m.table.Cursor(); i >= 0 && i < len(m.presets) {
				p := m.presets[i]
				m.selected = &p
			}
			return m, tea.Quit
		case MenuActionUp:
			m.table.MoveUp(1)
			return m, nil
		case MenuActionDown:
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the target selection.
func (m TargetModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220"))

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render("2 0 4 8")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "Select a target:"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, helpStyle.Render(m.help.View(m.keys))))

	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m TargetModel) Selected() *config.Preset {
	return m.selected
}

// IsQuitting returns true if the user left without choosing.
func (m TargetModel) IsQuitting() bool {
	return m.quitting
}

// RunTargetSelector shows the target menu and returns the chosen preset,
// or nil if the user quit.
func RunTargetSelector(presets []config.Preset, initial string, width, height int) (*config.Preset, error) {
	model := NewTargetModel(presets, initial, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(TargetModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
