package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true)
	menuActiveStyle = lipgloss.NewStyle().Reverse(true)
	menuDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PresetModel lets users choose a difficulty preset before playing.
type PresetModel struct {
	presets      []config.DifficultyPreset
	cursor       int
	width        int
	height       int
	selected     config.DifficultyPreset
	choosing     bool
	quitting     bool
	quitOnSelect bool
}

// NewPresetModel creates a preset menu with the cursor on normal.
func NewPresetModel(width, height int) PresetModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if p == config.DifficultyNormal {
			cursor = i
		}
	}
	return PresetModel{
		presets:  presets,
		cursor:   cursor,
		width:    width,
		height:   height,
		choosing: true,
	}
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m PresetModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = m.presets[m.cursor]
		if m.quitOnSelect {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the preset list centered on screen.
func (m PresetModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("S N A K E"))
	b.WriteString("\n\n")
	b.WriteString("Select difficulty:")
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf(" %-7s ", p)
		if i == m.cursor {
			line = menuActiveStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString(" ")
		b.WriteString(menuDescStyle.Render(p.Description()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDescStyle.Render("Enter: Select  |  Q: Quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen preset and whether a choice was made.
func (m PresetModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing {
		return "", false
	}
	return m.selected, true
}

// IsQuitting returns true if user wants to quit.
func (m PresetModel) IsQuitting() bool {
	return m.quitting
}

// RunPresetSelector shows the preset menu and returns the chosen preset.
// ok is false when the user quit without choosing.
func RunPresetSelector(cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	model := NewPresetModel(cfg.ScreenW, cfg.ScreenH)
	model.quitOnSelect = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: preset menu: %w", err)
	}

	m, isPreset := final.(PresetModel)
	if !isPreset || m.IsQuitting() {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
