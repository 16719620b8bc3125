package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	hudStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a string for display.
// The first row carries the HUD and is drawn bold.
func RenderScreen(s *core.Screen) string {
	if s.Height() == 0 {
		return ""
	}
	rows := make([]string, 0, s.Height())
	rows = append(rows, hudStyle.Render(s.Row(0)))
	for y := 1; y < s.Height(); y++ {
		rows = append(rows, s.Row(y))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFrame stacks the game screen above the help bar.
func renderFrame(s *core.Screen, helpView string) string {
	if helpView == "" {
		return RenderScreen(s)
	}
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(s), helpStyle.Render(helpView))
}
