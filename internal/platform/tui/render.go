package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSnakeHead: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorSnakeBody: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorObstacle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
