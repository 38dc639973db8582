package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Cell glyphs. Every grid cell is two columns wide so the board looks square.
const (
	cellWidth   = 2
	glyphHead   = "@@"
	glyphBody   = "[]"
	glyphFood   = "()"
	glyphWall   = "##"
	hudRows     = 2 // Score line and separator
	helpRows    = 1
	overlayPadX = 2
)

// Frame is everything the board renderer needs for one draw.
type Frame struct {
	Snap   snake.Snapshot
	Paused bool
	Help   string // Rendered help line, may be empty
}

// FrameSize returns the screen area needed to draw a grid: HUD, bordered
// board and help line.
func FrameSize(grid core.Grid) (w, h int) {
	return grid.W*cellWidth + 2, hudRows + grid.H + 2 + helpRows
}

// Fits reports whether a w×h screen can hold the frame for grid.
func Fits(grid core.Grid, w, h int) bool {
	fw, fh := FrameSize(grid)
	return w >= fw && h >= fh
}

// DrawFrame clears s and draws the HUD, board and any overlay, centered.
func DrawFrame(s *core.Screen, f Frame) {
	s.Clear()

	grid := f.Snap.Grid
	if !Fits(grid, s.Width(), s.Height()) {
		drawTooSmall(s, grid)
		return
	}

	fw, fh := FrameSize(grid)
	area := s.Bounds().Centered(fw, fh)

	drawHUD(s, area, f.Snap, f.Paused)

	board := core.NewRect(area.X, area.Y+hudRows, fw, grid.H+2)
	s.DrawBox(board, core.ColorBorder)
	drawCells(s, board, f.Snap)

	if f.Help != "" {
		s.DrawTextColored(area.X, board.Bottom(), f.Help, core.ColorDim)
	}

	switch {
	case f.Snap.Phase == snake.PhaseGameOver:
		drawOverlay(s, board, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", f.Snap.Score),
			"The snake " + f.Snap.Reason.String(),
			"",
			"SPACE restart · ESC quit",
		})
	case f.Paused:
		drawOverlay(s, board, []string{"PAUSED", "", "P to resume"})
	}
}

func drawHUD(s *core.Screen, area core.Rect, snap snake.Snapshot, paused bool) {
	s.DrawTextColored(area.X, area.Y, fmt.Sprintf("Score: %d", snap.Score), core.ColorText)

	right := fmt.Sprintf("Length: %d", len(snap.Snake))
	if paused {
		right = "[paused] " + right
	}
	s.DrawTextColored(area.Right()-len([]rune(right)), area.Y, right, core.ColorDim)

	s.DrawHLine(area.X, area.Y+1, area.W, '─', core.ColorDim)
}

// drawCells paints obstacles, food and the snake inside the board border.
// The head is drawn last so it stays visible.
func drawCells(s *core.Screen, board core.Rect, snap snake.Snapshot) {
	put := func(c core.Cell, glyph string, color core.Color) {
		s.DrawTextColored(board.X+1+c.X*cellWidth, board.Y+1+c.Y, glyph, color)
	}

	for _, c := range snap.Obstacles {
		put(c, glyphWall, core.ColorObstacle)
	}
	if snap.Food != core.NoCell {
		put(snap.Food, glyphFood, core.ColorFood)
	}
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		put(snap.Snake[i], glyphBody, core.ColorSnakeBody)
	}
	if len(snap.Snake) > 0 {
		put(snap.Snake[0], glyphHead, core.ColorSnakeHead)
	}
}

// drawOverlay draws a bordered message box centered on the board.
func drawOverlay(s *core.Screen, board core.Rect, lines []string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	box := board.Centered(width+2*overlayPadX+2, len(lines)+2)

	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorAlert)
	for i, line := range lines {
		color := core.ColorText
		if i == 0 {
			color = core.ColorAlert
		}
		s.DrawTextCentered(box, box.Y+1+i, line, color)
	}
}

func drawTooSmall(s *core.Screen, grid core.Grid) {
	fw, fh := FrameSize(grid)
	lines := []string{
		"Terminal too small",
		fmt.Sprintf("need %dx%d, have %dx%d", fw, fh, s.Width(), s.Height()),
	}
	top := (s.Height() - len(lines)) / 2
	for i, line := range lines {
		s.DrawTextCentered(s.Bounds(), top+i, line, core.ColorAlert)
	}
}

// plainText flattens a screen for screenshots, trimming trailing blanks.
func plainText(s *core.Screen) string {
	var sb strings.Builder
	for y := range s.Height() {
		sb.WriteString(strings.TrimRight(s.Row(y), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
