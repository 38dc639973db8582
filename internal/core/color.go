package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal styles.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorObstacle
	ColorBorder
	ColorText
	ColorDim
	ColorAlert
)
