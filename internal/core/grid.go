package core

import "fmt"

// Cell is a discrete (x, y) grid coordinate.
// X increases to the right, Y increases downward (screen coordinates).
type Cell struct {
	X, Y int
}

// NoCell marks the absence of a cell, e.g. when the board has no room for food.
var NoCell = Cell{X: -1, Y: -1}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid describes a W×H board. It holds no cell state.
type Grid struct {
	W int
	H int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// InBounds returns true if c lies within [0,W) x [0,H).
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Cell {
	return Cell{X: g.W / 2, Y: g.H / 2}
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.W * g.H
}

// Cells returns every cell of the grid in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}
