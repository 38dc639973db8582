package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// FoodSpawner holds the single active food cell.
type FoodSpawner struct {
	grid        core.Grid
	rng         Rand
	retryBudget int
	pos         core.Cell
}

// NewFoodSpawner creates a spawner with no food placed yet.
func NewFoodSpawner(grid core.Grid, rng Rand, retryBudget int) *FoodSpawner {
	return &FoodSpawner{
		grid:        grid,
		rng:         rng,
		retryBudget: retryBudget,
		pos:         core.NoCell,
	}
}

// Respawn moves the food to a random cell not in occupied.
// Returns false, leaving no food on the board, when every cell is occupied.
func (f *FoodSpawner) Respawn(occupied map[core.Cell]bool) bool {
	c, ok := pickFree(f.grid, f.rng, f.retryBudget, func(c core.Cell) bool {
		return occupied[c]
	})
	f.pos = c
	return ok
}

// Position returns the food cell, or core.NoCell when there is none.
func (f *FoodSpawner) Position() core.Cell {
	return f.pos
}

// Present reports whether food is on the board.
func (f *FoodSpawner) Present() bool {
	return f.pos != core.NoCell
}
