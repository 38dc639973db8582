package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// DefaultRetryBudget is the number of rejected random samples tolerated before
// placement falls back to scanning the grid.
const DefaultRetryBudget = 1000

// Rand is the randomness source used for placement. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// CellSet answers membership queries for blocking cells.
type CellSet interface {
	Contains(c core.Cell) bool
}

// pickFree draws uniform random cells until one is not taken.
// After budget misses it takes the first free cell in row-major order, so it
// always terminates. Returns false only when every cell is taken.
func pickFree(grid core.Grid, rng Rand, budget int, taken func(core.Cell) bool) (core.Cell, bool) {
	if grid.W <= 0 || grid.H <= 0 {
		return core.NoCell, false
	}
	if budget <= 0 {
		budget = DefaultRetryBudget
	}

	for range budget {
		c := core.Cell{X: rng.Intn(grid.W), Y: rng.Intn(grid.H)}
		if !taken(c) {
			return c, true
		}
	}

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := core.Cell{X: x, Y: y}
			if !taken(c) {
				return c, true
			}
		}
	}
	return core.NoCell, false
}
