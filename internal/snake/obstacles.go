package snake

import (
	"sort"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ObstacleField is a fixed set of blocking cells. It never changes after creation.
type ObstacleField struct {
	cells map[core.Cell]struct{}
}

// GenerateObstacles places count distinct obstacles uniformly at random.
// count is clamped to the grid area.
func GenerateObstacles(grid core.Grid, count int, rng Rand, retryBudget int) *ObstacleField {
	count = core.Clamp(count, 0, grid.Area())
	f := &ObstacleField{cells: make(map[core.Cell]struct{}, count)}

	for len(f.cells) < count {
		c, ok := pickFree(grid, rng, retryBudget, f.Contains)
		if !ok {
			break
		}
		f.cells[c] = struct{}{}
	}
	return f
}

// NewObstacleField builds a field from explicit cells. Duplicates collapse.
func NewObstacleField(cells ...core.Cell) *ObstacleField {
	f := &ObstacleField{cells: make(map[core.Cell]struct{}, len(cells))}
	for _, c := range cells {
		f.cells[c] = struct{}{}
	}
	return f
}

// Contains reports whether c is an obstacle. A nil field contains nothing.
func (f *ObstacleField) Contains(c core.Cell) bool {
	if f == nil {
		return false
	}
	_, ok := f.cells[c]
	return ok
}

// Len returns the number of obstacle cells.
func (f *ObstacleField) Len() int {
	if f == nil {
		return 0
	}
	return len(f.cells)
}

// Cells returns a copy of the obstacle cells sorted row by row.
func (f *ObstacleField) Cells() []core.Cell {
	if f == nil {
		return nil
	}
	cells := make([]core.Cell, 0, len(f.cells))
	for c := range f.cells {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
