package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is a read-only copy of the session state for rendering and tests.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Grid      core.Grid
	Snake     []core.Cell // Head first
	Direction core.Direction
	Food      core.Cell // core.NoCell when the board is full
	Obstacles []core.Cell
	Reason    BlockReason // Why the game ended, ReasonNone while playing
}

// Snapshot captures the current state. All slices are copies.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Phase:     s.phase,
		Score:     s.score,
		Grid:      s.settings.Grid,
		Snake:     s.snake.Body(),
		Direction: s.snake.Direction(),
		Food:      s.food.Position(),
		Obstacles: s.obstacles.Cells(),
		Reason:    s.reason,
	}
}

// Head returns the head cell of the snapshot's snake.
func (snap Snapshot) Head() core.Cell {
	if len(snap.Snake) == 0 {
		return core.NoCell
	}
	return snap.Snake[0]
}
