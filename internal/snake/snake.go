// Package snake implements the game-state and tick engine: the snake itself,
// obstacles, food placement and the session state machine.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// MoveResult is the outcome of a single move attempt.
type MoveResult int

const (
	Continued MoveResult = iota
	Blocked
)

func (r MoveResult) String() string {
	if r == Blocked {
		return "blocked"
	}
	return "continued"
}

// BlockReason tells what stopped the snake.
type BlockReason int

const (
	ReasonNone BlockReason = iota
	ReasonWall
	ReasonSelf
	ReasonObstacle
)

func (r BlockReason) String() string {
	switch r {
	case ReasonWall:
		return "hit the wall"
	case ReasonSelf:
		return "bit itself"
	case ReasonObstacle:
		return "hit an obstacle"
	default:
		return ""
	}
}

// Snake is an ordered body of cells, head first, plus buffered steering state.
type Snake struct {
	grid      core.Grid
	body      []core.Cell // Head at index 0
	committed core.Direction
	pending   core.Direction // Applied on the next move
	growing   bool           // If true, the tail stays on the next move
}

// NewSnake creates a one-segment snake at start heading in dir.
func NewSnake(grid core.Grid, start core.Cell, dir core.Direction) *Snake {
	if dir == core.DirNone {
		dir = core.DirRight
	}
	return &Snake{
		grid:      grid,
		body:      []core.Cell{start},
		committed: dir,
		pending:   dir,
	}
}

// SetPendingDirection buffers d for the next move.
// Reversals of the committed direction are ignored, as is DirNone.
func (s *Snake) SetPendingDirection(d core.Direction) {
	if d == core.DirNone || d.IsOpposite(s.committed) {
		return
	}
	s.pending = d
}

// MarkGrowth keeps the tail in place on the next successful move.
func (s *Snake) MarkGrowth() {
	s.growing = true
}

// NextHead returns the cell the head would enter on the next move.
func (s *Snake) NextHead() core.Cell {
	return s.Head().Add(s.pending)
}

// Move advances the snake one cell in the pending direction.
// On Blocked the body and committed direction are left untouched.
func (s *Snake) Move(obstacles CellSet) (MoveResult, BlockReason) {
	newHead := s.NextHead()

	if !s.grid.InBounds(newHead) {
		return Blocked, ReasonWall
	}

	// The tail vacates this tick unless growth is pending.
	checkLen := len(s.body)
	if !s.growing {
		checkLen--
	}
	for i := range checkLen {
		if s.body[i] == newHead {
			return Blocked, ReasonSelf
		}
	}

	if obstacles != nil && obstacles.Contains(newHead) {
		return Blocked, ReasonObstacle
	}

	s.body = append([]core.Cell{newHead}, s.body...)
	if s.growing {
		s.growing = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	s.committed = s.pending
	return Continued, ReasonNone
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Cell {
	body := make([]core.Cell, len(s.body))
	copy(body, s.body)
	return body
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Direction returns the direction applied by the last successful move.
func (s *Snake) Direction() core.Direction {
	return s.committed
}

// PendingDirection returns the direction the next move will use.
func (s *Snake) PendingDirection() core.Direction {
	return s.pending
}

// GrowthPending reports whether the next move keeps the tail.
func (s *Snake) GrowthPending() bool {
	return s.growing
}
