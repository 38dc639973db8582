package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestSnake(grid core.Grid, dir core.Direction, body ...core.Cell) *Snake {
	s := NewSnake(grid, body[0], dir)
	s.body = append([]core.Cell(nil), body...)
	return s
}

func TestSnakeMoveContinues(t *testing.T) {
	grid := core.NewGrid(30, 24)
	s := NewSnake(grid, core.Cell{X: 15, Y: 12}, core.DirRight)

	result, reason := s.Move(nil)

	assert.Equal(t, Continued, result)
	assert.Equal(t, ReasonNone, reason)
	assert.Equal(t, []core.Cell{{X: 16, Y: 12}}, s.Body())
	assert.Equal(t, core.DirRight, s.Direction())
	assert.True(t, s.Occupies(core.Cell{X: 16, Y: 12}))
	assert.False(t, s.Occupies(core.Cell{X: 15, Y: 12}), "tail moved on")
}

func TestSnakeWallCollision(t *testing.T) {
	grid := core.NewGrid(10, 8)

	tests := []struct {
		name string
		dir  core.Direction
		body []core.Cell
	}{
		{"left edge single", core.DirLeft, []core.Cell{{X: 0, Y: 3}}},
		{"right edge long", core.DirRight, []core.Cell{{X: 9, Y: 3}, {X: 8, Y: 3}, {X: 7, Y: 3}, {X: 6, Y: 3}}},
		{"top edge", core.DirUp, []core.Cell{{X: 4, Y: 0}, {X: 4, Y: 1}}},
		{"bottom edge", core.DirDown, []core.Cell{{X: 4, Y: 7}, {X: 4, Y: 6}, {X: 4, Y: 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSnake(grid, tc.dir, tc.body...)
			before := s.Body()

			result, reason := s.Move(nil)

			assert.Equal(t, Blocked, result)
			assert.Equal(t, ReasonWall, reason)
			assert.Equal(t, before, s.Body())
		})
	}
}

func TestSnakeNoImmediateReversal(t *testing.T) {
	s := NewSnake(core.NewGrid(30, 24), core.Cell{X: 5, Y: 5}, core.DirRight)

	s.SetPendingDirection(core.DirLeft)
	assert.Equal(t, core.DirRight, s.PendingDirection(), "reversal must be ignored")

	s.SetPendingDirection(core.DirUp)
	s.SetPendingDirection(core.DirDown)
	assert.Equal(t, core.DirDown, s.PendingDirection(), "last write wins")

	s.SetPendingDirection(core.DirNone)
	assert.Equal(t, core.DirDown, s.PendingDirection())
}

func TestSnakeReversalCheckedAgainstCommitted(t *testing.T) {
	s := NewSnake(core.NewGrid(30, 24), core.Cell{X: 5, Y: 5}, core.DirRight)

	// Up is pending but Right is still committed, so Left stays a reversal.
	s.SetPendingDirection(core.DirUp)
	s.SetPendingDirection(core.DirLeft)
	assert.Equal(t, core.DirUp, s.PendingDirection())
}

func TestSnakeBlockedDoesNotCommit(t *testing.T) {
	s := NewSnake(core.NewGrid(10, 10), core.Cell{X: 5, Y: 0}, core.DirRight)
	s.SetPendingDirection(core.DirUp)

	result, _ := s.Move(nil)

	require.Equal(t, Blocked, result)
	assert.Equal(t, core.DirRight, s.Direction())
}

func TestSnakeGrowth(t *testing.T) {
	s := newTestSnake(core.NewGrid(30, 24), core.DirRight, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5})

	s.MarkGrowth()
	result, _ := s.Move(nil)

	require.Equal(t, Continued, result)
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.GrowthPending())

	result, _ = s.Move(nil)
	require.Equal(t, Continued, result)
	assert.Equal(t, 3, s.Len(), "growth is consumed by one move")
}

func TestSnakeSelfCollision(t *testing.T) {
	// Head at (5,5) moving right into (6,5), which is mid-body.
	s := newTestSnake(core.NewGrid(30, 24), core.DirUp,
		core.Cell{X: 5, Y: 5},
		core.Cell{X: 5, Y: 6},
		core.Cell{X: 6, Y: 6},
		core.Cell{X: 6, Y: 5},
		core.Cell{X: 6, Y: 4},
	)
	s.SetPendingDirection(core.DirRight)
	before := s.Body()

	result, reason := s.Move(nil)

	assert.Equal(t, Blocked, result)
	assert.Equal(t, ReasonSelf, reason)
	assert.Equal(t, before, s.Body())
}

func TestSnakeMayEnterVacatingTail(t *testing.T) {
	body := []core.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}

	t.Run("tail moves away", func(t *testing.T) {
		s := newTestSnake(core.NewGrid(10, 10), core.DirLeft, body...)
		s.SetPendingDirection(core.DirDown)

		result, _ := s.Move(nil)

		require.Equal(t, Continued, result)
		assert.Equal(t, []core.Cell{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}, s.Body())
	})

	t.Run("tail stays when growing", func(t *testing.T) {
		s := newTestSnake(core.NewGrid(10, 10), core.DirLeft, body...)
		s.SetPendingDirection(core.DirDown)
		s.MarkGrowth()

		result, reason := s.Move(nil)

		assert.Equal(t, Blocked, result)
		assert.Equal(t, ReasonSelf, reason)
	})
}

func TestSnakeObstacleCollision(t *testing.T) {
	s := NewSnake(core.NewGrid(10, 10), core.Cell{X: 3, Y: 3}, core.DirDown)
	obstacles := NewObstacleField(core.Cell{X: 3, Y: 4})

	result, reason := s.Move(obstacles)

	assert.Equal(t, Blocked, result)
	assert.Equal(t, ReasonObstacle, reason)
	assert.Equal(t, []core.Cell{{X: 3, Y: 3}}, s.Body())
}

func TestNewSnakeDefaultsDirection(t *testing.T) {
	s := NewSnake(core.NewGrid(10, 10), core.Cell{X: 3, Y: 3}, core.DirNone)
	assert.Equal(t, core.DirRight, s.Direction())
	assert.Equal(t, core.Cell{X: 4, Y: 3}, s.NextHead())
}
