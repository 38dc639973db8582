package snake

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestSession(t *testing.T, seed int64, settings Settings) *Session {
	t.Helper()
	return NewSession(settings, rand.New(rand.NewSource(seed)))
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, 42, DefaultSettings())
	snap := s.Snapshot()

	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Zero(t, snap.Score)
	assert.Equal(t, []core.Cell{{X: 15, Y: 12}}, snap.Snake)
	assert.Len(t, snap.Obstacles, 10)
	assert.NotEqual(t, core.DirNone, snap.Direction)

	require.True(t, snap.Grid.InBounds(snap.Food))
	assert.NotContains(t, snap.Obstacles, snap.Food)
	assert.NotContains(t, snap.Snake, snap.Food)
}

func TestTickMovesWithoutEating(t *testing.T) {
	settings := DefaultSettings()
	settings.ObstacleCount = 0
	s := newTestSession(t, 1, settings)

	s.snake = NewSnake(settings.Grid, core.Cell{X: 15, Y: 12}, core.DirRight)
	s.food.pos = core.Cell{X: 0, Y: 0}

	result := s.Tick(core.DirRight)

	require.Equal(t, Continued, result)
	snap := s.Snapshot()
	assert.Equal(t, []core.Cell{{X: 16, Y: 12}}, snap.Snake)
	assert.Zero(t, snap.Score)
	assert.Equal(t, core.Cell{X: 0, Y: 0}, snap.Food)
	assert.Equal(t, uint64(1), snap.Tick)
}

func TestTickEatsAndGrows(t *testing.T) {
	settings := DefaultSettings()
	s := newTestSession(t, 2, settings)

	s.obstacles = NewObstacleField(core.Cell{X: 0, Y: 0}, core.Cell{X: 20, Y: 20}, core.Cell{X: 7, Y: 5})
	s.snake = newTestSnake(settings.Grid, core.DirRight, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5})
	s.food.pos = core.Cell{X: 6, Y: 5}

	result := s.Tick(core.DirRight)

	require.Equal(t, Continued, result)
	snap := s.Snapshot()
	assert.Equal(t, []core.Cell{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, snap.Snake)
	assert.Equal(t, 1, snap.Score)
	assert.False(t, s.snake.GrowthPending())

	require.True(t, settings.Grid.InBounds(snap.Food))
	assert.NotContains(t, snap.Snake, snap.Food)
	assert.NotContains(t, snap.Obstacles, snap.Food)
}

func TestTickIntoObstacleEndsGame(t *testing.T) {
	settings := DefaultSettings()
	s := newTestSession(t, 3, settings)

	s.obstacles = NewObstacleField(core.Cell{X: 6, Y: 5})
	s.snake = newTestSnake(settings.Grid, core.DirRight, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5})
	s.food.pos = core.Cell{X: 0, Y: 0}
	before := s.snake.Body()

	result := s.Tick(core.DirNone)

	assert.Equal(t, Blocked, result)
	snap := s.Snapshot()
	assert.Equal(t, PhaseGameOver, snap.Phase)
	assert.Equal(t, ReasonObstacle, snap.Reason)
	assert.Equal(t, before, snap.Snake)

	// Further ticks are no-ops.
	s.Tick(core.DirUp)
	assert.Equal(t, snap, s.Snapshot())
}

func TestTickWallEndsGame(t *testing.T) {
	settings := DefaultSettings()
	settings.ObstacleCount = 0
	s := newTestSession(t, 4, settings)
	s.snake = NewSnake(settings.Grid, core.Cell{X: 29, Y: 3}, core.DirRight)
	s.food.pos = core.Cell{X: 0, Y: 0}

	s.Tick(core.DirNone)

	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, ReasonWall, s.Snapshot().Reason)
}

func TestSteerIgnoresReversal(t *testing.T) {
	settings := DefaultSettings()
	settings.ObstacleCount = 0
	s := newTestSession(t, 5, settings)
	s.snake = NewSnake(settings.Grid, core.Cell{X: 10, Y: 10}, core.DirRight)
	s.food.pos = core.Cell{X: 0, Y: 0}

	s.Steer(core.DirLeft)
	s.Tick(core.DirNone)

	assert.Equal(t, core.Cell{X: 11, Y: 10}, s.Snapshot().Head())
}

func TestRestartAfterGameOver(t *testing.T) {
	settings := DefaultSettings()
	s := newTestSession(t, 6, settings)
	s.snake = NewSnake(settings.Grid, core.Cell{X: 0, Y: 0}, core.DirUp)
	s.score = 7
	s.Tick(core.DirNone)
	require.Equal(t, PhaseGameOver, s.Phase())
	oldObstacles := s.Snapshot().Obstacles

	fresh := s.Restart()

	snap := fresh.Snapshot()
	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Tick)
	assert.Equal(t, ReasonNone, snap.Reason)
	assert.Len(t, snap.Obstacles, settings.ObstacleCount)
	assert.NotEqual(t, oldObstacles, snap.Obstacles)
	assert.Equal(t, []core.Cell{settings.Grid.Center()}, snap.Snake)

	// The old session is untouched and shares nothing with the new one.
	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, 7, s.Score())
	assert.NotSame(t, s.snake, fresh.snake)
	assert.NotSame(t, s.obstacles, fresh.obstacles)
	assert.NotSame(t, s.food, fresh.food)
	assert.NotSame(t, s.rng, fresh.rng)
}

func TestDeterminism(t *testing.T) {
	inputs := map[int]core.Direction{3: core.DirUp, 6: core.DirLeft, 9: core.DirDown, 14: core.DirRight}

	run := func() Snapshot {
		s := newTestSession(t, 12345, DefaultSettings())
		for i := 0; i < 40; i++ {
			s.Tick(inputs[i])
		}
		return s.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestBodyStaysDistinctWhilePlaying(t *testing.T) {
	settings := Settings{Grid: core.NewGrid(12, 10), ObstacleCount: 8, RetryBudget: 50}

	for seed := int64(1); seed <= 100; seed++ {
		rng := rand.New(rand.NewSource(seed * 31))
		s := newTestSession(t, seed, settings)

		for i := 0; i < 300 && s.Phase() == PhasePlaying; i++ {
			// Bias toward food so the snake grows.
			dir := core.AllDirections[rng.Intn(4)]
			if food := s.Snapshot().Food; food != core.NoCell && rng.Intn(3) > 0 {
				head := s.Snapshot().Head()
				switch {
				case food.X > head.X:
					dir = core.DirRight
				case food.X < head.X:
					dir = core.DirLeft
				case food.Y > head.Y:
					dir = core.DirDown
				default:
					dir = core.DirUp
				}
			}
			s.Tick(dir)

			snap := s.Snapshot()
			if snap.Phase != PhasePlaying {
				break
			}
			seen := make(map[core.Cell]bool, len(snap.Snake))
			for _, c := range snap.Snake {
				require.False(t, seen[c], "seed %d tick %d: duplicate segment %v", seed, i, c)
				require.True(t, settings.Grid.InBounds(c))
				seen[c] = true
			}
			if snap.Food != core.NoCell {
				require.False(t, seen[snap.Food], "seed %d: food under snake", seed)
				require.False(t, s.obstacles.Contains(snap.Food), "seed %d: food on obstacle", seed)
			}
			require.Equal(t, snap.Score+1, len(snap.Snake))
		}
	}
}
