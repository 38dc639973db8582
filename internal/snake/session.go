package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the session-level state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Settings configures a session. A restart reuses the same settings.
type Settings struct {
	Grid          core.Grid
	ObstacleCount int
	RetryBudget   int
}

// DefaultSettings mirrors the classic 600x480 window with 20px cells.
func DefaultSettings() Settings {
	return Settings{
		Grid:          core.NewGrid(30, 24),
		ObstacleCount: 10,
		RetryBudget:   DefaultRetryBudget,
	}
}

// Session is one playthrough. It is not safe for concurrent use; the driver
// owns it and calls Tick from a single goroutine.
type Session struct {
	settings  Settings
	rng       *rand.Rand
	obstacles *ObstacleField
	snake     *Snake
	food      *FoodSpawner
	score     int
	phase     Phase
	reason    BlockReason
	tick      uint64
}

// NewSession builds obstacles, a snake at the grid center facing a random
// direction, and places the first food.
func NewSession(settings Settings, rng *rand.Rand) *Session {
	grid := settings.Grid
	s := &Session{
		settings:  settings,
		rng:       rng,
		obstacles: GenerateObstacles(grid, settings.ObstacleCount, rng, settings.RetryBudget),
		snake:     NewSnake(grid, grid.Center(), core.AllDirections[rng.Intn(len(core.AllDirections))]),
		food:      NewFoodSpawner(grid, rng, settings.RetryBudget),
		phase:     PhasePlaying,
	}
	s.food.Respawn(s.occupied())
	return s
}

// Restart returns a fresh session with the same settings. The receiver is left
// as it was; the new session draws from its own generator seeded from ours.
func (s *Session) Restart() *Session {
	return NewSession(s.settings, rand.New(rand.NewSource(s.rng.Int63())))
}

// Steer buffers a direction change for the next tick. Last write wins.
func (s *Session) Steer(d core.Direction) {
	if s.phase == PhaseGameOver {
		return
	}
	s.snake.SetPendingDirection(d)
}

// Tick advances the game by one step. req may be core.DirNone.
func (s *Session) Tick(req core.Direction) MoveResult {
	if s.phase == PhaseGameOver {
		return Blocked
	}
	s.tick++

	s.snake.SetPendingDirection(req)

	// Food never shares a cell with the body, so growing early does not change
	// the collision outcome; it only lets the tail stay on the eating move.
	eating := s.food.Present() && s.snake.NextHead() == s.food.Position()
	if eating {
		s.snake.MarkGrowth()
	}

	result, reason := s.snake.Move(s.obstacles)
	if result == Blocked {
		s.phase = PhaseGameOver
		s.reason = reason
		return Blocked
	}

	if eating {
		s.score++
		s.food.Respawn(s.occupied())
	}
	return Continued
}

// occupied returns the snake body and obstacles as one set.
func (s *Session) occupied() map[core.Cell]bool {
	occ := make(map[core.Cell]bool, s.snake.Len()+s.obstacles.Len())
	for _, c := range s.snake.body {
		occ[c] = true
	}
	for c := range s.obstacles.cells {
		occ[c] = true
	}
	return occ
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the number of food items eaten.
func (s *Session) Score() int {
	return s.score
}

// Settings returns the settings the session was built with.
func (s *Session) Settings() Settings {
	return s.settings
}
