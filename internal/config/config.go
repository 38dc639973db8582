// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for a game.
type SnakeConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Speed     SpeedConfig     `yaml:"speed"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Seed      int64           `yaml:"seed"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstaclesConfig defines how many static obstacles are placed per game.
type ObstaclesConfig struct {
	Count int `yaml:"count"`
}

// SpeedConfig defines the fixed simulation rate.
type SpeedConfig struct {
	TickRate int `yaml:"tick_rate"` // Snake moves per second
}

// SpawnConfig bounds random placement of obstacles and food.
type SpawnConfig struct {
	RetryBudget int `yaml:"retry_budget"`
}

// Limits enforced by Validate.
const (
	MinGridSize = 3
	MaxTickRate = 120
)

var (
	ErrGridTooSmall       = errors.New("grid too small")
	ErrTooManyObstacles   = errors.New("too many obstacles")
	ErrInvalidTickRate    = errors.New("invalid tick rate")
	ErrInvalidRetryBudget = errors.New("invalid retry budget")
)

// Validate checks that the config describes a playable game.
// Obstacles must leave room for at least the snake and one food cell.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < MinGridSize || c.Grid.Height < MinGridSize {
		return fmt.Errorf("config: %w: %dx%d, need at least %dx%d",
			ErrGridTooSmall, c.Grid.Width, c.Grid.Height, MinGridSize, MinGridSize)
	}
	area := c.Grid.Width * c.Grid.Height
	if c.Obstacles.Count < 0 || c.Obstacles.Count >= area-1 {
		return fmt.Errorf("config: %w: %d on a %d-cell grid", ErrTooManyObstacles, c.Obstacles.Count, area)
	}
	if c.Speed.TickRate < 1 || c.Speed.TickRate > MaxTickRate {
		return fmt.Errorf("config: %w: %d, must be in [1, %d]", ErrInvalidTickRate, c.Speed.TickRate, MaxTickRate)
	}
	if c.Spawn.RetryBudget < 1 {
		return fmt.Errorf("config: %w: %d", ErrInvalidRetryBudget, c.Spawn.RetryBudget)
	}
	return nil
}

// Settings converts the config into session settings.
func (c SnakeConfig) Settings() snake.Settings {
	return snake.Settings{
		Grid:          core.NewGrid(c.Grid.Width, c.Grid.Height),
		ObstacleCount: c.Obstacles.Count,
		RetryBudget:   c.Spawn.RetryBudget,
	}
}

// Runtime builds the driver config for a screenW×screenH terminal.
func (c SnakeConfig) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: c.Speed.TickRate,
		Seed:     c.Seed,
	}
}
