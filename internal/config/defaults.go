package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 24,
		},
		Obstacles: ObstaclesConfig{
			Count: 10,
		},
		Speed: SpeedConfig{
			TickRate: 10,
		},
		Spawn: SpawnConfig{
			RetryBudget: 1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
