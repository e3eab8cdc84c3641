package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Extent:     3,
			WideExtent: 30,
			CellWidth:  2,
		},
		Timing: SnakeTiming{
			MovePeriod: 0.3,
			PreGame:    3.0,
			PostGame:   4.0,
		},
		Spawn: SnakeSpawn{
			Direction: "up",
			Snake: []Point{
				{X: 0, Y: 2},
				{X: 0, Y: 1},
				{X: 0, Y: 0},
			},
			Food: Point{X: -3, Y: 2},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake", "snake_wide":
		return defaultSnakeYAML
	default:
		return nil
	}
}
