// Package config provides YAML-based configuration for the snake game.
// Configs are loaded from files with fallback to embedded defaults.
package config

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/games/snake/phase"
	"github.com/vovakirdan/gridsnake/internal/games/snake/world"
)

// Allowed movement period range, in seconds.
const (
	MinMovePeriod = 0.3
	MaxMovePeriod = 0.5
)

// SnakeConfig holds all configurable parameters for the snake game.
type SnakeConfig struct {
	Grid   SnakeGrid   `yaml:"grid"`
	Timing SnakeTiming `yaml:"timing"`
	Spawn  SnakeSpawn  `yaml:"spawn"`
}

// SnakeGrid defines the playfield.
type SnakeGrid struct {
	Extent     int `yaml:"extent"`      // Cells span -Extent..Extent on both axes
	WideExtent int `yaml:"wide_extent"` // Extent of the wide variant
	CellWidth  int `yaml:"cell_width"`  // Terminal columns per cell
}

// SnakeTiming defines phase durations and movement speed, in seconds.
type SnakeTiming struct {
	MovePeriod float64 `yaml:"move_period"`
	PreGame    float64 `yaml:"pre_game"`
	PostGame   float64 `yaml:"post_game"`
}

// SnakeSpawn defines what PreGame places on the board.
type SnakeSpawn struct {
	Direction string  `yaml:"direction"`
	Snake     []Point `yaml:"snake"` // Head first
	Food      Point   `yaml:"food"`
}

// Point is a grid cell in config files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Extent < 1 {
		return fmt.Errorf("grid.extent must be at least 1, got %d", c.Grid.Extent)
	}
	if c.Grid.WideExtent != 0 && c.Grid.WideExtent < c.Grid.Extent {
		return fmt.Errorf("grid.wide_extent %d is smaller than grid.extent %d", c.Grid.WideExtent, c.Grid.Extent)
	}
	if c.Grid.CellWidth < 1 {
		return fmt.Errorf("grid.cell_width must be at least 1, got %d", c.Grid.CellWidth)
	}
	if c.Timing.MovePeriod < MinMovePeriod || c.Timing.MovePeriod > MaxMovePeriod {
		return fmt.Errorf("timing.move_period %.2f outside %.1f-%.1f", c.Timing.MovePeriod, MinMovePeriod, MaxMovePeriod)
	}
	if c.Timing.PreGame <= 0 || c.Timing.PostGame <= 0 {
		return fmt.Errorf("timing.pre_game and timing.post_game must be positive")
	}
	layout, err := c.Layout()
	if err != nil {
		return err
	}
	if err := layout.Validate(c.WorldGrid()); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	return nil
}

// ApplyWideVariant switches the config to the wide grid. The spawn layout is
// kept, since it fits any grid that fits the default one.
func ApplyWideVariant(cfg *SnakeConfig) {
	if cfg.Grid.WideExtent > cfg.Grid.Extent {
		cfg.Grid.Extent = cfg.Grid.WideExtent
	}
}

// WorldGrid returns the playfield described by the config.
func (c SnakeConfig) WorldGrid() world.Grid {
	return world.Grid{Extent: c.Grid.Extent}
}

// Layout converts the spawn section into a world layout.
func (c SnakeConfig) Layout() (world.Layout, error) {
	dir, err := world.ParseDirection(c.Spawn.Direction)
	if err != nil {
		return world.Layout{}, fmt.Errorf("spawn.direction: %w", err)
	}
	cells := make([]world.GridPosition, len(c.Spawn.Snake))
	for i, p := range c.Spawn.Snake {
		cells[i] = world.Pos(p.X, p.Y)
	}
	return world.Layout{
		Snake:     cells,
		Food:      world.Pos(c.Spawn.Food.X, c.Spawn.Food.Y),
		Direction: dir,
	}, nil
}

// PhaseConfig returns the phase timings.
func (c SnakeConfig) PhaseConfig() phase.Config {
	return phase.Config{
		PreGame:    c.Timing.PreGame,
		PostGame:   c.Timing.PostGame,
		MovePeriod: c.Timing.MovePeriod,
	}
}
