// Package world holds the snake simulation state and the systems that
// mutate it: spawn and despawn, movement and growth, boundary collision and
// the direction input rule.
//
// A World is not safe for concurrent use. The owning session calls its
// systems in a fixed order once per frame.
package world

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// GridPosition is a cell coordinate. The origin is the center of the grid
// and y grows upward.
type GridPosition struct {
	X, Y int
}

// Pos is shorthand for building a GridPosition.
func Pos(x, y int) GridPosition {
	return GridPosition{X: x, Y: y}
}

// Step returns the neighbouring cell in direction d.
func (p GridPosition) Step(d Direction) GridPosition {
	switch d {
	case Up:
		return GridPosition{X: p.X, Y: p.Y + 1}
	case Down:
		return GridPosition{X: p.X, Y: p.Y - 1}
	case Left:
		return GridPosition{X: p.X - 1, Y: p.Y}
	case Right:
		return GridPosition{X: p.X + 1, Y: p.Y}
	}
	return p
}

func (p GridPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a movement direction on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in input priority order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses the lower-case name produced by Direction.String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return Up, errors.Errorf("unknown direction %q", s)
}

// DirectionSet is the set of directions pressed during one frame.
type DirectionSet uint8

// With returns the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | 1<<uint(d)
}

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<uint(d)) != 0
}

// Grid is the square playing field of cells with |x| <= Extent and
// |y| <= Extent. Walls sit on the ring just outside it.
type Grid struct {
	Extent int
}

// Side returns the number of cells along one axis.
func (g Grid) Side() int {
	return 2*g.Extent + 1
}

// Size returns the total number of cells.
func (g Grid) Size() int {
	return g.Side() * g.Side()
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p GridPosition) bool {
	return p.X >= -g.Extent && p.X <= g.Extent && p.Y >= -g.Extent && p.Y <= g.Extent
}

// Cells returns every cell, bottom row first, left to right.
func (g Grid) Cells() []GridPosition {
	cells := make([]GridPosition, 0, g.Size())
	for y := -g.Extent; y <= g.Extent; y++ {
		for x := -g.Extent; x <= g.Extent; x++ {
			cells = append(cells, Pos(x, y))
		}
	}
	return cells
}

// Walls returns the ring of wall cells surrounding the grid.
func (g Grid) Walls() []GridPosition {
	w := g.Extent + 1
	walls := make([]GridPosition, 0, 8*w)
	for x := -w; x <= w; x++ {
		walls = append(walls, Pos(x, -w), Pos(x, w))
	}
	for y := -w + 1; y < w; y++ {
		walls = append(walls, Pos(-w, y), Pos(w, y))
	}
	return walls
}
