package world

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Layout is the arrangement of a freshly spawned run.
type Layout struct {
	Snake     []GridPosition // Head first
	Food      GridPosition
	Direction Direction
}

// DefaultLayout is the classic three-segment start: tail at the origin,
// heading up, with food off to the left.
func DefaultLayout() Layout {
	return Layout{
		Snake:     []GridPosition{Pos(0, 2), Pos(0, 1), Pos(0, 0)},
		Food:      Pos(-3, 2),
		Direction: Up,
	}
}

// Validate checks the layout against a grid: at least three distinct,
// orthogonally contiguous cells inside the grid and food on a free cell.
func (l Layout) Validate(g Grid) error {
	if len(l.Snake) < 3 {
		return errors.WithMessagef(ErrInvalidLayout, "snake needs at least 3 cells, got %d", len(l.Snake))
	}
	seen := make(map[GridPosition]bool, len(l.Snake))
	for i, p := range l.Snake {
		if !g.Contains(p) {
			return errors.WithMessagef(ErrInvalidLayout, "snake cell %s is outside the grid", p)
		}
		if seen[p] {
			return errors.WithMessagef(ErrInvalidLayout, "snake cell %s repeats", p)
		}
		seen[p] = true
		if i > 0 && manhattan(p, l.Snake[i-1]) != 1 {
			return errors.WithMessagef(ErrInvalidLayout, "snake cells %s and %s are not adjacent", l.Snake[i-1], p)
		}
	}
	if !g.Contains(l.Food) {
		return errors.WithMessagef(ErrInvalidLayout, "food %s is outside the grid", l.Food)
	}
	if seen[l.Food] {
		return errors.WithMessagef(ErrInvalidLayout, "food %s overlaps the snake", l.Food)
	}
	return nil
}

func manhattan(a, b GridPosition) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// World is the mutable simulation state of one session: the segment arena,
// the snake, the food and the free cell set.
type World struct {
	grid   Grid
	layout Layout
	rng    *rand.Rand
	logger *log.Logger

	segments arena
	snake    *Snake // nil while despawned
	food     Food
	free     *FreeSet
}

// New creates an empty world. The layout must already be valid for the grid.
// A nil logger discards output.
func New(g Grid, layout Layout, rng *rand.Rand, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		grid:   g,
		layout: layout,
		rng:    rng,
		logger: logger,
		free:   NewFreeSet(g),
	}
}

// Grid returns the playing field.
func (w *World) Grid() Grid {
	return w.grid
}

// Spawn creates the snake and food from the layout and rebuilds the free
// set. Any previous run is discarded first.
func (w *World) Spawn() error {
	if err := w.layout.Validate(w.grid); err != nil {
		return err
	}
	w.Despawn()
	w.free.Reset(w.grid)

	snake := &Snake{
		Body:          make([]SegmentID, 0, len(w.layout.Snake)),
		Direction:     w.layout.Direction,
		LastDirection: w.layout.Direction,
	}
	last := len(w.layout.Snake) - 1
	for i, p := range w.layout.Snake {
		role := RoleBody
		switch i {
		case 0:
			role = RoleHead
		case last:
			role = RoleTail
		}
		snake.Body = append(snake.Body, w.segments.alloc(p, role))
		w.free.Remove(p)
	}
	w.snake = snake

	w.food = Food{Pos: w.layout.Food, Present: true}
	w.free.Remove(w.layout.Food)

	w.logger.Debug("spawned", "length", snake.Len(), "food", w.food.Pos, "free", w.free.Len())
	return nil
}

// Despawn removes the snake, its segments and the food.
func (w *World) Despawn() {
	if w.snake == nil {
		return
	}
	w.logger.Debug("despawned", "length", w.snake.Len())
	w.snake = nil
	w.segments.reset()
	w.food = Food{}
}

// Spawned reports whether a snake is live.
func (w *World) Spawned() bool {
	return w.snake != nil
}

// Snake returns the live snake, nil while despawned.
func (w *World) Snake() *Snake {
	return w.snake
}

// Food returns the food state.
func (w *World) Food() Food {
	return w.food
}

// Free returns the free cell set.
func (w *World) Free() *FreeSet {
	return w.free
}

// Segment returns a copy of the segment record for id.
func (w *World) Segment(id SegmentID) (Segment, error) {
	seg, err := w.segments.get(id)
	if err != nil {
		return Segment{}, err
	}
	return *seg, nil
}

// HeadPos returns the head cell.
func (w *World) HeadPos() (GridPosition, error) {
	if w.snake == nil {
		return GridPosition{}, ErrNotSpawned
	}
	id, err := w.snake.Head()
	if err != nil {
		return GridPosition{}, err
	}
	seg, err := w.segments.get(id)
	if err != nil {
		return GridPosition{}, err
	}
	return seg.Pos, nil
}

// Segments returns the snake's segments head first.
func (w *World) Segments() ([]Segment, error) {
	if w.snake == nil {
		return nil, nil
	}
	out := make([]Segment, 0, w.snake.Len())
	for _, id := range w.snake.Body {
		seg, err := w.segments.get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *seg)
	}
	return out, nil
}

// EntityKind classifies what occupies a cell for presentation.
type EntityKind int

const (
	KindWall EntityKind = iota
	KindFood
	KindTail
	KindBody
	KindHead
)

// Entity is a positioned thing the presentation layer draws.
type Entity struct {
	Kind EntityKind
	Pos  GridPosition
}

// Entities lists walls, food and snake segments in draw order.
func (w *World) Entities() []Entity {
	walls := w.grid.Walls()
	out := make([]Entity, 0, len(walls)+w.grid.Size())
	for _, p := range walls {
		out = append(out, Entity{Kind: KindWall, Pos: p})
	}
	if w.food.Present {
		out = append(out, Entity{Kind: KindFood, Pos: w.food.Pos})
	}
	segs, err := w.Segments()
	if err != nil {
		w.logger.Error("cannot list segments", "err", err)
		return out
	}
	for i := len(segs) - 1; i >= 0; i-- {
		kind := KindBody
		switch segs[i].Role {
		case RoleHead:
			kind = KindHead
		case RoleTail:
			kind = KindTail
		}
		out = append(out, Entity{Kind: kind, Pos: segs[i].Pos})
	}
	return out
}
