package world

import (
	"github.com/pkg/errors"
)

// EndReason says why a run ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndSelfCollision
	EndOutOfBounds
	EndBoardFilled
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndSelfCollision:
		return "self_collision"
	case EndOutOfBounds:
		return "out_of_bounds"
	case EndBoardFilled:
		return "board_filled"
	default:
		return "unknown"
	}
}

// MoveKind is what a movement tick did to the snake.
type MoveKind int

const (
	MoveBlocked MoveKind = iota // Self collision, nothing mutated
	MoveShifted                 // Normal move, length unchanged
	MoveGrew                    // Food eaten, length +1
)

// Outcome reports the result of one movement tick.
type Outcome struct {
	Kind MoveKind
	Head GridPosition // Head cell after the tick
	End  EndReason    // Non-zero when the tick ended the run
}

// Advance moves the snake one cell in its pending direction.
//
// Self collision with a body segment is checked before food, so a fatal
// move is never masked by a coincident pickup. The tail is not a body
// segment: moving into the cell the tail is leaving is allowed.
func (w *World) Advance() (Outcome, error) {
	if w.snake == nil {
		return Outcome{}, ErrNotSpawned
	}
	s := w.snake

	headID, err := s.Head()
	if err != nil {
		return Outcome{}, err
	}
	head, err := w.segments.get(headID)
	if err != nil {
		return Outcome{}, err
	}

	next := head.Pos.Step(s.Direction)
	s.LastDirection = s.Direction

	for _, id := range s.Body {
		seg, err := w.segments.get(id)
		if err != nil {
			return Outcome{}, err
		}
		if seg.Role == RoleBody && seg.Pos == next {
			return Outcome{Kind: MoveBlocked, Head: head.Pos, End: EndSelfCollision}, nil
		}
	}

	if w.food.Present && next == w.food.Pos {
		return w.grow(head, next), nil
	}
	if err := w.shift(head, next); err != nil {
		return Outcome{}, errors.WithMessage(err, "shift snake")
	}
	return Outcome{Kind: MoveShifted, Head: next}, nil
}

// grow pushes a new head onto the food cell and relocates the food.
func (w *World) grow(head *Segment, next GridPosition) Outcome {
	head.Role = RoleBody
	w.snake.pushFront(w.segments.alloc(next, RoleHead))

	out := Outcome{Kind: MoveGrew, Head: next}
	pos, ok := w.free.Random(w.rng)
	if !ok {
		// Nowhere left to put food: the snake has filled the board.
		w.food.Present = false
		out.End = EndBoardFilled
		return out
	}
	w.food.Pos = pos
	w.free.Remove(pos)
	return out
}

// shift recycles the tail segment as the new head.
func (w *World) shift(head *Segment, next GridPosition) error {
	s := w.snake
	tailID, err := s.Tail()
	if err != nil {
		return err
	}
	tail, err := w.segments.get(tailID)
	if err != nil {
		return err
	}

	w.free.Add(tail.Pos)
	tail.Pos = next
	head.Role = RoleBody
	tail.Role = RoleHead
	s.rotate()

	newTailID, err := s.Tail()
	if err != nil {
		return err
	}
	newTail, err := w.segments.get(newTailID)
	if err != nil {
		return err
	}
	newTail.Role = RoleTail

	w.free.Remove(next)
	return nil
}

// CheckBounds reports EndOutOfBounds when the head has left the grid.
func (w *World) CheckBounds() (EndReason, error) {
	pos, err := w.HeadPos()
	if err != nil {
		return EndNone, err
	}
	if !w.grid.Contains(pos) {
		return EndOutOfBounds, nil
	}
	return EndNone, nil
}
