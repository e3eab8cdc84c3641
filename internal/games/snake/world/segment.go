package world

import "github.com/pkg/errors"

// Role tags a segment's place in the body.
type Role int

const (
	RoleHead Role = iota
	RoleBody
	RoleTail
)

func (r Role) String() string {
	switch r {
	case RoleHead:
		return "head"
	case RoleBody:
		return "body"
	case RoleTail:
		return "tail"
	default:
		return "unknown"
	}
}

// SegmentID addresses a segment record in the arena. Ids stay valid until
// the arena is reset on despawn.
type SegmentID int

// Segment is one cell of the snake.
type Segment struct {
	Pos  GridPosition
	Role Role
}

// arena owns every segment record of the current run.
type arena struct {
	segments []Segment
}

func (a *arena) alloc(pos GridPosition, role Role) SegmentID {
	a.segments = append(a.segments, Segment{Pos: pos, Role: role})
	return SegmentID(len(a.segments) - 1)
}

func (a *arena) get(id SegmentID) (*Segment, error) {
	if id < 0 || int(id) >= len(a.segments) {
		return nil, errors.Wrapf(ErrUnknownSegment, "segment %d", id)
	}
	return &a.segments[id], nil
}

func (a *arena) reset() {
	a.segments = a.segments[:0]
}

// Snake is the ordered body plus the steering state.
type Snake struct {
	// Body lists segment ids head first, tail last.
	Body []SegmentID

	// Direction is the pending direction, set by input.
	Direction Direction

	// LastDirection is the direction applied on the most recent move.
	LastDirection Direction
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Head returns the id at the front of the body.
func (s *Snake) Head() (SegmentID, error) {
	if len(s.Body) == 0 {
		return 0, errors.WithMessage(ErrInconsistentBody, "empty body has no head")
	}
	return s.Body[0], nil
}

// Tail returns the id at the back of the body.
func (s *Snake) Tail() (SegmentID, error) {
	if len(s.Body) == 0 {
		return 0, errors.WithMessage(ErrInconsistentBody, "empty body has no tail")
	}
	return s.Body[len(s.Body)-1], nil
}

func (s *Snake) pushFront(id SegmentID) {
	s.Body = append(s.Body, 0)
	copy(s.Body[1:], s.Body)
	s.Body[0] = id
}

// rotate moves the tail id to the front, keeping the order of the rest.
func (s *Snake) rotate() {
	if len(s.Body) < 2 {
		return
	}
	last := s.Body[len(s.Body)-1]
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = last
}

// Food is the single pickup on the board. It is relocated on pickup and
// only goes absent when the board has no free cell left.
type Food struct {
	Pos     GridPosition
	Present bool
}
