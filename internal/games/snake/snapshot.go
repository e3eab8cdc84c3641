package snake

import "github.com/vovakirdan/gridsnake/internal/games/snake/world"

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Frame       uint64
	Phase       string
	Length      int
	Head        world.GridPosition
	Dir         world.Direction
	Food        world.GridPosition
	FoodPresent bool
	FreeCells   int
	Runs        int
	LastEnd     world.EndReason
	FoodEaten   int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:     s.frames,
		Phase:     s.Phase().String(),
		Length:    s.Length(),
		Runs:      s.machine.Runs(),
		LastEnd:   s.machine.LastEnd(),
		FoodEaten: s.eaten,
	}
	if !s.world.Spawned() {
		return snap
	}
	if head, err := s.world.HeadPos(); err == nil {
		snap.Head = head
	}
	snap.Dir = s.world.Snake().Direction
	food := s.world.Food()
	snap.Food = food.Pos
	snap.FoodPresent = food.Present
	snap.FreeCells = s.world.Free().Len()
	return snap
}

// Snapshot returns the current game snapshot, zero if no session is running.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}
