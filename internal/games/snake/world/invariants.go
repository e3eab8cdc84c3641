package world

import "github.com/pkg/errors"

// CheckInvariants verifies the body roles and that the free set, the snake
// and the food partition the grid. A head that has just moved into the wall
// ring is outside the grid and is not counted; the boundary system ends the
// run on that same frame.
func (w *World) CheckInvariants() error {
	if w.snake == nil {
		return nil
	}
	segs, err := w.Segments()
	if err != nil {
		return err
	}
	if len(segs) < 3 {
		return errors.WithMessagef(ErrInconsistentBody, "length %d below spawn minimum", len(segs))
	}

	last := len(segs) - 1
	occupied := make(map[GridPosition]bool, len(segs))
	for i, seg := range segs {
		want := RoleBody
		switch i {
		case 0:
			want = RoleHead
		case last:
			want = RoleTail
		}
		if seg.Role != want {
			return errors.WithMessagef(ErrInconsistentBody, "segment %d at %s is %s, want %s", i, seg.Pos, seg.Role, want)
		}
		if occupied[seg.Pos] {
			return errors.WithMessagef(ErrInconsistentBody, "two segments share %s", seg.Pos)
		}
		if !w.grid.Contains(seg.Pos) {
			if i != 0 {
				return errors.WithMessagef(ErrInconsistentBody, "segment %d at %s is outside the grid", i, seg.Pos)
			}
			continue
		}
		occupied[seg.Pos] = true
		if w.free.Contains(seg.Pos) {
			return errors.WithMessagef(ErrBrokenPartition, "snake cell %s is also free", seg.Pos)
		}
	}

	count := len(occupied) + w.free.Len()
	if w.food.Present {
		if occupied[w.food.Pos] {
			return errors.WithMessagef(ErrBrokenPartition, "food %s is under the snake", w.food.Pos)
		}
		if w.free.Contains(w.food.Pos) || !w.grid.Contains(w.food.Pos) {
			return errors.WithMessagef(ErrBrokenPartition, "food %s is not an occupied grid cell", w.food.Pos)
		}
		count++
	}
	for _, p := range w.free.cells {
		if !w.grid.Contains(p) {
			return errors.WithMessagef(ErrBrokenPartition, "free cell %s is outside the grid", p)
		}
	}
	if count != w.grid.Size() {
		return errors.WithMessagef(ErrBrokenPartition, "covered %d of %d cells", count, w.grid.Size())
	}
	return nil
}
