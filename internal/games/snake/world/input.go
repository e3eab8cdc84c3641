package world

// Steer applies the directions pressed this frame to the pending direction.
// Directions are considered in the order Up, Down, Left, Right and each is
// checked on its own; a direction opposite to the last applied move is
// ignored. When several pass, the last one wins.
// It reports whether the pending direction changed.
func (w *World) Steer(pressed DirectionSet) bool {
	if w.snake == nil || pressed == 0 {
		return false
	}
	s := w.snake
	before := s.Direction
	forbidden := s.LastDirection.Opposite()
	for _, d := range Directions {
		if !pressed.Has(d) {
			continue
		}
		if d == forbidden {
			w.logger.Debug("reversal ignored", "pressed", d, "last", s.LastDirection)
			continue
		}
		s.Direction = d
	}
	return s.Direction != before
}
