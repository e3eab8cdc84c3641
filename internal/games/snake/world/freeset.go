package world

import "math/rand"

// FreeSet is the set of grid cells occupied by neither the snake nor the
// food. Cells live in a slice with a position index so that membership,
// removal and uniform random picks are all O(1).
type FreeSet struct {
	cells []GridPosition
	index map[GridPosition]int
}

// NewFreeSet returns a set holding every cell of g.
func NewFreeSet(g Grid) *FreeSet {
	f := &FreeSet{}
	f.Reset(g)
	return f
}

// Reset refills the set with every cell of g.
func (f *FreeSet) Reset(g Grid) {
	f.cells = g.Cells()
	f.index = make(map[GridPosition]int, len(f.cells))
	for i, p := range f.cells {
		f.index[p] = i
	}
}

// Len returns the number of free cells.
func (f *FreeSet) Len() int {
	return len(f.cells)
}

// Contains reports whether p is free.
func (f *FreeSet) Contains(p GridPosition) bool {
	_, ok := f.index[p]
	return ok
}

// Add marks p as free. It returns false if p was already free.
func (f *FreeSet) Add(p GridPosition) bool {
	if f.Contains(p) {
		return false
	}
	f.index[p] = len(f.cells)
	f.cells = append(f.cells, p)
	return true
}

// Remove marks p as occupied. It returns false if p was not free.
func (f *FreeSet) Remove(p GridPosition) bool {
	i, ok := f.index[p]
	if !ok {
		return false
	}
	last := len(f.cells) - 1
	moved := f.cells[last]
	f.cells[i] = moved
	f.index[moved] = i
	f.cells = f.cells[:last]
	delete(f.index, p)
	return true
}

// Random returns a uniformly chosen free cell without removing it.
// ok is false when the set is empty.
func (f *FreeSet) Random(rng *rand.Rand) (p GridPosition, ok bool) {
	if len(f.cells) == 0 {
		return GridPosition{}, false
	}
	return f.cells[rng.Intn(len(f.cells))], true
}

// Cells returns a copy of the free cells in internal order.
func (f *FreeSet) Cells() []GridPosition {
	out := make([]GridPosition, len(f.cells))
	copy(out, f.cells)
	return out
}
