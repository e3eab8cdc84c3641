package sim

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/games/snake/world"
)

// Driver chooses the directions pressed on each frame of a headless run.
type Driver interface {
	Press(frame int) world.DirectionSet
}

// RandomTurns presses one random direction with a fixed chance per frame.
// It is deterministic for a given seed.
type RandomTurns struct {
	rng    *rand.Rand
	chance float64
}

// NewRandomTurns creates a driver that turns on roughly chance of frames.
func NewRandomTurns(seed int64, chance float64) *RandomTurns {
	return &RandomTurns{
		rng:    rand.New(rand.NewSource(seed)),
		chance: chance,
	}
}

// Press implements Driver.
func (d *RandomTurns) Press(int) world.DirectionSet {
	if d.rng.Float64() >= d.chance {
		return 0
	}
	return world.DirectionSet(0).With(world.Directions[d.rng.Intn(len(world.Directions))])
}
