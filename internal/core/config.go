package core

// RuntimeConfig contains host settings passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the fixed per-frame delta in seconds for the tick rate.
// Headless drivers use it in place of wall-clock measurements.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the summary a game reports to the platform after each frame.
type GameState struct {
	Phase   string // Name of the active phase
	Length  int    // Current snake length, 0 when nothing is spawned
	Runs    int    // Number of finished runs
	Faulted bool   // Simulation halted on an internal error
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
