package phase

// epsilon absorbs float accumulation error so that, for example, ten 0.3
// steps finish a 3.0 timer.
const epsilon = 1e-9

// Timer counts elapsed time up to a fixed duration. It does not repeat:
// once finished it stays finished until Reset.
type Timer struct {
	Duration float64
	Elapsed  float64
	finished bool
}

// NewTimer returns a stopped timer at zero.
func NewTimer(duration float64) Timer {
	return Timer{Duration: duration}
}

// Tick adds delta and reports whether the timer has finished.
func (t *Timer) Tick(delta float64) bool {
	if t.finished {
		return true
	}
	t.Elapsed += delta
	if t.Elapsed+epsilon >= t.Duration {
		t.Elapsed = t.Duration
		t.finished = true
	}
	return t.finished
}

// Finished reports whether the duration has been reached.
func (t *Timer) Finished() bool {
	return t.finished
}

// Remaining returns the time left before the timer finishes.
func (t *Timer) Remaining() float64 {
	return t.Duration - t.Elapsed
}

// Reset returns the timer to exactly zero.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
}
