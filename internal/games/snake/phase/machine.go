// Package phase implements the PreGame → Running → PostGame lifecycle.
//
// Each timed phase owns a timer. Boundary crossings are published as
// one-shot events and picked up by transition listeners, each of which
// reads its channel through a private cursor.
package phase

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/vovakirdan/gridsnake/internal/games/snake/world"
)

// Phase names one stage of the lifecycle.
type Phase int

const (
	PreGame Phase = iota
	Running
	PostGame
)

func (p Phase) String() string {
	switch p {
	case PreGame:
		return "pregame"
	case Running:
		return "running"
	case PostGame:
		return "postgame"
	default:
		return "unknown"
	}
}

// Stage receives spawn and despawn requests from the machine.
type Stage interface {
	Spawn() error
	Despawn()
}

// Config holds the phase durations and the movement period, in seconds.
type Config struct {
	PreGame    float64
	PostGame   float64
	MovePeriod float64
}

// DefaultConfig returns the classic timings.
func DefaultConfig() Config {
	return Config{
		PreGame:    3.0,
		PostGame:   4.0,
		MovePeriod: 0.3,
	}
}

// Machine is the phase state machine of one session.
type Machine struct {
	stage  Stage
	logger *log.Logger
	events Events

	preActive  bool
	runActive  bool
	postActive bool

	preTimer  Timer
	postTimer Timer
	moveTimer Timer

	preEnd  Reader[PreGameEnd]
	runEnd  Reader[RunningEnd]
	postEnd Reader[PostGameEnd]

	runs    int
	lastEnd world.EndReason
}

// New creates a machine that starts in PreGame. A nil logger discards output.
func New(cfg Config, stage Stage, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		stage:     stage,
		logger:    logger,
		preActive: true,
		preTimer:  NewTimer(cfg.PreGame),
		postTimer: NewTimer(cfg.PostGame),
		moveTimer: NewTimer(cfg.MovePeriod),
	}
}

// Events exposes the event channels.
func (m *Machine) Events() *Events {
	return &m.events
}

// Active returns the active phase. Exactly one phase is active at every
// frame boundary.
func (m *Machine) Active() Phase {
	switch {
	case m.runActive:
		return Running
	case m.postActive:
		return PostGame
	default:
		return PreGame
	}
}

// ActiveCount returns how many phase flags are set. It is one at every
// frame boundary.
func (m *Machine) ActiveCount() int {
	n := 0
	for _, on := range []bool{m.preActive, m.runActive, m.postActive} {
		if on {
			n++
		}
	}
	return n
}

// Running reports whether the Running phase is active.
func (m *Machine) Running() bool {
	return m.runActive
}

// Countdown returns the time left in the active timed phase, zero while
// Running.
func (m *Machine) Countdown() float64 {
	switch {
	case m.preActive:
		return m.preTimer.Remaining()
	case m.postActive:
		return m.postTimer.Remaining()
	}
	return 0
}

// Runs returns the number of runs that have ended.
func (m *Machine) Runs() int {
	return m.runs
}

// LastEnd returns why the most recent run ended.
func (m *Machine) LastEnd() world.EndReason {
	return m.lastEnd
}

// TickPhases runs the PreGame and PostGame systems for one frame.
func (m *Machine) TickPhases(delta float64) error {
	if err := m.tickPreGame(delta); err != nil {
		return err
	}
	m.tickPostGame(delta)
	return nil
}

// tickPreGame spawns on the first frame that carries time, then counts down.
// A zero delta means the clock has not started and must not spawn, or a
// second frame would spawn again.
func (m *Machine) tickPreGame(delta float64) error {
	if !m.preActive {
		return nil
	}
	if m.preTimer.Elapsed == 0 && delta != 0 {
		if err := m.stage.Spawn(); err != nil {
			return errors.WithMessage(err, "spawn")
		}
		m.events.PreGameStart.Send(PreGameStart{})
	}
	if m.preTimer.Tick(delta) {
		m.preTimer.Reset()
		m.preActive = false
		m.events.PreGameEnd.Send(PreGameEnd{})
		m.logger.Debug("pregame finished")
	}
	return nil
}

func (m *Machine) tickPostGame(delta float64) {
	if !m.postActive {
		return
	}
	if m.postTimer.Elapsed == 0 && delta != 0 {
		m.events.PostGameStart.Send(PostGameStart{})
	}
	if m.postTimer.Tick(delta) {
		m.stage.Despawn()
		m.postTimer.Reset()
		m.postActive = false
		m.events.PostGameEnd.Send(PostGameEnd{})
		m.logger.Debug("postgame finished")
	}
}

// RunTransitions runs the three transition listeners in lifecycle order.
func (m *Machine) RunTransitions() {
	for range m.preEnd.Read(&m.events.PreGameEnd) {
		m.runActive = true
		m.moveTimer.Reset()
		m.events.RunningStart.Send(RunningStart{})
		m.logger.Debug("running")
	}
	for _, ev := range m.runEnd.Read(&m.events.RunningEnd) {
		if !m.runActive {
			continue
		}
		m.runActive = false
		m.postActive = true
		m.runs++
		m.lastEnd = ev.Reason
		m.logger.Debug("postgame", "reason", ev.Reason)
	}
	for range m.postEnd.Read(&m.events.PostGameEnd) {
		m.preActive = true
		m.logger.Debug("pregame")
	}
}

// MovementDue ticks the movement timer while Running and reports whether a
// movement tick is due this frame. The timer restarts from zero when it fires.
func (m *Machine) MovementDue(delta float64) bool {
	if !m.runActive {
		return false
	}
	if !m.moveTimer.Tick(delta) {
		return false
	}
	m.moveTimer.Reset()
	return true
}

// EndRun publishes a RunningEnd event.
func (m *Machine) EndRun(reason world.EndReason) {
	m.events.RunningEnd.Send(RunningEnd{Reason: reason})
}

// EndFrame advances every event channel by one frame.
func (m *Machine) EndFrame() {
	m.events.Update()
}
