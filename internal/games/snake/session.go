package snake

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/vovakirdan/gridsnake/internal/games/snake/phase"
	"github.com/vovakirdan/gridsnake/internal/games/snake/world"
)

var (
	// ErrNegativeDelta is returned for a frame with negative elapsed time.
	ErrNegativeDelta = errors.New("negative frame delta")
	// ErrHalted is returned by every Tick after an invariant fault.
	ErrHalted = errors.New("session halted")
)

// Options configure a Session.
type Options struct {
	Grid   world.Grid
	Layout world.Layout
	Timing phase.Config
	Seed   int64

	// CheckInvariants verifies the board partition after every frame.
	CheckInvariants bool

	Logger *log.Logger
}

// DefaultOptions returns the classic 7x7 game.
func DefaultOptions() Options {
	return Options{
		Grid:            world.Grid{Extent: 3},
		Layout:          world.DefaultLayout(),
		Timing:          phase.DefaultConfig(),
		CheckInvariants: true,
	}
}

// Session owns all mutable state of one game and runs its systems in a
// fixed order each frame. It is not safe for concurrent use; separate
// sessions are independent.
type Session struct {
	opts    Options
	logger  *log.Logger
	world   *world.World
	machine *phase.Machine

	frames uint64
	moves  int
	eaten  int
	fault  error
}

// NewSession validates the options and returns a session in PreGame.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Layout.Validate(opts.Grid); err != nil {
		return nil, err
	}
	if opts.Timing.MovePeriod <= 0 {
		return nil, errors.Errorf("movement period must be positive, got %v", opts.Timing.MovePeriod)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{opts: opts, logger: logger}
	rng := rand.New(rand.NewSource(opts.Seed))
	s.world = world.New(opts.Grid, opts.Layout, rng, logger)
	s.machine = phase.New(opts.Timing, s.world, logger)
	return s, nil
}

// Tick advances the session by one frame of delta seconds with the
// directions pressed during that frame.
//
// Expected run endings are events, not errors. An error means either bad
// input (a negative delta, the frame is skipped) or a broken invariant, in
// which case the session halts and every later Tick returns ErrHalted.
func (s *Session) Tick(delta float64, pressed world.DirectionSet) error {
	if s.fault != nil {
		return errors.WithMessage(ErrHalted, s.fault.Error())
	}
	if delta < 0 {
		return errors.Wrapf(ErrNegativeDelta, "delta %v", delta)
	}
	if err := s.frame(delta, pressed); err != nil {
		s.fault = err
		s.logger.Error("session halted", "frame", s.frames, "err", err)
		return err
	}
	return nil
}

func (s *Session) frame(delta float64, pressed world.DirectionSet) error {
	s.frames++

	if err := s.machine.TickPhases(delta); err != nil {
		return err
	}
	s.machine.RunTransitions()

	if s.machine.MovementDue(delta) {
		if err := s.move(); err != nil {
			return err
		}
	}

	if s.world.Spawned() {
		s.world.Steer(pressed)
	}

	if s.machine.Running() {
		reason, err := s.world.CheckBounds()
		if err != nil {
			return errors.WithMessage(err, "check bounds")
		}
		if reason != world.EndNone {
			s.endRun(reason)
		}
	}

	if s.opts.CheckInvariants && s.world.Spawned() {
		if err := s.world.CheckInvariants(); err != nil {
			return err
		}
	}

	s.machine.EndFrame()
	return nil
}

func (s *Session) move() error {
	out, err := s.world.Advance()
	if err != nil {
		return errors.WithMessage(err, "advance")
	}
	s.moves++
	if out.Kind == world.MoveGrew {
		s.eaten++
	}
	if out.End != world.EndNone {
		s.endRun(out.End)
	}
	return nil
}

func (s *Session) endRun(reason world.EndReason) {
	s.machine.EndRun(reason)
	s.logger.Info("run ended", "reason", reason, "length", s.world.Snake().Len(), "run", s.machine.Runs()+1)
}

// World exposes the board for presentation and tests.
func (s *Session) World() *world.World {
	return s.world
}

// Phase returns the active phase.
func (s *Session) Phase() phase.Phase {
	return s.machine.Active()
}

// Machine exposes the phase machine.
func (s *Session) Machine() *phase.Machine {
	return s.machine
}

// Countdown returns the time left in PreGame or PostGame.
func (s *Session) Countdown() float64 {
	return s.machine.Countdown()
}

// Frames returns how many frames have been ticked.
func (s *Session) Frames() uint64 {
	return s.frames
}

// Moves returns how many movement ticks have run.
func (s *Session) Moves() int {
	return s.moves
}

// FoodEaten returns the number of pickups across all runs.
func (s *Session) FoodEaten() int {
	return s.eaten
}

// Length returns the current snake length, zero when nothing is spawned.
func (s *Session) Length() int {
	if !s.world.Spawned() {
		return 0
	}
	return s.world.Snake().Len()
}

// Fault returns the error that halted the session, if any.
func (s *Session) Fault() error {
	return s.fault
}
