// Package sim runs many independent snake sessions headlessly and
// aggregates what happened in them. Sessions are driven by a deterministic
// random-turn driver, so a batch is reproducible from its base seed.
package sim

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// driverSeedSalt separates the driver's random stream from the game's.
const driverSeedSalt = 0x5eed

// Config describes a batch.
type Config struct {
	Sessions    int           // Number of independent sessions
	Frames      int           // Frames per session
	Delta       float64       // Seconds per frame
	Seed        int64         // Session i uses Seed+i
	Parallelism int           // Concurrent sessions, at least 1
	TurnChance  float64       // Chance per frame that the driver presses a key
	Check       bool          // Verify invariants after every frame
	Options     snake.Options // Board, layout and timing shared by all sessions
}

// DefaultConfig returns a small batch on the classic board.
func DefaultConfig() Config {
	return Config{
		Sessions:    8,
		Frames:      6000,
		Delta:       1.0 / 60.0,
		Seed:        1,
		Parallelism: 4,
		TurnChance:  0.05,
		Check:       true,
		Options:     snake.DefaultOptions(),
	}
}

// Validate rejects configs that cannot run.
func (c Config) Validate() error {
	switch {
	case c.Sessions < 1:
		return errors.Errorf("sessions must be at least 1, got %d", c.Sessions)
	case c.Frames < 1:
		return errors.Errorf("frames must be at least 1, got %d", c.Frames)
	case c.Delta <= 0:
		return errors.Errorf("delta must be positive, got %v", c.Delta)
	case c.TurnChance < 0 || c.TurnChance > 1:
		return errors.Errorf("turn chance %v outside 0-1", c.TurnChance)
	}
	return nil
}

// counters are shared by all workers of a batch.
type counters struct {
	frames  atomic.Int64
	moves   atomic.Int64
	food    atomic.Int64
	runEnds atomic.Int64
	faults  atomic.Int64
	done    atomic.Int32
}

// Runner executes batches.
type Runner struct {
	cfg    Config
	logger *log.Logger
	stats  counters
}

// NewRunner validates cfg and returns a runner. A nil logger discards output.
func NewRunner(cfg Config, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

// Progress returns how many sessions have finished.
func (r *Runner) Progress() int {
	return int(r.stats.done.Load())
}

// Run executes every session and returns the batch report. With Check set,
// the first invariant fault cancels the remaining sessions and is returned
// together with the partial report.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	reports := make([]SessionReport, r.cfg.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i := 0; i < r.cfg.Sessions; i++ {
		i := i
		g.Go(func() error {
			rep, err := r.runSession(ctx, r.cfg.Seed+int64(i))
			reports[i] = rep
			r.stats.done.Inc()
			return err
		})
	}
	err := g.Wait()

	report := Report{
		Sessions: reports,
		Totals: Totals{
			Frames:  r.stats.frames.Load(),
			Moves:   r.stats.moves.Load(),
			Food:    r.stats.food.Load(),
			RunEnds: r.stats.runEnds.Load(),
			Faults:  r.stats.faults.Load(),
		},
		Elapsed: time.Since(start),
	}
	r.logger.Info("batch finished",
		"sessions", r.cfg.Sessions, "frames", report.Totals.Frames,
		"runs", report.Totals.RunEnds, "faults", report.Totals.Faults, "elapsed", report.Elapsed)
	return report, err
}

// runSession plays one session to its frame budget.
func (r *Runner) runSession(ctx context.Context, seed int64) (SessionReport, error) {
	rep := SessionReport{
		ID:         uuid.NewString(),
		Seed:       seed,
		EndReasons: make(map[string]int),
	}
	logger := r.logger.With("session", rep.ID[:8], "seed", seed)

	opts := r.cfg.Options
	opts.Seed = seed
	opts.CheckInvariants = r.cfg.Check
	opts.Logger = logger
	s, err := snake.NewSession(opts)
	if err != nil {
		return rep, errors.WithMessagef(err, "session %s", rep.ID)
	}

	driver := NewRandomTurns(seed^driverSeedSalt, r.cfg.TurnChance)
	runs := 0
	for frame := 0; frame < r.cfg.Frames; frame++ {
		if frame%256 == 0 {
			if err := ctx.Err(); err != nil {
				r.finish(&rep, s)
				return rep, nil
			}
		}
		if err := s.Tick(r.cfg.Delta, driver.Press(frame)); err != nil {
			r.stats.faults.Inc()
			rep.Fault = err.Error()
			r.finish(&rep, s)
			return rep, errors.WithMessagef(err, "session %s frame %d", rep.ID, frame)
		}
		if n := s.Machine().Runs(); n != runs {
			runs = n
			rep.EndReasons[s.Machine().LastEnd().String()]++
			r.stats.runEnds.Inc()
		}
		rep.MaxLength = max(rep.MaxLength, s.Length())
	}
	r.finish(&rep, s)
	logger.Debug("session finished", "runs", rep.Runs, "max_length", rep.MaxLength)
	return rep, nil
}

func (r *Runner) finish(rep *SessionReport, s *snake.Session) {
	rep.Frames = s.Frames()
	rep.Moves = s.Moves()
	rep.Food = s.FoodEaten()
	rep.Runs = s.Machine().Runs()
	rep.Final = s.Snapshot().Phase

	r.stats.frames.Add(int64(rep.Frames))
	r.stats.moves.Add(int64(rep.Moves))
	r.stats.food.Add(int64(rep.Food))
}
