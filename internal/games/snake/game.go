// Package snake registers the grid snake game with the arcade registry.
//
// A Session owns the world and the phase machine and runs their systems
// once per frame; Game adapts a Session to the platform's registry.Game
// interface.
package snake

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake/world"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// Variant selects the board size.
type Variant string

const (
	VariantClassic Variant = "snake"
	VariantWide    Variant = "snake_wide"
)

// Package-level settings applied on the next Reset.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by sessions created on Reset.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game on top of a Session.
type Game struct {
	variant   Variant
	session   *Session
	cellWidth int
	err       error // Why the last Reset could not build a session
}

// New creates a snake game on the classic 7x7 board.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewWide creates a snake game on the wide board.
func NewWide() *Game {
	return &Game{variant: VariantWide}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantWide), func() registry.Game {
		return NewWide()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantWide {
		return "Snake (Wide)"
	}
	return "Snake"
}

// Reset loads the config and starts a fresh session in PreGame.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = nil
	g.err = nil

	sc, err := config.LoadSnake(configPath)
	if err != nil {
		logger.Warn("using default snake config", "err", err)
		sc = config.DefaultSnakeConfig()
	}
	if g.variant == VariantWide {
		config.ApplyWideVariant(&sc)
	}
	g.cellWidth = sc.Grid.CellWidth

	opts, err := OptionsFromConfig(sc)
	if err != nil {
		g.fail(err)
		return
	}
	opts.Seed = cfg.Seed
	opts.Logger = logger.With("game", g.ID())

	s, err := NewSession(opts)
	if err != nil {
		g.fail(err)
		return
	}
	g.session = s
}

func (g *Game) fail(err error) {
	g.err = errors.WithMessage(err, "start session")
	logger.Error("cannot start snake", "err", g.err)
}

// OptionsFromConfig converts a loaded config into session options.
func OptionsFromConfig(sc config.SnakeConfig) (Options, error) {
	layout, err := sc.Layout()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Grid:            sc.WorldGrid(),
		Layout:          layout,
		Timing:          sc.PhaseConfig(),
		CheckInvariants: true,
	}, nil
}

// Step advances the session by one frame. The frame delta is taken from
// the input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}
	if err := g.session.Tick(in.Delta, pressedDirections(in)); err != nil {
		if errors.Is(err, ErrNegativeDelta) {
			logger.Warn("frame skipped", "err", err)
		}
	}
	return core.StepResult{State: g.State()}
}

// pressedDirections maps platform actions to grid directions.
func pressedDirections(in core.InputFrame) world.DirectionSet {
	var set world.DirectionSet
	if in.Has(core.ActionUp) {
		set = set.With(world.Up)
	}
	if in.Has(core.ActionDown) {
		set = set.With(world.Down)
	}
	if in.Has(core.ActionLeft) {
		set = set.With(world.Left)
	}
	if in.Has(core.ActionRight) {
		set = set.With(world.Right)
	}
	return set
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: "unavailable", Faulted: g.err != nil}
	}
	return core.GameState{
		Phase:   g.session.Phase().String(),
		Length:  g.session.Length(),
		Runs:    g.session.Machine().Runs(),
		Faulted: g.session.Fault() != nil,
	}
}

// Session exposes the running session, nil if Reset failed.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) errText() string {
	if g.err == nil {
		return ""
	}
	return g.err.Error()
}
