package phase

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/games/snake/world"
)

type fakeStage struct {
	spawns   int
	despawns int
	err      error
}

func (s *fakeStage) Spawn() error {
	if s.err != nil {
		return s.err
	}
	s.spawns++
	return nil
}

func (s *fakeStage) Despawn() {
	s.despawns++
}

// recorder counts every event through its own readers.
type recorder struct {
	preStart, preEnd, runStart, runEnd, postStart, postEnd int

	rPreStart  Reader[PreGameStart]
	rPreEnd    Reader[PreGameEnd]
	rRunStart  Reader[RunningStart]
	rRunEnd    Reader[RunningEnd]
	rPostStart Reader[PostGameStart]
	rPostEnd   Reader[PostGameEnd]
}

func (r *recorder) observe(e *Events) {
	r.preStart += len(r.rPreStart.Read(&e.PreGameStart))
	r.preEnd += len(r.rPreEnd.Read(&e.PreGameEnd))
	r.runStart += len(r.rRunStart.Read(&e.RunningStart))
	r.runEnd += len(r.rRunEnd.Read(&e.RunningEnd))
	r.postStart += len(r.rPostStart.Read(&e.PostGameStart))
	r.postEnd += len(r.rPostEnd.Read(&e.PostGameEnd))
}

func frame(t *testing.T, m *Machine, rec *recorder, delta float64) bool {
	t.Helper()
	if err := m.TickPhases(delta); err != nil {
		t.Fatalf("TickPhases() failed: %v", err)
	}
	m.RunTransitions()
	due := m.MovementDue(delta)
	rec.observe(m.Events())
	m.EndFrame()
	if m.ActiveCount() != 1 {
		t.Fatalf("%d phases active at frame end, expected exactly 1", m.ActiveCount())
	}
	return due
}

func TestZeroDeltaDoesNotSpawn(t *testing.T) {
	stage := &fakeStage{}
	m := New(DefaultConfig(), stage, nil)
	rec := &recorder{}

	for i := 0; i < 5; i++ {
		frame(t, m, rec, 0)
	}
	if stage.spawns != 0 || rec.preStart != 0 {
		t.Fatalf("zero-delta frames spawned %d times", stage.spawns)
	}

	for i := 0; i < 4; i++ {
		frame(t, m, rec, 0.5)
	}
	if stage.spawns != 1 || rec.preStart != 1 {
		t.Errorf("expected exactly one spawn, got %d (events %d)", stage.spawns, rec.preStart)
	}
}

func TestFullPhaseCycle(t *testing.T) {
	stage := &fakeStage{}
	m := New(DefaultConfig(), stage, nil)
	rec := &recorder{}

	frame(t, m, rec, 0)
	for i := 0; i < 6; i++ {
		frame(t, m, rec, 0.5)
	}

	if rec.preEnd != 1 || rec.runStart != 1 {
		t.Fatalf("after 3.0s: PreGameEnd=%d RunningStart=%d, expected 1 and 1", rec.preEnd, rec.runStart)
	}
	if m.Active() != Running {
		t.Fatalf("Active() = %v, expected running", m.Active())
	}

	// Running has no timer of its own.
	for i := 0; i < 100; i++ {
		frame(t, m, rec, 0.5)
	}
	if m.Active() != Running {
		t.Fatal("Running should last until a RunningEnd event")
	}

	m.EndRun(world.EndSelfCollision)
	frame(t, m, rec, 0.5)
	if m.Active() != PostGame {
		t.Fatalf("Active() = %v, expected postgame after RunningEnd", m.Active())
	}
	if m.Runs() != 1 || m.LastEnd() != world.EndSelfCollision {
		t.Errorf("Runs()=%d LastEnd()=%v", m.Runs(), m.LastEnd())
	}

	for i := 0; i < 8; i++ {
		frame(t, m, rec, 0.5)
	}
	if rec.postStart != 1 || rec.postEnd != 1 || stage.despawns != 1 {
		t.Fatalf("PostGameStart=%d PostGameEnd=%d despawns=%d, expected 1 each",
			rec.postStart, rec.postEnd, stage.despawns)
	}
	if m.Active() != PreGame {
		t.Fatalf("Active() = %v, expected pregame after 4.0s of postgame", m.Active())
	}

	frame(t, m, rec, 0.5)
	if stage.spawns != 2 {
		t.Errorf("pregame should respawn on the next frame, spawns = %d", stage.spawns)
	}
}

func TestDuplicateRunningEndTransitionsOnce(t *testing.T) {
	stage := &fakeStage{}
	m := New(DefaultConfig(), stage, nil)
	rec := &recorder{}

	frame(t, m, rec, 3.0)
	frame(t, m, rec, 0.1)
	if !m.Running() {
		t.Fatal("expected running")
	}

	m.EndRun(world.EndOutOfBounds)
	m.EndRun(world.EndOutOfBounds)
	frame(t, m, rec, 0.1)

	if m.Runs() != 1 {
		t.Errorf("Runs() = %d, expected 1", m.Runs())
	}
	if m.Active() != PostGame {
		t.Errorf("Active() = %v, expected postgame", m.Active())
	}
}

func TestMovementDue(t *testing.T) {
	m := New(Config{PreGame: 1.0, PostGame: 1.0, MovePeriod: 0.3}, &fakeStage{}, nil)
	rec := &recorder{}

	if frame(t, m, rec, 0.5) {
		t.Fatal("movement must not run during pregame")
	}
	frame(t, m, rec, 0.5)
	if !m.Running() {
		t.Fatal("expected running after 1.0s")
	}

	// The timer restarts from zero after firing on the transition frame.
	moves := 0
	for i := 0; i < 30; i++ {
		if frame(t, m, rec, 0.1) {
			moves++
		}
	}
	if moves != 10 {
		t.Errorf("expected 10 movement ticks in 3.0s at period 0.3, got %d", moves)
	}
}

func TestSpawnErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	m := New(DefaultConfig(), &fakeStage{err: boom}, nil)

	if err := m.TickPhases(0.1); !errors.Is(err, boom) {
		t.Errorf("TickPhases() = %v, expected wrapped spawn error", err)
	}
}

func TestCountdown(t *testing.T) {
	m := New(DefaultConfig(), &fakeStage{}, nil)
	rec := &recorder{}

	frame(t, m, rec, 1.0)
	if c := m.Countdown(); c != 2.0 {
		t.Errorf("Countdown() = %v, expected 2.0", c)
	}
}
