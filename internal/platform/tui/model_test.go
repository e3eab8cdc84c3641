package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// recordingGame records the frames it is stepped with.
type recordingGame struct {
	deltas  []float64
	inputs  []core.InputFrame
	resets  int
	faulted bool
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.deltas = append(g.deltas, in.Delta)
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "board")
}

func (g *recordingGame) State() core.GameState {
	return core.GameState{Phase: "running", Faulted: g.faulted}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestTickDeltaFromTimestamps(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 10, Seed: 1}, nil)

	start := time.Unix(1000, 0)
	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(100*time.Millisecond)))
	m = update(t, m, TickMsg(start.Add(350*time.Millisecond)))

	want := []float64{0, 0.1, 0.25}
	if len(g.deltas) != len(want) {
		t.Fatalf("got %d frames, expected %d", len(g.deltas), len(want))
	}
	for i := range want {
		if diff := g.deltas[i] - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("frame %d delta = %v, expected %v", i, g.deltas[i], want[i])
		}
	}
}

func TestPauseRestartsClock(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 10, Seed: 1}, nil)

	start := time.Unix(1000, 0)
	m = update(t, m, TickMsg(start))
	m = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("expected paused")
	}
	m = update(t, m, TickMsg(start.Add(time.Second)))
	if len(g.deltas) != 1 {
		t.Fatalf("paused frames must not reach the game, got %d frames", len(g.deltas))
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(start.Add(10*time.Second)))
	if g.deltas[1] != 0 {
		t.Errorf("first frame after resume delta = %v, expected 0", g.deltas[1])
	}
}

func TestKeysReachNextFrameOnly(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 10, Seed: 1}, nil)

	start := time.Unix(1000, 0)
	m = update(t, m, runeKey('a'))
	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(100*time.Millisecond)))

	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("left should be delivered with the next frame")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("input must be cleared after one frame")
	}
}

func TestQuitAndView(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 10, Seed: 1}, nil)

	if view := m.View(); !strings.Contains(view, "board") || !strings.Contains(view, "quit") {
		t.Errorf("view should contain the board and the help footer:\n%s", view)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 10, Seed: 1}, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 0 {
		t.Error("resize must not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}
