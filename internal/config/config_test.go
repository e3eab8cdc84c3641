package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/games/snake/world"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	want := DefaultSnakeConfig()

	if embedded.Grid != want.Grid {
		t.Errorf("grid = %+v, expected %+v", embedded.Grid, want.Grid)
	}
	if embedded.Timing != want.Timing {
		t.Errorf("timing = %+v, expected %+v", embedded.Timing, want.Timing)
	}
	if len(embedded.Spawn.Snake) != len(want.Spawn.Snake) {
		t.Fatalf("spawn has %d cells, expected %d", len(embedded.Spawn.Snake), len(want.Spawn.Snake))
	}
	for i := range want.Spawn.Snake {
		if embedded.Spawn.Snake[i] != want.Spawn.Snake[i] {
			t.Errorf("spawn cell %d = %+v, expected %+v", i, embedded.Spawn.Snake[i], want.Spawn.Snake[i])
		}
	}
	if embedded.Spawn.Food != want.Spawn.Food {
		t.Errorf("food = %+v, expected %+v", embedded.Spawn.Food, want.Spawn.Food)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	layout, err := cfg.Layout()
	if err != nil {
		t.Fatal(err)
	}
	def := world.DefaultLayout()
	if layout.Direction != def.Direction || layout.Food != def.Food {
		t.Errorf("layout = %+v, expected %+v", layout, def)
	}
	for i := range def.Snake {
		if layout.Snake[i] != def.Snake[i] {
			t.Errorf("snake cell %d = %v, expected %v", i, layout.Snake[i], def.Snake[i])
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		substr string
	}{
		{"zero extent", func(c *SnakeConfig) { c.Grid.Extent = 0 }, "grid.extent"},
		{"zero cell width", func(c *SnakeConfig) { c.Grid.CellWidth = 0 }, "cell_width"},
		{"period too fast", func(c *SnakeConfig) { c.Timing.MovePeriod = 0.1 }, "move_period"},
		{"period too slow", func(c *SnakeConfig) { c.Timing.MovePeriod = 0.6 }, "move_period"},
		{"no pregame", func(c *SnakeConfig) { c.Timing.PreGame = 0 }, "pre_game"},
		{"bad direction", func(c *SnakeConfig) { c.Spawn.Direction = "north" }, "direction"},
		{"short snake", func(c *SnakeConfig) { c.Spawn.Snake = c.Spawn.Snake[:2] }, "at least 3"},
		{"food on snake", func(c *SnakeConfig) { c.Spawn.Food = Point{X: 0, Y: 1} }, "overlaps"},
		{"food outside", func(c *SnakeConfig) { c.Spawn.Food = Point{X: 9, Y: 0} }, "outside"},
		{"gap in snake", func(c *SnakeConfig) { c.Spawn.Snake[2] = Point{X: 1, Y: 0} }, "adjacent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestApplyWideVariant(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplyWideVariant(&cfg)

	if cfg.Grid.Extent != 30 {
		t.Errorf("extent = %d, expected 30", cfg.Grid.Extent)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("wide config invalid: %v", err)
	}
	if cfg.WorldGrid().Size() != 61*61 {
		t.Errorf("wide grid has %d cells, expected %d", cfg.WorldGrid().Size(), 61*61)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "timing:\n  move_period: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Timing.MovePeriod != 0.5 {
		t.Errorf("move_period = %v, expected 0.5", cfg.Timing.MovePeriod)
	}
	// Unset keys keep their defaults.
	if cfg.Timing.PreGame != 3.0 || cfg.Grid.Extent != 3 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("grid: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(broken); err == nil {
		t.Error("expected an error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  move_period: 2.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(invalid); err == nil {
		t.Error("expected a validation error")
	}
}

func TestMarshalRoundTripsSpawn(t *testing.T) {
	out, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "move_period: 0.3") {
		t.Errorf("marshalled config missing move_period:\n%s", out)
	}
	if GetDefaultYAML("snake_wide") == nil || GetDefaultYAML("pong") != nil {
		t.Error("GetDefaultYAML returned the wrong embedded file")
	}
}
