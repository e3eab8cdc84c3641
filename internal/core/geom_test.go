package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(18, 10)

	if inner.X != 31 || inner.Y != 7 {
		t.Errorf("Centered() origin = (%d, %d), expected (31, 7)", inner.X, inner.Y)
	}
	if inner.W != 18 || inner.H != 10 {
		t.Errorf("Centered() size = %dx%d, expected 18x10", inner.W, inner.H)
	}
}

func TestRectFits(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	if !r.Fits(20, 10) {
		t.Error("20x10 should fit exactly")
	}
	if r.Fits(21, 10) {
		t.Error("21x10 should not fit")
	}
	if r.Fits(20, 11) {
		t.Error("20x11 should not fit")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 50}
	if got := cfg.FrameDelta(); got != 0.02 {
		t.Errorf("FrameDelta() = %v, expected 0.02", got)
	}

	cfg.TickRate = 0
	if got := cfg.FrameDelta(); got != 1.0/60.0 {
		t.Errorf("FrameDelta() with zero rate = %v, expected 1/60", got)
	}
}
