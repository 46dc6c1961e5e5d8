package core

import "testing"

func TestMod(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
		{-1000003, 9, 8},
		{1000003, 9, 5},
	}

	for _, tc := range tests {
		if got := Mod(tc.a, tc.b); got != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestModAlwaysInRange(t *testing.T) {
	for _, b := range []int{1, 5, 9} {
		for a := -200; a <= 200; a++ {
			if m := Mod(a, b); m < 0 || m >= b {
				t.Fatalf("Mod(%d, %d) = %d, out of [0, %d)", a, b, m, b)
			}
		}
	}
}

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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(30, 10)

	if inner != NewRect(25, 7, 30, 10) {
		t.Errorf("Centered() = %+v", inner)
	}
	if inner.Right() != 55 || inner.Bottom() != 17 {
		t.Errorf("edges = (%d, %d), expected (55, 17)", inner.Right(), inner.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.2, 0, 1) != 0 || ClampF(0.4, 0, 1) != 0.4 {
		t.Error("ClampF did not clamp to [0, 1]")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionTap) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionTap)
	f.Set(ActionTap)
	if !f.Has(ActionTap) || len(f.Actions) != 1 {
		t.Errorf("repeated taps should collapse into one action, got %v", f.Actions)
	}

	f.Clear()
	if f.Has(ActionTap) {
		t.Error("Clear should drop all actions")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Type: EventMatch}, {Type: EventLevelCleared, Level: 2}}}
	if !r.Has(EventLevelCleared) {
		t.Error("expected level cleared event")
	}
	if r.Has(EventGameOver) {
		t.Error("unexpected game over event")
	}
}
