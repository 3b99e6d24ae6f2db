package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 12, 9)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 5, 4, true},
		{"top-left corner", 0, 0, true},
		{"bottom-right edge (exclusive)", 12, 9, false},
		{"last valid cell", 11, 8, true},
		{"outside left", -1, 4, false},
		{"outside right", 12, 4, false},
		{"outside top", 5, -1, false},
		{"outside bottom", 5, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
			if r.ContainsPoint(Point{X: tc.x, Y: tc.y}) != tc.expected {
				t.Errorf("ContainsPoint(%d, %d) = %v, expected %v", tc.x, tc.y, !tc.expected, tc.expected)
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

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 7}

	moved := p.Add(1, -2)
	if moved.X != 4 || moved.Y != 5 {
		t.Errorf("Add(1, -2) = %v, expected {4 5}", moved)
	}

	// Original point unchanged
	if p.X != 3 || p.Y != 7 {
		t.Errorf("Add mutated the receiver: %v", p)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Errorf("Min(5, 10) = %d, expected 5", Min(5, 10))
	}
	if Max(5, 10) != 10 {
		t.Errorf("Max(5, 10) = %d, expected 10", Max(5, 10))
	}
	if Abs(-7) != 7 {
		t.Errorf("Abs(-7) = %d, expected 7", Abs(-7))
	}
	if Abs(7) != 7 {
		t.Errorf("Abs(7) = %d, expected 7", Abs(7))
	}
}
