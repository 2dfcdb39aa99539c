package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"apart horizontally", NewBox(0, 0, 10, 10), NewBox(15, 0, 10, 10), false},
		{"apart vertically", NewBox(0, 0, 10, 10), NewBox(0, 15, 10, 10), false},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching bottom edge", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"touching corner", NewBox(0, 0, 10, 10), NewBox(10, 10, 5, 5), false},
		{"contained", NewBox(0, 0, 20, 20), NewBox(5, 5, 5, 5), true},
		{"sub-unit overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 10, 10), true},
		{"identical", NewBox(3, 4, 5, 6), NewBox(3, 4, 5, 6), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsSymmetric(t *testing.T) {
	coords := []float64{-12, -3.5, 0, 4, 9.99, 10, 17}
	sizes := []float64{0.5, 4, 10}

	for _, ax := range coords {
		for _, by := range coords {
			for _, w := range sizes {
				a := NewBox(ax, 2, w, 6)
				b := NewBox(5, by, 6, w)
				if a.Overlaps(b) != b.Overlaps(a) {
					t.Fatalf("asymmetric overlap for %+v and %+v", a, b)
				}
			}
		}
	}
}

func TestBoxClampInto(t *testing.T) {
	tests := []struct {
		name string
		in   Box
		want Box
	}{
		{"inside", NewBox(10, 10, 5, 5), NewBox(10, 10, 5, 5)},
		{"left/top", NewBox(-3, -8, 5, 5), NewBox(0, 0, 5, 5)},
		{"right/bottom", NewBox(98, 49, 5, 5), NewBox(95, 45, 5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.ClampInto(100, 50)
			if got != tc.want {
				t.Errorf("ClampInto() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
	cx, cy := b.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
	if !b.Valid() {
		t.Error("positive size box should be valid")
	}
	if NewBox(0, 0, 0, 3).Valid() || NewBox(0, 0, 3, -1).Valid() {
		t.Error("non-positive size box should be invalid")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(5, 0, -1); got != 0 {
		t.Errorf("ClampF with inverted range = %v, expected lower bound", got)
	}
}
