package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Point
	}{
		{DirUp, Point{0, -1}},
		{DirDown, Point{0, 1}},
		{DirLeft, Point{-1, 0}},
		{DirRight, Point{1, 0}},
		{Direction(42), Point{0, 0}},
	}

	for _, c := range cases {
		if got := c.dir.Delta(); got != c.want {
			t.Errorf("Delta(%v) = %v, want %v", c.dir, got, c.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("Opposite mismatch for %v/%v", p[0], p[1])
		}
	}
}

func TestManhattan(t *testing.T) {
	if d := Manhattan(Point{1, 1}, Point{4, 5}); d != 7 {
		t.Errorf("Manhattan = %d, want 7", d)
	}
	if d := Manhattan(Point{3, 3}, Point{3, 3}); d != 0 {
		t.Errorf("Manhattan of equal points = %d, want 0", d)
	}
}

func TestLerp(t *testing.T) {
	from := Point{0, 0}
	to := Point{4, 2}

	mid := Lerp(from, to, 0.5)
	if mid.X != 2 || mid.Y != 1 {
		t.Errorf("Lerp midpoint = %v, want {2 1}", mid)
	}

	// t outside [0,1] clamps
	end := Lerp(from, to, 2.0)
	if end.X != 4 || end.Y != 2 {
		t.Errorf("Lerp clamped = %v, want {4 2}", end)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 1, 10) != 5 || Clamp(-1, 1, 10) != 1 || Clamp(11, 1, 10) != 10 {
		t.Error("Clamp not restricting to range")
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 5) != 2 || Min(5, 2) != 2 {
		t.Error("Min not picking the smaller value")
	}
	if Max(2, 5) != 5 || Max(5, 2) != 5 {
		t.Error("Max not picking the larger value")
	}
}
