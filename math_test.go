package main

import (
	"math"
	"testing"
)

func TestSmoothStep(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{-1, 0},
		{0.25, 0},
		{0.3, 0.5},
		{0.35, 1},
		{2, 1},
	}

	for _, tt := range tests {
		if got := SmoothStep(0.25, 0.35, tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("SmoothStep(0.25, 0.35, %v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestFPointRotate(t *testing.T) {
	p := FPt(1, 0).Rotate(math.Pi / 2)
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-1) > 1e-12 {
		t.Errorf("rotate 90 degrees = %v, want (0, 1)", p)
	}

	q := FPt(0.3, -0.7)
	back := q.Rotate(1.234).Rotate(-1.234)
	if math.Abs(back.X-q.X) > 1e-12 || math.Abs(back.Y-q.Y) > 1e-12 {
		t.Errorf("rotate round trip = %v, want %v", back, q)
	}
}

func TestVec3CrossOrthogonal(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-2, 0.5, 4)

	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross %v not orthogonal to inputs", c)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %v", got)
	}
	if got := Clamp(-1.5, 0.0, 3.0); got != 0 {
		t.Errorf("Clamp(-1.5, 0, 3) = %v", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Errorf("Clamp(2, 0, 3) = %v", got)
	}
}
