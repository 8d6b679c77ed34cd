package physics

import (
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != -2 {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 6 {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := b.Scale(0.5)
	if scaled.X != 1.5 || scaled.Y != -2 {
		t.Errorf("Scale failed: got %v", scaled)
	}
}

func TestVec2_Magnitude(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected float64
	}{
		{Vec2{3, 4}, 5},
		{Vec2{1, 0}, 1},
		{Vec2{0, 0}, 0},
		{Vec2{-3, -4}, 5},
	}

	for _, tt := range tests {
		if got := tt.v.Magnitude(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Magnitude(%v) = %v, want %v", tt.v, got, tt.expected)
		}
		if got := tt.v.MagnitudeSquared(); math.Abs(got-tt.expected*tt.expected) > 1e-12 {
			t.Errorf("MagnitudeSquared(%v) = %v, want %v", tt.v, got, tt.expected*tt.expected)
		}
	}
}

func TestVec2_Normalized(t *testing.T) {
	n := Vec2{10, 0}.Normalized()
	if math.Abs(n.X-1) > 1e-12 || n.Y != 0 {
		t.Errorf("expected unit x vector, got %v", n)
	}

	n = Vec2{3, 4}.Normalized()
	if math.Abs(n.Magnitude()-1) > 1e-12 {
		t.Errorf("expected unit magnitude, got %v", n.Magnitude())
	}
}

func TestVec2_NormalizedZero(t *testing.T) {
	n := Vec2{}.Normalized()
	if n.X != 0 || n.Y != 0 {
		t.Errorf("zero vector should normalize to itself, got %v", n)
	}
}
