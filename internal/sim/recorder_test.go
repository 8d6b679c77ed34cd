package sim

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestRecord(t *testing.T) {
	s := New(800, 600, 2)
	s.Initialize()

	dt, duration := 0.016, 1.0
	rec, err := Record(context.Background(), s, dt, duration)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}

	steps := int(duration / dt)
	if len(rec.Frames) != steps+1 {
		t.Errorf("expected %d frames, got %d", steps+1, len(rec.Frames))
	}
	if rec.Bodies != 3 {
		t.Errorf("expected 3 bodies, got %d", rec.Bodies)
	}
	if len(rec.Frames[0]) != rec.Bodies*4 {
		t.Errorf("frame width %d, want %d", len(rec.Frames[0]), rec.Bodies*4)
	}

	if _, ok := rec.Metrics["energy_drift"]; !ok {
		t.Error("expected energy_drift metric")
	}
	for name, v := range rec.Metrics {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("metric %s is not finite: %v", name, v)
		}
	}
}

func TestRecord_Canceled(t *testing.T) {
	s := New(800, 600, 2)
	s.Initialize()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := Record(ctx, s, 0.016, 10.0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if rec == nil || len(rec.Frames) != 1 {
		t.Errorf("expected the initial frame in the partial recording")
	}
}

func TestEnergyDrift(t *testing.T) {
	tests := []struct {
		initial, final, want float64
	}{
		{100, 90, 0.1},
		{100, 100, 0},
		{0, 50, 0},
		{-100, -110, 0.1},
	}

	for _, tt := range tests {
		if got := EnergyDrift(tt.initial, tt.final); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EnergyDrift(%v, %v) = %v, want %v", tt.initial, tt.final, got, tt.want)
		}
	}
}

func TestDiagnostics_TwoBodySymmetry(t *testing.T) {
	s := New(800, 600, 2)
	s.Initialize()

	// Equal and opposite orbital momenta do not cancel here (different
	// masses and radii), but every diagnostic must be finite.
	if e := s.Energy(); math.IsNaN(e) || math.IsInf(e, 0) {
		t.Errorf("energy not finite: %v", e)
	}
	p := s.Momentum()
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Errorf("momentum not finite: %v", p)
	}
	if l := s.AngularMomentum(); math.IsNaN(l) {
		t.Errorf("angular momentum not finite: %v", l)
	}
}
