package sim

import "context"

// Recording captures a headless run: one frame per step, each frame holding
// x, y, vx, vy per body in body order.
type Recording struct {
	Times       []float64
	Frames      [][]float64
	Bodies      int
	WorldWidth  float64
	WorldHeight float64
	Metrics     map[string]float64
}

// Record advances the simulation for duration at fixed dt, capturing every
// step. The context is checked once per step; on cancellation the partial
// recording is returned along with the context error.
func Record(ctx context.Context, s *Simulation, dt, duration float64) (*Recording, error) {
	steps := int(duration / dt)
	rec := &Recording{
		Times:       make([]float64, 0, steps+1),
		Frames:      make([][]float64, 0, steps+1),
		Bodies:      len(s.Bodies()),
		WorldWidth:  s.WorldWidth(),
		WorldHeight: s.WorldHeight(),
	}

	initialEnergy := s.Energy()

	t := 0.0
	rec.capture(s, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			rec.finish(s, initialEnergy)
			return rec, ctx.Err()
		default:
		}

		s.Update(dt)
		t += dt
		rec.capture(s, t)
	}

	rec.finish(s, initialEnergy)
	return rec, nil
}

func (r *Recording) capture(s *Simulation, t float64) {
	frame := make([]float64, 0, len(s.Bodies())*4)
	for _, b := range s.Bodies() {
		frame = append(frame, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y)
	}
	r.Times = append(r.Times, t)
	r.Frames = append(r.Frames, frame)
}

func (r *Recording) finish(s *Simulation, initialEnergy float64) {
	r.Metrics = s.Metrics()
	r.Metrics["energy_drift"] = EnergyDrift(initialEnergy, s.Energy())
}
