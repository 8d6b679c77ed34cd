package sim

import (
	"math"

	"github.com/san-kum/gravgrid/internal/physics"
)

// Energy returns the total mechanical energy of the body set: kinetic plus
// pairwise gravitational potential. Useful as a drift indicator on the HUD
// and in stored run metrics; the damping bleed and bounce make it decay
// slowly rather than conserve exactly.
func (s *Simulation) Energy() float64 {
	ke := 0.0
	pe := 0.0

	for i, b := range s.bodies {
		ke += 0.5 * b.Mass * b.Velocity.MagnitudeSquared()

		for j := i + 1; j < len(s.bodies); j++ {
			r := s.bodies[j].Position.Sub(b.Position).Magnitude()
			if r < 1 {
				r = 1
			}
			pe -= s.gravity * b.Mass * s.bodies[j].Mass / r
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum of the body set.
func (s *Simulation) Momentum() physics.Vec2 {
	var p physics.Vec2
	for _, b := range s.bodies {
		p = p.Add(b.Velocity.Scale(b.Mass))
	}
	return p
}

// AngularMomentum returns the total angular momentum about the world center.
func (s *Simulation) AngularMomentum() float64 {
	center := physics.Vec2{X: s.worldWidth / 2, Y: s.worldHeight / 2}
	L := 0.0
	for _, b := range s.bodies {
		r := b.Position.Sub(center)
		L += b.Mass * (r.X*b.Velocity.Y - r.Y*b.Velocity.X)
	}
	return L
}

// Metrics bundles the diagnostics into the map shape stored with runs.
func (s *Simulation) Metrics() map[string]float64 {
	p := s.Momentum()
	return map[string]float64{
		"energy":           s.Energy(),
		"momentum_x":       p.X,
		"momentum_y":       p.Y,
		"angular_momentum": s.AngularMomentum(),
	}
}

// EnergyDrift returns the relative energy change against a reference value,
// or zero when the reference is zero.
func EnergyDrift(initial, final float64) float64 {
	if initial == 0 {
		return 0
	}
	return math.Abs(final-initial) / math.Abs(initial)
}
