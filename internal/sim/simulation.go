package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/gravgrid/internal/config"
	"github.com/san-kum/gravgrid/internal/physics"
)

const (
	// DefaultG is artificially large compared to the real constant so the
	// field warp is visible at world scale.
	DefaultG = 100.0

	defaultRestitution = 0.8
)

// Simulation owns the body set and the force grid and advances them in
// lockstep. All access from renderers goes through the read-only accessors;
// nothing outside this package mutates bodies or grid.
type Simulation struct {
	bodies      []*physics.Body
	grid        *physics.Grid
	worldWidth  float64
	worldHeight float64
	gravity     float64
	restitution float64
	scratch     []physics.Vec2
}

// New creates an empty simulation over a worldWidth x worldHeight area with
// a grid of the given resolution (cells per 100 world units).
func New(worldWidth, worldHeight float64, gridResolution int) *Simulation {
	return &Simulation{
		grid:        physics.NewGrid(worldWidth, worldHeight, gridResolution),
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		gravity:     DefaultG,
		restitution: defaultRestitution,
	}
}

// FromConfig builds a simulation from a scenario configuration. Bodies
// flagged Orbit get a circular-orbit velocity around the scenario's
// heaviest body; everything else keeps its configured velocity. The grid is
// sampled eagerly so the simulation is drawable before the first Update.
func FromConfig(cfg *config.Config) *Simulation {
	cfg.Sanitize()

	s := New(cfg.WorldWidth, cfg.WorldHeight, cfg.GridResolution)
	s.gravity = cfg.G
	s.restitution = cfg.Restitution

	var central *physics.Body
	for _, bc := range cfg.Bodies {
		b := physics.NewBody(physics.Vec2{X: bc.X, Y: bc.Y}, bc.Mass, bc.Radius)
		b.Velocity = physics.Vec2{X: bc.VX, Y: bc.VY}
		s.AddBody(b)
		if central == nil || b.Mass > central.Mass {
			central = b
		}
	}

	for i, bc := range cfg.Bodies {
		if bc.Orbit && s.bodies[i] != central {
			s.bodies[i].Velocity = OrbitalVelocity(central, s.bodies[i].Position, s.gravity)
		}
	}

	s.grid.Resample(s.bodies, s.gravity)
	return s
}

// Initialize populates the default demonstration scenario: a heavy central
// body with two lighter bodies on circular orbits, then eagerly samples the
// grid. Replaces any existing bodies.
func (s *Simulation) Initialize() {
	s.ClearBodies()

	central := physics.NewBody(
		physics.Vec2{X: s.worldWidth * 0.5, Y: s.worldHeight * 0.5}, 1000, 15)
	s.AddBody(central)

	for _, orb := range []struct {
		pos          physics.Vec2
		mass, radius float64
	}{
		{physics.Vec2{X: s.worldWidth * 0.25, Y: s.worldHeight * 0.3}, 200, 8},
		{physics.Vec2{X: s.worldWidth * 0.75, Y: s.worldHeight * 0.7}, 300, 10},
	} {
		b := physics.NewBody(orb.pos, orb.mass, orb.radius)
		b.Velocity = OrbitalVelocity(central, b.Position, s.gravity)
		s.AddBody(b)
	}

	s.grid.Resample(s.bodies, s.gravity)

	fmt.Printf("simulation initialized: %d bodies, %dx%d grid\n",
		len(s.bodies), s.grid.Width(), s.grid.Height())
}

// OrbitalVelocity returns the tangential velocity for a circular orbit
// around central at the given position: v = sqrt(G*M/r), counterclockwise.
func OrbitalVelocity(central *physics.Body, position physics.Vec2, gravity float64) physics.Vec2 {
	radial := position.Sub(central.Position)
	r := radial.Magnitude()
	if r == 0 {
		return physics.Vec2{}
	}
	speed := math.Sqrt(gravity * central.Mass / r)
	tangent := physics.Vec2{X: -radial.Y, Y: radial.X}.Normalized()
	return tangent.Scale(speed)
}

// Update advances the simulation by one tick:
//
//  1. all-pairs force accumulation (skipping self-force), using only
//     pre-step positions so the result is order-independent;
//  2. integration of every body with its accumulated force;
//  3. soft bounce at the world bounds;
//  4. an unconditional grid resample from the new positions.
//
// O(n^2) in the body count; fine at the handful of bodies this system runs.
func (s *Simulation) Update(dt float64) {
	n := len(s.bodies)
	if cap(s.scratch) < n {
		s.scratch = make([]physics.Vec2, n)
	}
	forces := s.scratch[:n]
	for i := range forces {
		forces[i] = physics.Vec2{}
	}

	for i, b := range s.bodies {
		for j, other := range s.bodies {
			if i == j {
				continue
			}
			forces[i] = forces[i].Add(b.ForceFrom(other, s.gravity))
		}
	}

	for i, b := range s.bodies {
		b.Integrate(forces[i], dt)
	}

	for _, b := range s.bodies {
		s.bounce(b)
	}

	s.grid.Resample(s.bodies, s.gravity)
}

// bounce reflects a body off the world bounds: position clamped back inside,
// the offending velocity component negated and damped by the restitution.
func (s *Simulation) bounce(b *physics.Body) {
	if b.Position.X < 0 {
		b.Position.X = 0
		b.Velocity.X = -b.Velocity.X * s.restitution
	} else if b.Position.X > s.worldWidth {
		b.Position.X = s.worldWidth
		b.Velocity.X = -b.Velocity.X * s.restitution
	}

	if b.Position.Y < 0 {
		b.Position.Y = 0
		b.Velocity.Y = -b.Velocity.Y * s.restitution
	} else if b.Position.Y > s.worldHeight {
		b.Position.Y = s.worldHeight
		b.Velocity.Y = -b.Velocity.Y * s.restitution
	}
}

func (s *Simulation) AddBody(b *physics.Body) {
	s.bodies = append(s.bodies, b)
}

func (s *Simulation) ClearBodies() {
	s.bodies = s.bodies[:0]
}

// Bodies returns the live body slice. Callers borrow it read-only for the
// duration of a draw call and must not hold it across ticks.
func (s *Simulation) Bodies() []*physics.Body { return s.bodies }

func (s *Simulation) Grid() *physics.Grid { return s.grid }

func (s *Simulation) G() float64 { return s.gravity }

func (s *Simulation) SetG(g float64) {
	if g > 0 {
		s.gravity = g
	}
}

func (s *Simulation) WorldWidth() float64  { return s.worldWidth }
func (s *Simulation) WorldHeight() float64 { return s.worldHeight }
