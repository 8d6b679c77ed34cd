package physics

import "math"

// Clamps for the two force laws. Body-to-body dynamics uses a larger
// distance floor to keep orbits numerically stable; grid sampling tolerates
// much closer approach since the sampled field is only drawn, never fed back
// into the dynamics. The two sets of constants are independent tunables.
const (
	minBodyDistance = 5.0
	maxBodyForce    = 5000.0

	minSampleDistance = 1.0
	maxSampleForce    = 1000.0

	// velocityDamping bleeds a tiny fraction of velocity each step to keep
	// the integration stable. It is not physical drag.
	velocityDamping = 0.99999

	minMass   = 1e-6
	minRadius = 0.1
)

// Body is a point mass with a position, velocity, and a visual radius.
// Bodies are owned by a Simulation; everything else reads them through
// borrowed views.
type Body struct {
	Position Vec2
	Velocity Vec2
	Mass     float64
	Radius   float64
}

// NewBody constructs a body at position with the given mass and visual
// radius. Non-positive mass or radius is clamped to a small positive
// minimum so no downstream force computation can divide by zero.
func NewBody(position Vec2, mass, radius float64) *Body {
	if mass <= 0 {
		mass = minMass
	}
	if radius <= 0 {
		radius = minRadius
	}
	return &Body{Position: position, Mass: mass, Radius: radius}
}

// ForceFrom returns the gravitational pull other exerts on b, pointing from
// b toward other. Separation is floored at minBodyDistance and the magnitude
// capped at maxBodyForce, so coincident bodies produce a large finite force
// instead of a singularity.
func (b *Body) ForceFrom(other *Body, g float64) Vec2 {
	dir := other.Position.Sub(b.Position)
	d2 := dir.MagnitudeSquared()
	if d2 < minBodyDistance*minBodyDistance {
		d2 = minBodyDistance * minBodyDistance
	}
	mag := g * b.Mass * other.Mass / d2
	mag = math.Min(mag, maxBodyForce)
	return dir.Normalized().Scale(mag)
}

// ForceAtPoint returns the force b exerts on a unit test mass at point,
// pointing from the point toward b. Used only for sampling the
// visualization grid; its clamps differ from ForceFrom on purpose.
func (b *Body) ForceAtPoint(point Vec2, g float64) Vec2 {
	dir := b.Position.Sub(point)
	d2 := dir.MagnitudeSquared()
	if d2 < minSampleDistance*minSampleDistance {
		d2 = minSampleDistance * minSampleDistance
	}
	mag := g * b.Mass / d2
	mag = math.Min(mag, maxSampleForce)
	return dir.Normalized().Scale(mag)
}

// Integrate advances the body by one semi-implicit Euler step: velocity
// first, then position from the updated velocity. Call exactly once per
// tick per body, after every pairwise force for that tick has been summed.
func (b *Body) Integrate(net Vec2, dt float64) {
	b.Velocity = b.Velocity.Add(net.Scale(dt / b.Mass))
	b.Velocity = b.Velocity.Scale(velocityDamping)
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}
