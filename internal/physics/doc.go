// Package physics provides the gravitational primitives for the simulation:
//
//   - [Vec2]: 2D vector math for positions, velocities, and forces
//   - [Body]: a point mass with pairwise force laws and a semi-implicit
//     Euler step
//   - [Grid]: a regular lattice of sampled field vectors used for
//     visualization
//
// The two force functions deliberately carry different clamps. ForceFrom
// drives the N-body dynamics and needs a generous distance floor to keep
// orbits stable; ForceAtPoint only feeds the visualization grid and can
// tolerate much closer approach.
package physics
