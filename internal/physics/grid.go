package physics

const (
	// DefaultResolution is the fallback lattice density in cells per 100
	// world units, used when a non-positive resolution is requested.
	DefaultResolution = 20

	minCellsPerAxis = 10
)

// Grid samples the superposed gravitational field from a body set onto a
// regular 2D lattice. Cell contents are a pure function of the bodies passed
// to the last Resample call; nothing is cached or patched incrementally.
type Grid struct {
	worldWidth  float64
	worldHeight float64
	width       int
	height      int
	spacing     float64
	forces      []Vec2
}

// NewGrid derives lattice dimensions from the world size and a resolution
// parameter (cells per 100 world units). Non-positive resolution falls back
// to DefaultResolution, and each axis keeps at least ten cells.
func NewGrid(worldWidth, worldHeight float64, resolution int) *Grid {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	w := int(worldWidth * float64(resolution) / 100.0)
	h := int(worldHeight * float64(resolution) / 100.0)
	if w < minCellsPerAxis {
		w = minCellsPerAxis
	}
	if h < minCellsPerAxis {
		h = minCellsPerAxis
	}

	return &Grid{
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		width:       w,
		height:      h,
		spacing:     worldWidth / float64(w-1),
		forces:      make([]Vec2, w*h),
	}
}

func (g *Grid) Width() int           { return g.width }
func (g *Grid) Height() int          { return g.height }
func (g *Grid) Spacing() float64     { return g.spacing }
func (g *Grid) WorldWidth() float64  { return g.worldWidth }
func (g *Grid) WorldHeight() float64 { return g.worldHeight }

// Resample recomputes every cell from scratch: each lattice point sums
// ForceAtPoint over all bodies. O(cells x bodies) by design; the bodies move
// between calls, so a pure refresh is the only correct option.
func (g *Grid) Resample(bodies []*Body, gravity float64) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := g.GridToWorld(x, y)
			var total Vec2
			for _, b := range bodies {
				total = total.Add(b.ForceAtPoint(p, gravity))
			}
			g.forces[y*g.width+x] = total
		}
	}
}

// ForceAt returns the sampled force at a lattice point. Out-of-range
// indices yield the zero vector; the grid is advisory, never load-bearing.
func (g *Grid) ForceAt(ix, iy int) Vec2 {
	if !g.inBounds(ix, iy) {
		return Vec2{}
	}
	return g.forces[iy*g.width+ix]
}

// ForceMagnitudeAt returns the magnitude of the sampled force at a lattice
// point, or zero for out-of-range indices.
func (g *Grid) ForceMagnitudeAt(ix, iy int) float64 {
	if !g.inBounds(ix, iy) {
		return 0
	}
	return g.forces[iy*g.width+ix].Magnitude()
}

// WorldToGrid maps a world position to the nearest lattice cell, clamped to
// the grid bounds.
func (g *Grid) WorldToGrid(p Vec2) (int, int) {
	ix := int(p.X / g.worldWidth * float64(g.width-1))
	iy := int(p.Y / g.worldHeight * float64(g.height-1))

	ix = clampInt(ix, 0, g.width-1)
	iy = clampInt(iy, 0, g.height-1)
	return ix, iy
}

// GridToWorld maps lattice indices to the world position of that cell. For
// interior points it is the inverse of WorldToGrid up to one grid spacing.
func (g *Grid) GridToWorld(ix, iy int) Vec2 {
	return Vec2{
		X: float64(ix) / float64(g.width-1) * g.worldWidth,
		Y: float64(iy) / float64(g.height-1) * g.worldHeight,
	}
}

func (g *Grid) inBounds(ix, iy int) bool {
	return ix >= 0 && ix < g.width && iy >= 0 && iy < g.height
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
