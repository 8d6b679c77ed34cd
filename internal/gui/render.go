package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravgrid/internal/physics"
)

const (
	// Force magnitude that maps to full mesh depression and full color.
	maxForceVisualization = 500.0
	maxDepth              = 100.0
)

// fieldPoint lifts a grid sample into world space. The plane is centered
// on the origin and strong forces pull the mesh downward.
func (a *App) fieldPoint(grid *physics.Grid, ix, iy int) rl.Vector3 {
	p := grid.GridToWorld(ix, iy)
	mag := grid.ForceMagnitudeAt(ix, iy)

	depth := mag / maxForceVisualization
	if depth > 1 {
		depth = 1
	}

	return rl.NewVector3(
		float32(p.X-a.Sim.WorldWidth()/2),
		float32(-depth*maxDepth),
		float32(p.Y-a.Sim.WorldHeight()/2),
	)
}

func fieldColor(mag float64) rl.Color {
	t := mag / (maxForceVisualization * 0.2)
	if t > 1 {
		t = 1
	}
	r := uint8(40 + t*200)
	g := uint8(60 + (1-t)*40)
	b := uint8(220 - t*170)
	return rl.NewColor(r, g, b, 255)
}

// renderField draws the sampled force field as a wireframe sheet that sags
// where the field is strong.
func (a *App) renderField() {
	grid := a.Sim.Grid()

	for iy := 0; iy < grid.Height(); iy++ {
		for ix := 0; ix < grid.Width(); ix++ {
			p := a.fieldPoint(grid, ix, iy)
			col := fieldColor(grid.ForceMagnitudeAt(ix, iy))

			if ix+1 < grid.Width() {
				rl.DrawLine3D(p, a.fieldPoint(grid, ix+1, iy), col)
			}
			if iy+1 < grid.Height() {
				rl.DrawLine3D(p, a.fieldPoint(grid, ix, iy+1), col)
			}
		}
	}
}

func (a *App) renderBodies() {
	for _, b := range a.Sim.Bodies() {
		pos := rl.NewVector3(
			float32(b.Position.X-a.Sim.WorldWidth()/2),
			0,
			float32(b.Position.Y-a.Sim.WorldHeight()/2),
		)
		rl.DrawSphere(pos, float32(b.Radius), ColBody)
	}
}
