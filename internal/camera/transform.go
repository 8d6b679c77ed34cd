package camera

import "math"

// Vec3 is the minimal 3D vector the view transform needs.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Transform is a read-only snapshot of the active camera as an eye/target/up
// triple, ready for the renderer. Producing it never mutates the controller.
type Transform struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3
}

// Transform derives the current view from whichever representation is
// active.
//
// Free-flight is an orbit camera: the eye circles a pivot at -pos, offset by
// distance through the pitch/yaw rotation. Ground-relative places the eye at
// (posX, eyeHeight, posZ) looking along yaw/pitch.
func (c *Controller) Transform() Transform {
	switch c.mode {
	case GroundRelative:
		p := c.ground.pitch * math.Pi / 180
		y := c.ground.yaw * math.Pi / 180

		eye := Vec3{c.ground.posX, c.ground.eyeHeight, c.ground.posZ}
		forward := Vec3{
			-math.Cos(p) * math.Sin(y),
			math.Sin(p),
			-math.Cos(p) * math.Cos(y),
		}
		up := Vec3{
			math.Sin(p) * math.Sin(y),
			math.Cos(p),
			math.Sin(p) * math.Cos(y),
		}
		return Transform{Eye: eye, Target: eye.Add(forward), Up: up}

	default:
		ax := c.free.angleX * math.Pi / 180
		ay := c.free.angleY * math.Pi / 180

		pivot := Vec3{-c.free.posX, -c.free.posY, -c.free.posZ}
		offset := Vec3{
			-c.free.distance * math.Cos(ax) * math.Sin(ay),
			c.free.distance * math.Sin(ax),
			c.free.distance * math.Cos(ax) * math.Cos(ay),
		}
		up := Vec3{
			math.Sin(ax) * math.Sin(ay),
			math.Cos(ax),
			-math.Sin(ax) * math.Cos(ay),
		}
		return Transform{Eye: pivot.Add(offset), Target: pivot, Up: up}
	}
}
