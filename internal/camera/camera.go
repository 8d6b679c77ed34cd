// Package camera implements the two navigation models for the 3D view,
// free-flight and ground-relative, behind a single Controller that projects
// state between them on mode switches.
package camera

import "math"

// Mode selects which navigation model is active.
type Mode int

const (
	FreeFlight Mode = iota
	GroundRelative
)

func (m Mode) String() string {
	switch m {
	case FreeFlight:
		return "free-flight"
	case GroundRelative:
		return "ground-relative"
	default:
		return "unknown"
	}
}

const (
	defaultSpeed       = 10.0
	defaultSensitivity = 0.5

	minPitch = -89.0
	maxPitch = 89.0

	minDistance = 50.0
	maxDistance = 2000.0

	minEyeHeight = 10.0
	maxEyeHeight = 500.0

	// baseOffset relates the free-flight vertical offset to the
	// ground-relative eye height during mode-switch projection.
	baseOffset = 100.0
)

// freeFlightState is the orbit-style 6-DOF representation: a pivot offset
// by posX/Y/Z, viewed from distance at pitch angleX / yaw angleY (degrees).
type freeFlightState struct {
	distance         float64
	angleX, angleY   float64
	posX, posY, posZ float64
}

// groundState is the FPS-style representation: an eye at posX/posZ raised
// to eyeHeight, looking along yaw/pitch (degrees).
type groundState struct {
	yaw, pitch float64
	posX, posZ float64
	eyeHeight  float64
}

// Controller holds both camera representations and the active-mode flag.
// Both representations live for the controller's whole lifetime; switching
// modes copies a one-way projection into the target representation and the
// two then diverge freely until the next switch.
type Controller struct {
	mode        Mode
	free        freeFlightState
	ground      groundState
	speed       float64
	sensitivity float64
}

func NewController() *Controller {
	return &Controller{
		mode:        FreeFlight,
		free:        freeFlightState{distance: 800, angleX: 30, angleY: -15},
		ground:      groundState{pitch: 30, eyeHeight: baseOffset},
		speed:       defaultSpeed,
		sensitivity: defaultSensitivity,
	}
}

func (c *Controller) Mode() Mode { return c.mode }

// SwitchMode changes the active navigation model. A switch to the current
// mode is a no-op; an actual transition projects the outgoing state into
// the incoming representation.
func (c *Controller) SwitchMode(target Mode) {
	if target == c.mode {
		return
	}

	switch target {
	case GroundRelative:
		c.ground.yaw = c.free.angleY
		c.ground.pitch = c.free.angleX
		c.ground.posX = c.free.posX
		c.ground.posZ = c.free.posZ
		c.ground.eyeHeight = clamp(-c.free.posY+baseOffset, minEyeHeight, maxEyeHeight)
	case FreeFlight:
		c.free.angleY = c.ground.yaw
		c.free.angleX = c.ground.pitch
		c.free.posX = c.ground.posX
		c.free.posZ = c.ground.posZ
		c.free.posY = -(c.ground.eyeHeight - baseOffset)
	}

	c.mode = target
}

// UpdateFromMouse turns a mouse drag into yaw/pitch changes on the active
// representation. Without the button held it does nothing. Pitch is clamped
// to +/-89 degrees to avoid gimbal flip; yaw wraps into [-360, 360].
func (c *Controller) UpdateFromMouse(dx, dy float64, held bool) {
	if !held {
		return
	}

	switch c.mode {
	case FreeFlight:
		c.free.angleY = wrapYaw(c.free.angleY + dx*c.sensitivity)
		c.free.angleX = clamp(c.free.angleX+dy*c.sensitivity, minPitch, maxPitch)
	case GroundRelative:
		c.ground.yaw = wrapYaw(c.ground.yaw + dx*c.sensitivity)
		c.ground.pitch = clamp(c.ground.pitch+dy*c.sensitivity, minPitch, maxPitch)
	}
}

// UpdateFromKeyboard applies movement intents in {-1, 0, 1} per axis.
// Free-flight resolves all three through yaw and pitch (true 6-DOF) and
// additionally treats forward as a zoom adjustment; ground-relative moves
// on the ground plane through yaw only and maps up to eye height.
func (c *Controller) UpdateFromKeyboard(forward, right, up float64) {
	switch c.mode {
	case FreeFlight:
		radY := c.free.angleY * math.Pi / 180
		radX := c.free.angleX * math.Pi / 180

		c.free.posX += forward * math.Sin(radY) * math.Cos(radX) * c.speed
		c.free.posY += forward * math.Sin(radX) * c.speed
		c.free.posZ += forward * math.Cos(radY) * math.Cos(radX) * c.speed

		c.free.posX += right * math.Cos(radY) * c.speed
		c.free.posZ -= right * math.Sin(radY) * c.speed

		c.free.posY += up * c.speed

		if forward != 0 {
			c.free.distance = clamp(c.free.distance-forward*c.speed*5, minDistance, maxDistance)
		}

	case GroundRelative:
		radYaw := c.ground.yaw * math.Pi / 180

		c.ground.posX += forward * math.Sin(radYaw) * c.speed
		c.ground.posZ += forward * math.Cos(radYaw) * c.speed

		c.ground.posX += right * math.Cos(radYaw) * c.speed
		c.ground.posZ -= right * math.Sin(radYaw) * c.speed

		c.ground.eyeHeight = clamp(c.ground.eyeHeight+up*c.speed, minEyeHeight, maxEyeHeight)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapYaw(v float64) float64 {
	if v > 360 {
		v -= 360
	}
	if v < -360 {
		v += 360
	}
	return v
}
