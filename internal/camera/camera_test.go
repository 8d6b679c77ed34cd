package camera

import (
	"math"
	"testing"
)

func TestNewController_Defaults(t *testing.T) {
	c := NewController()

	if c.Mode() != FreeFlight {
		t.Errorf("expected FreeFlight start mode, got %v", c.Mode())
	}
	if c.free.distance != 800 || c.free.angleX != 30 || c.free.angleY != -15 {
		t.Errorf("unexpected free-flight defaults: %+v", c.free)
	}
	if c.ground.pitch != 30 || c.ground.eyeHeight != 100 {
		t.Errorf("unexpected ground defaults: %+v", c.ground)
	}
}

func TestSwitchMode_SameModeIsNoop(t *testing.T) {
	c := NewController()
	c.free.angleY = 42

	c.SwitchMode(FreeFlight)

	if c.Mode() != FreeFlight || c.free.angleY != 42 {
		t.Error("switching to the current mode should change nothing")
	}
	if c.ground.yaw != 0 {
		t.Error("no projection should happen on a same-mode switch")
	}
}

func TestSwitchMode_ProjectsToGround(t *testing.T) {
	c := NewController()
	c.free.angleX = 30
	c.free.angleY = -15
	c.free.posX = 7
	c.free.posZ = -3
	c.free.posY = -40

	c.SwitchMode(GroundRelative)

	if c.Mode() != GroundRelative {
		t.Fatalf("mode not switched: %v", c.Mode())
	}
	if c.ground.pitch != 30 || c.ground.yaw != -15 {
		t.Errorf("angles not carried: pitch=%v yaw=%v", c.ground.pitch, c.ground.yaw)
	}
	if c.ground.posX != 7 || c.ground.posZ != -3 {
		t.Errorf("ground position not carried: (%v, %v)", c.ground.posX, c.ground.posZ)
	}
	// eyeHeight = clamp(-posY + 100) = 140, inside [10, 500].
	if c.ground.eyeHeight != 140 {
		t.Errorf("expected eye height 140, got %v", c.ground.eyeHeight)
	}
}

func TestSwitchMode_RoundTrip(t *testing.T) {
	c := NewController()
	c.free.angleX = 30
	c.free.angleY = -15
	c.free.posY = -40

	c.SwitchMode(GroundRelative)
	c.SwitchMode(FreeFlight)

	if c.free.angleX != 30 || c.free.angleY != -15 {
		t.Errorf("angles should round-trip exactly: %v / %v", c.free.angleX, c.free.angleY)
	}
	if math.Abs(c.free.posY-(-40)) > 1e-12 {
		t.Errorf("posY should round-trip within precision, got %v", c.free.posY)
	}
}

func TestSwitchMode_EyeHeightClamped(t *testing.T) {
	c := NewController()
	c.free.posY = -2000 // would mean eye height 2100

	c.SwitchMode(GroundRelative)

	if c.ground.eyeHeight != 500 {
		t.Errorf("expected eye height clamped to 500, got %v", c.ground.eyeHeight)
	}

	// And the clamp is lossy on the way back.
	c.SwitchMode(FreeFlight)
	if c.free.posY != -400 {
		t.Errorf("expected posY -400 after clamped round trip, got %v", c.free.posY)
	}
}

func TestSwitchMode_RepresentationsDivergeAfterSwitch(t *testing.T) {
	c := NewController()
	c.SwitchMode(GroundRelative)

	c.UpdateFromMouse(20, 0, true)

	// Only the active representation moves.
	if c.ground.yaw == 0 {
		t.Error("active ground yaw should have changed")
	}
	if c.free.angleY != -15 {
		t.Errorf("inactive free-flight state should be untouched, got %v", c.free.angleY)
	}
}

func TestUpdateFromMouse_NotHeldIsNoop(t *testing.T) {
	for _, mode := range []Mode{FreeFlight, GroundRelative} {
		c := NewController()
		c.SwitchMode(mode)
		before := *c

		c.UpdateFromMouse(100, 100, false)

		if c.free != before.free || c.ground != before.ground {
			t.Errorf("mode %v: unheld drag must not move the camera", mode)
		}
	}
}

func TestUpdateFromMouse_PitchClamp(t *testing.T) {
	c := NewController()

	c.UpdateFromMouse(0, 100000, true)
	if c.free.angleX != maxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", maxPitch, c.free.angleX)
	}

	c.UpdateFromMouse(0, -200000, true)
	if c.free.angleX != minPitch {
		t.Errorf("expected pitch clamped to %v, got %v", minPitch, c.free.angleX)
	}
}

func TestUpdateFromMouse_YawWraps(t *testing.T) {
	c := NewController()
	c.free.angleY = 359

	c.UpdateFromMouse(10, 0, true) // +5 degrees at default sensitivity

	if c.free.angleY > 360 || c.free.angleY < -360 {
		t.Errorf("yaw outside canonical range: %v", c.free.angleY)
	}
	if math.Abs(c.free.angleY-4) > 1e-9 {
		t.Errorf("expected wrap to 4, got %v", c.free.angleY)
	}
}

func TestUpdateFromKeyboard_FreeFlightPitchAffectsMovement(t *testing.T) {
	c := NewController()
	c.free.angleY = 0
	c.free.angleX = 45

	c.UpdateFromKeyboard(1, 0, 0)

	// With pitch engaged, some of the forward motion goes vertical.
	if c.free.posY == 0 {
		t.Error("free flight forward with pitch should move vertically")
	}
	if c.free.posZ == 0 {
		t.Error("free flight forward should also move horizontally at 45 degrees")
	}
}

func TestUpdateFromKeyboard_ZoomClamp(t *testing.T) {
	c := NewController()

	for i := 0; i < 100; i++ {
		c.UpdateFromKeyboard(1, 0, 0)
	}
	if c.free.distance != minDistance {
		t.Errorf("expected distance clamped to %v, got %v", minDistance, c.free.distance)
	}

	for i := 0; i < 100; i++ {
		c.UpdateFromKeyboard(-1, 0, 0)
	}
	if c.free.distance != maxDistance {
		t.Errorf("expected distance clamped to %v, got %v", maxDistance, c.free.distance)
	}
}

func TestUpdateFromKeyboard_GroundIgnoresPitch(t *testing.T) {
	c := NewController()
	c.SwitchMode(GroundRelative)
	c.ground.pitch = 80
	c.ground.yaw = 0

	c.UpdateFromKeyboard(1, 0, 0)

	// Ground movement resolves through yaw only: straight along +z here.
	if math.Abs(c.ground.posX) > 1e-12 {
		t.Errorf("expected no x drift, got %v", c.ground.posX)
	}
	if math.Abs(c.ground.posZ-defaultSpeed) > 1e-12 {
		t.Errorf("expected posZ %v, got %v", defaultSpeed, c.ground.posZ)
	}
}

func TestUpdateFromKeyboard_EyeHeightClamp(t *testing.T) {
	c := NewController()
	c.SwitchMode(GroundRelative)

	for i := 0; i < 100; i++ {
		c.UpdateFromKeyboard(0, 0, 1)
	}
	if c.ground.eyeHeight != maxEyeHeight {
		t.Errorf("expected eye height clamped to %v, got %v", maxEyeHeight, c.ground.eyeHeight)
	}

	for i := 0; i < 100; i++ {
		c.UpdateFromKeyboard(0, 0, -1)
	}
	if c.ground.eyeHeight != minEyeHeight {
		t.Errorf("expected eye height clamped to %v, got %v", minEyeHeight, c.ground.eyeHeight)
	}
}

func TestTransform_GroundEyePlacement(t *testing.T) {
	c := NewController()
	c.SwitchMode(GroundRelative)
	c.ground.posX = 12
	c.ground.posZ = -8
	c.ground.eyeHeight = 150

	tr := c.Transform()

	if tr.Eye != (Vec3{12, 150, -8}) {
		t.Errorf("unexpected eye position: %+v", tr.Eye)
	}
	if tr.Target == tr.Eye {
		t.Error("target must differ from eye")
	}
}

func TestTransform_FreeFlightOrbitsPivot(t *testing.T) {
	c := NewController()
	c.free.angleX = 0
	c.free.angleY = 0
	c.free.posX, c.free.posY, c.free.posZ = -5, -10, -20
	c.free.distance = 300

	tr := c.Transform()

	// Zero angles: eye sits straight down +z from the pivot.
	if tr.Target != (Vec3{5, 10, 20}) {
		t.Errorf("unexpected pivot: %+v", tr.Target)
	}
	if tr.Eye != (Vec3{5, 10, 320}) {
		t.Errorf("unexpected eye: %+v", tr.Eye)
	}
	if tr.Up != (Vec3{0, 1, 0}) {
		t.Errorf("unexpected up: %+v", tr.Up)
	}
}

func TestTransform_DoesNotMutate(t *testing.T) {
	c := NewController()
	before := *c

	_ = c.Transform()
	c.SwitchMode(GroundRelative)
	_ = c.Transform()
	c.SwitchMode(FreeFlight)

	if c.free != before.free {
		t.Errorf("transform or round-trip switch mutated state: %+v vs %+v", c.free, before.free)
	}
}
