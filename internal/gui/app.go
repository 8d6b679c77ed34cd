package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravgrid/internal/camera"
	"github.com/san-kum/gravgrid/internal/config"
	"github.com/san-kum/gravgrid/internal/sim"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(10, 10, 14, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 150, 255)
	ColTextDim = rl.NewColor(60, 60, 70, 255)
	ColBody    = rl.NewColor(255, 220, 120, 255)
)

const (
	windowWidth  = 1280
	windowHeight = 720
	fovY         = 60.0
)

var menuModes = []camera.Mode{camera.FreeFlight, camera.GroundRelative}

type App struct {
	Sim    *sim.Simulation
	Cam    *camera.Controller
	Cfg    *config.Config
	Preset string

	Time    float64
	Dt      float64
	Running bool

	MenuVisible bool
	MenuSel     int
	quit        bool
}

func initWindow() {
	rl.InitWindow(windowWidth, windowHeight, "gravgrid")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config, preset string) *App {
	return &App{
		Sim:     sim.FromConfig(cfg),
		Cam:     camera.NewController(),
		Cfg:     cfg,
		Preset:  preset,
		Dt:      cfg.Dt,
		Running: true,
	}
}

// Run opens the window and blocks until the user quits.
func Run(cfg *config.Config, preset string) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(cfg, preset)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) reset() {
	a.Sim = sim.FromConfig(a.Cfg)
	a.Time = 0
	a.Running = true
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}

	if a.MenuVisible {
		a.updateMenu()
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyM) {
		a.MenuVisible = true
		a.MenuSel = int(a.Cam.Mode())
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}

	a.updateCamera()

	if a.Running {
		a.Sim.Update(a.Dt)
		a.Time += a.Dt
	}
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyM) {
		a.MenuVisible = false
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.MenuSel = (a.MenuSel + 1) % len(menuModes)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.MenuSel--
		if a.MenuSel < 0 {
			a.MenuSel = len(menuModes) - 1
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		a.Cam.SwitchMode(menuModes[a.MenuSel])
		a.MenuVisible = false
	}
}

func (a *App) updateCamera() {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		a.Cam.UpdateFromMouse(float64(delta.X), float64(delta.Y), true)
	}

	var forward, right, up float64
	if rl.IsKeyDown(rl.KeyW) {
		forward += 1
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward -= 1
	}
	if rl.IsKeyDown(rl.KeyD) {
		right += 1
	}
	if rl.IsKeyDown(rl.KeyA) {
		right -= 1
	}
	if rl.IsKeyDown(rl.KeyE) {
		up += 1
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		up -= 1
	}
	if forward != 0 || right != 0 || up != 0 {
		a.Cam.UpdateFromKeyboard(forward, right, up)
	}
}

func (a *App) rlCamera() rl.Camera3D {
	tr := a.Cam.Transform()
	return rl.NewCamera3D(
		rl.NewVector3(float32(tr.Eye.X), float32(tr.Eye.Y), float32(tr.Eye.Z)),
		rl.NewVector3(float32(tr.Target.X), float32(tr.Target.Y), float32(tr.Target.Z)),
		rl.NewVector3(float32(tr.Up.X), float32(tr.Up.Y), float32(tr.Up.Z)),
		fovY,
		rl.CameraPerspective,
	)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	cam := a.rlCamera()
	rl.BeginMode3D(cam)
	a.renderField()
	a.renderBodies()
	rl.EndMode3D()

	a.drawHUD()
	if a.MenuVisible {
		a.drawMenu()
	}

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	rl.DrawText("gravgrid", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %s", a.Preset), 150, 34, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, 1160, 30, 16, col)

	rl.DrawText(fmt.Sprintf("camera: %s", a.Cam.Mode()), 30, 60, 14, ColText)
	rl.DrawText(fmt.Sprintf("bodies: %d", len(a.Sim.Bodies())), 30, 80, 14, ColText)
	rl.DrawText(fmt.Sprintf("energy: %.1f", a.Sim.Energy()), 30, 100, 14, ColText)
	rl.DrawText(fmt.Sprintf("t: %.1fs", a.Time), 30, 120, 14, ColText)

	rl.DrawText("[SPACE] PAUSE  [R] RESET  [M] CAMERA  [ESC] QUIT", 740, 690, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 690, 14, ColTextDim)
}

func (a *App) drawMenu() {
	rl.DrawRectangle(440, 240, 400, 200, rl.NewColor(0, 0, 0, 220))
	rl.DrawRectangleLines(440, 240, 400, 200, ColTextDim)
	rl.DrawText("camera mode", 470, 270, 20, ColSelect)

	y := int32(320)
	for i, mode := range menuModes {
		label := mode.String()
		if i == a.MenuSel {
			rl.DrawText(fmt.Sprintf("> %s", label), 470, y, 20, ColSelect)
		} else {
			rl.DrawText(fmt.Sprintf("  %s", label), 470, y, 20, ColText)
		}
		y += 32
	}

	rl.DrawText("ARROWS: NAVIGATE  ENTER: SELECT  ESC: CLOSE", 450, 410, 12, ColTextDim)
}
