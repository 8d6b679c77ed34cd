package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravgrid/internal/config"
	"github.com/san-kum/gravgrid/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	trailCapacity   = 400
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the terminal view of a running simulation: body markers
// with motion trails over a sparse rendering of the force field.
type Model struct {
	sim    *sim.Simulation
	cfg    *config.Config
	preset string
	dt     float64
	fps    int

	t       float64
	running bool

	canvas        *Canvas
	trails        [][]struct{ x, y int }
	energyHistory []float64
	showHelp      bool
	showField     bool
}

func NewModel(cfg *config.Config, preset string, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	s := sim.FromConfig(cfg)
	return Model{
		sim:           s,
		cfg:           cfg,
		preset:        preset,
		dt:            cfg.Dt,
		fps:           fps,
		running:       true,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		trails:        make([][]struct{ x, y int }, len(s.Bodies())),
		energyHistory: make([]float64, 0, historyCapacity),
		showField:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "f":
			m.showField = !m.showField
		case "up", "k":
			m.sim.SetG(m.sim.G() * 1.05)
		case "down", "j":
			m.sim.SetG(m.sim.G() * 0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.sim.Update(m.dt)
	m.t += m.dt

	m.energyHistory = append(m.energyHistory, m.sim.Energy())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}

	for i, b := range m.sim.Bodies() {
		if i >= len(m.trails) {
			break
		}
		x, y := m.toDots(b.Position.X, b.Position.Y)
		m.trails[i] = append(m.trails[i], struct{ x, y int }{x, y})
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}
}

func (m *Model) reset() {
	m.sim = sim.FromConfig(m.cfg)
	m.t = 0
	m.trails = make([][]struct{ x, y int }, len(m.sim.Bodies()))
	m.energyHistory = m.energyHistory[:0]
}

// toDots maps world coordinates onto the canvas dot raster.
func (m *Model) toDots(wx, wy float64) (int, int) {
	dw, dh := float64(canvasWidth*2-1), float64(canvasHeight*4-1)
	return int(wx / m.sim.WorldWidth() * dw), int(wy / m.sim.WorldHeight() * dh)
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.canvas.DrawRect(0, 0, canvasWidth*2-1, canvasHeight*4-1)

	if m.showField {
		m.drawField()
	}

	for _, trail := range m.trails {
		for _, pt := range trail {
			m.canvas.Set(pt.x, pt.y)
		}
	}

	for _, b := range m.sim.Bodies() {
		x, y := m.toDots(b.Position.X, b.Position.Y)
		r := 1
		if b.Radius >= 12 {
			r = 2
		}
		m.canvas.FillDisc(x, y, r)
	}
}

// drawField scatters dots where the sampled force field is strong,
// subsampling the grid so the canvas stays readable.
func (m *Model) drawField() {
	grid := m.sim.Grid()
	stepX := grid.Width() / 40
	if stepX < 1 {
		stepX = 1
	}
	stepY := grid.Height() / 20
	if stepY < 1 {
		stepY = 1
	}

	peak := 0.0
	for iy := 0; iy < grid.Height(); iy += stepY {
		for ix := 0; ix < grid.Width(); ix += stepX {
			if mag := grid.ForceMagnitudeAt(ix, iy); mag > peak {
				peak = mag
			}
		}
	}
	if peak == 0 {
		return
	}

	for iy := 0; iy < grid.Height(); iy += stepY {
		for ix := 0; ix < grid.Width(); ix += stepX {
			if grid.ForceMagnitudeAt(ix, iy)/peak < 0.25 {
				continue
			}
			p := grid.GridToWorld(ix, iy)
			x, y := m.toDots(p.X, p.Y)
			m.canvas.Set(x, y)
		}
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.preset)) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", len(m.sim.Bodies()))) + "\n")
	s.WriteString(labelStyle.Render("G") + valueStyle.Render(fmt.Sprintf("%.1f", m.sim.G())) + "\n")
	energy := 0.0
	if len(m.energyHistory) > 0 {
		energy = m.energyHistory[len(m.energyHistory)-1]
	}
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.2f", energy)) + "\n")
	mom := m.sim.Momentum()
	s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("(%.1f, %.1f)", mom.X, mom.Y)) + "\n")
	grid := m.sim.Grid()
	s.WriteString(labelStyle.Render("Field grid") + valueStyle.Render(fmt.Sprintf("%dx%d", grid.Width(), grid.Height())) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nF:Field ↑↓:Gravity ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  F        - Toggle force field       ║
║  Up/K     - Increase gravity (+5%)   ║
║  Down/J   - Decrease gravity (-5%)   ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
