package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravgrid/internal/config"
	"github.com/san-kum/gravgrid/internal/gui"
	"github.com/san-kum/gravgrid/internal/sim"
	"github.com/san-kum/gravgrid/internal/storage"
	"github.com/san-kum/gravgrid/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	gravity    float64
	numBodies  int
	preset     string
	configFile string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravgrid",
		Short: "interactive gravitational field visualizer",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the 3D view when no command given
			cfg, name, err := resolveConfig(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			gui.Run(cfg, name)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravgrid", "data directory")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Float64Var(&gravity, "g", config.DefaultG, "gravitational constant")
	rootCmd.PersistentFlags().IntVar(&numBodies, "bodies", 0, "generate a scenario with this many bodies")

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "run with 3D visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				preset = args[0]
			}
			cfg, name, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg, name)
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and record the result",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0.016, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", 30.0, "duration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot body trajectories",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig builds the effective configuration: preset, then config
// file, then CLI flags, each layer overriding the previous one. It also
// returns a display name for the scenario.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	name := "orbit"

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		name = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		name = "custom"
	}

	if numBodies > 0 {
		cfg.Bodies = generateBodies(cfg, numBodies)
		name = fmt.Sprintf("generated-%d", numBodies)
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("g") {
		cfg.G = gravity
	}

	cfg.Sanitize()
	return cfg, name, nil
}

// generateBodies builds a deterministic scenario: a heavy central body with
// n-1 orbiters spread over increasing radii and evenly spaced angles.
func generateBodies(cfg *config.Config, n int) []config.BodyConfig {
	cx, cy := cfg.WorldWidth/2, cfg.WorldHeight/2
	bodies := []config.BodyConfig{
		{X: cx, Y: cy, Mass: 1000, Radius: 15},
	}

	span := math.Min(cfg.WorldWidth, cfg.WorldHeight)
	for i := 1; i < n; i++ {
		frac := float64(i) / float64(n)
		r := span * (0.15 + 0.3*frac)
		angle := float64(i) * 2 * math.Pi / float64(n-1)
		bodies = append(bodies, config.BodyConfig{
			X:      cx + r*math.Cos(angle),
			Y:      cy + r*math.Sin(angle),
			Mass:   100 + 40*float64(i%5),
			Radius: 5 + float64(i%3)*2,
			Orbit:  true,
		})
	}
	return bodies
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s := sim.FromConfig(cfg)

	fmt.Printf("running %s scenario...\n", name)
	start := time.Now()

	rec, err := sim.Record(context.Background(), s, cfg.Dt, cfg.Duration)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(name, cfg.Dt, cfg.Duration, cfg.G, rec)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(rec.Times))
	fmt.Println("\nmetrics:")
	for mname, val := range rec.Metrics {
		fmt.Printf("  %s: %.6f\n", mname, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg, name, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT\tBODIES\tG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%.1f\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Bodies,
			run.G,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(frames))

	// One chart per body: distance from the world center over time.
	cx, cy := meta.WorldWidth/2, meta.WorldHeight/2
	for b := 0; b < meta.Bodies; b++ {
		data := make([]float64, len(frames))
		for i, frame := range frames {
			if b*4+1 >= len(frame) {
				continue
			}
			dx := frame[b*4] - cx
			dy := frame[b*4+1] - cy
			data[i] = math.Sqrt(dx*dx + dy*dy)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("body %d distance from center", b)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	rec := &sim.Recording{
		Times:       times,
		Frames:      frames,
		Bodies:      meta.Bodies,
		WorldWidth:  meta.WorldWidth,
		WorldHeight: meta.WorldHeight,
		Metrics:     meta.Metrics,
	}

	return storage.ExportJSONStdout(meta.Preset, meta.Dt, meta.Duration, meta.G, rec)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	bodies := len(frames[0]) / 4
	for i := 0; i < bodies; i++ {
		header = append(header,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i), fmt.Sprintf("vy%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range frames {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range frames[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
