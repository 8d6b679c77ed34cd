package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/gravgrid/internal/sim"
)

type ExportData struct {
	Preset      string             `json:"preset"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	G           float64            `json:"g"`
	Bodies      int                `json:"bodies"`
	WorldWidth  float64            `json:"world_width"`
	WorldHeight float64            `json:"world_height"`
	Steps       int                `json:"steps"`
	Times       []float64          `json:"times"`
	Frames      [][]float64        `json:"frames"`
	Metrics     map[string]float64 `json:"metrics"`
}

func ExportJSON(path, preset string, dt, duration, g float64, rec *sim.Recording) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return exportJSON(file, preset, dt, duration, g, rec)
}

func ExportJSONStdout(preset string, dt, duration, g float64, rec *sim.Recording) error {
	return exportJSON(os.Stdout, preset, dt, duration, g, rec)
}

func exportJSON(w io.Writer, preset string, dt, duration, g float64, rec *sim.Recording) error {
	data := ExportData{
		Preset:      preset,
		Dt:          dt,
		Duration:    duration,
		G:           g,
		Bodies:      rec.Bodies,
		WorldWidth:  rec.WorldWidth,
		WorldHeight: rec.WorldHeight,
		Steps:       len(rec.Times),
		Times:       rec.Times,
		Frames:      rec.Frames,
		Metrics:     rec.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
