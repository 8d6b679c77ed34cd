package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/gravgrid/internal/sim"
)

// Store persists recorded runs on disk, one directory per run holding
// metadata.json and states.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Preset      string             `json:"preset"`
	Timestamp   time.Time          `json:"timestamp"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	G           float64            `json:"g"`
	Bodies      int                `json:"bodies"`
	WorldWidth  float64            `json:"world_width"`
	WorldHeight float64            `json:"world_height"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes a new run directory and returns its ID. Each CSV row is the
// time followed by x, y, vx, vy for every body.
func (s *Store) Save(preset string, dt, duration, g float64, rec *sim.Recording) (string, error) {
	runID := fmt.Sprintf("%s_%d", preset, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Preset:      preset,
		Timestamp:   time.Now(),
		Dt:          dt,
		Duration:    duration,
		G:           g,
		Bodies:      rec.Bodies,
		WorldWidth:  rec.WorldWidth,
		WorldHeight: rec.WorldHeight,
		Metrics:     rec.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "states.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(rec.Frames) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := 0; i < rec.Bodies; i++ {
		header = append(header,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i), fmt.Sprintf("vy%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, frame := range rec.Frames {
		row := []string{strconv.FormatFloat(rec.Times[i], 'f', 6, 64)}
		for _, val := range frame {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadFrames reads a run's state history back. Malformed rows are skipped.
func (s *Store) LoadFrames(runID string) ([][]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "states.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	frames := make([][]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		frame := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			frame = append(frame, val)
		}
		frames = append(frames, frame)
	}

	return frames, times, nil
}
