package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/nants/internal/dynamo"
)

var ErrCorrupt = errors.New("storage: corrupt run")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type NoiseMetadata struct {
	Diffusion string    `json:"diffusion"`
	Params    []float64 `json:"params,omitempty"`
	Sigma     float64   `json:"sigma,omitempty"`
	Tau       float64   `json:"tau,omitempty"`
	Mode      string    `json:"mode,omitempty"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Method    string             `json:"method"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Steps     int                `json:"steps"`
	Labels    []string           `json:"labels,omitempty"`
	Initial   []float64          `json:"initial"`
	Params    []float64          `json:"params"`
	Noise     *NoiseMetadata     `json:"noise,omitempty"`
	Metrics   Metrics            `json:"metrics"`
}

// Save writes meta and sol under a new run directory and returns its id.
// ID, Timestamp and Steps are filled in from the store and the solution.
func (s *Store) Save(meta RunMetadata, sol *dynamo.Solution) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("%s_%s_%d", meta.Model, meta.Method, ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	meta.ID = runID
	meta.Timestamp = ts
	meta.Steps = sol.N

	// Files go to a staging directory first so a failed save leaves no
	// half-written run for List to trip over.
	if err := s.Init(); err != nil {
		return "", err
	}
	tmpDir, err := os.MkdirTemp(s.baseDir, ".save-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	if err := writeJSON(filepath.Join(tmpDir, "metadata.json"), meta); err != nil {
		return "", fmt.Errorf("save %s: %w", runID, err)
	}
	if err := writeStates(filepath.Join(tmpDir, "states.csv"), sol, meta.Labels); err != nil {
		return "", fmt.Errorf("save %s: %w", runID, err)
	}
	if err := os.Rename(tmpDir, runDir); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStates(path string, sol *dynamo.Solution, labels []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := WriteCSV(w, sol, labels); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// WriteCSV writes a header row then one row per sample: time, x0, x1, ...
func WriteCSV(w *csv.Writer, sol *dynamo.Solution, labels []string) error {
	d := sol.Dims()
	header := []string{"time"}
	for k := 0; k < d; k++ {
		if k < len(labels) {
			header = append(header, labels[k])
		} else {
			header = append(header, fmt.Sprintf("x%d", k))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, d+1)
	for i := 0; i < sol.N; i++ {
		row[0] = strconv.FormatFloat(sol.T[i], 'g', -1, 64)
		for k := 0; k < d; k++ {
			row[k+1] = strconv.FormatFloat(sol.Result[k*sol.N+i], 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns the readable runs, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", runID, ErrCorrupt, err)
	}
	return &meta, nil
}

// LoadSolution rebuilds the packed Solution from states.csv.
func (s *Store) LoadSolution(runID string) (*dynamo.Solution, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", runID, ErrCorrupt, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: %w: no samples", runID, ErrCorrupt)
	}

	n := len(records) - 1
	d := len(records[0]) - 1
	times := make([]float64, n)
	result := make([]float64, n*d)
	for i, record := range records[1:] {
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w: %v", runID, i+1, ErrCorrupt, err)
		}
		times[i] = t
		for k := 0; k < d; k++ {
			v, err := strconv.ParseFloat(record[k+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %w: %v", runID, i+1, ErrCorrupt, err)
			}
			result[k*n+i] = v
		}
	}
	return dynamo.NewSolution(times, result, n)
}
