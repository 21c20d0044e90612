// Package storage persists finished runs for later plotting and analysis.
// The core never touches it; serialization is the CLI layer's concern.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mstolbov/attractor/internal/chaos"
)

// Store keeps one directory per run under a base data dir:
// metadata.json plus trajectory.csv.
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
	ID         string    `json:"id"`
	Family     string    `json:"family"`
	Method     string    `json:"method"`
	Timestamp  time.Time `json:"timestamp"`
	Step       float64   `json:"step"`
	Iterations int       `json:"iterations"`
	Params     []float64 `json:"params"`
	Initial    []float64 `json:"initial"`
}

func (s *Store) Save(meta RunMetadata, tr chaos.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Family, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"iteration", "x", "y", "z"}); err != nil {
		return "", err
	}
	for i, row := range tr {
		rec := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(row[0], 'f', 6, 64),
			strconv.FormatFloat(row[1], 'f', 6, 64),
			strconv.FormatFloat(row[2], 'f', 6, 64),
		}
		if err := w.Write(rec); err != nil {
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) (chaos.Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return chaos.Trajectory{}, nil
	}

	tr := make(chaos.Trajectory, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 4 {
			continue
		}
		var row chaos.State
		bad := false
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(rec[i+1], 64)
			if err != nil {
				bad = true
				break
			}
			row[i] = v
		}
		if bad {
			continue
		}
		tr = append(tr, row)
	}

	return tr, nil
}
