// Package storage persists sweep runs under a data directory, one directory
// per run holding metadata.json and points.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/gravtide/internal/physics"
	"github.com/san-kum/gravtide/internal/scenario"
)

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
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	BlackHole       string    `json:"blackhole,omitempty"`
	MassSolar       float64   `json:"mass_solar"`
	SchwarzschildKm float64   `json:"schwarzschild_km"`
	HeightM         float64   `json:"height_m"`
	FromFactor      float64   `json:"from_factor"`
	ToFactor        float64   `json:"to_factor"`
	Points          int       `json:"points"`
}

var csvHeader = []string{"factor", "radius_km", "gravity_ms2", "tidal_ms2", "tidal_ratio", "label", "period_s"}

// Save writes a sweep run and returns its generated ID. An absent orbital
// period is stored as an empty CSV field, never as zero.
func (s *Store) Save(meta RunMetadata, points []scenario.SweepPoint) (string, error) {
	runID := fmt.Sprintf("sweep_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Points = len(points)

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

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, pt := range points {
		period := ""
		if pt.PeriodS != nil {
			period = strconv.FormatFloat(*pt.PeriodS, 'e', 6, 64)
		}
		row := []string{
			strconv.FormatFloat(pt.Factor, 'f', 6, 64),
			strconv.FormatFloat(pt.RadiusKm, 'e', 6, 64),
			strconv.FormatFloat(pt.GravityMS2, 'e', 6, 64),
			strconv.FormatFloat(pt.TidalMS2, 'e', 6, 64),
			strconv.FormatFloat(pt.TidalEarthRatio, 'e', 6, 64),
			pt.Label,
			period,
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

func (s *Store) LoadPoints(runID string) ([]scenario.SweepPoint, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
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
		return []scenario.SweepPoint{}, nil
	}

	points := make([]scenario.SweepPoint, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("storage: malformed row in %s/points.csv", runID)
		}
		var pt scenario.SweepPoint
		if pt.Factor, err = strconv.ParseFloat(record[0], 64); err != nil {
			return nil, err
		}
		if pt.RadiusKm, err = strconv.ParseFloat(record[1], 64); err != nil {
			return nil, err
		}
		if pt.GravityMS2, err = strconv.ParseFloat(record[2], 64); err != nil {
			return nil, err
		}
		if pt.TidalMS2, err = strconv.ParseFloat(record[3], 64); err != nil {
			return nil, err
		}
		if pt.TidalEarthRatio, err = strconv.ParseFloat(record[4], 64); err != nil {
			return nil, err
		}
		pt.Label = record[5]
		if sev, ok := physics.ParseSeverity(pt.Label); ok {
			pt.Severity = sev
		}
		if record[6] != "" {
			p, err := strconv.ParseFloat(record[6], 64)
			if err != nil {
				return nil, err
			}
			pt.PeriodS = &p
		}
		points = append(points, pt)
	}

	return points, nil
}
