package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/san-kum/gravtide/internal/scenario"
)

type ExportData struct {
	Meta   RunMetadata           `json:"meta"`
	Points []scenario.SweepPoint `json:"points"`
}

func ExportJSONStdout(meta RunMetadata, points []scenario.SweepPoint) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Meta: meta, Points: points})
}

func ExportCSVStdout(points []scenario.SweepPoint) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
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
			return err
		}
	}
	return nil
}
