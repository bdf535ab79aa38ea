package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/piwi3910/maxrects/internal/model"
)

// ReportVersion is the format version written into every report.
const ReportVersion = "1.0.0"

// Report is the JSON record of one packing run.
type Report struct {
	Version          string                 `json:"version"`
	RunID            string                 `json:"run_id"`
	CreatedAt        string                 `json:"created_at"`
	Seed             int64                  `json:"seed"`
	Config           model.AppConfig        `json:"config"`
	Containers       []model.FreeRect       `json:"containers"`
	Result           model.Result           `json:"result"`
	PackedPercentage float64                `json:"packed_percentage"`
	Usages           []model.ContainerUsage `json:"usages"`
	Offcuts          []model.FreeRect       `json:"offcuts"`
}

// NewReport builds a report for a finished run, stamping it with a fresh run
// ID and the current UTC time.
func NewReport(cfg model.AppConfig, seed int64, containers []model.FreeRect, result model.Result) Report {
	return Report{
		Version:          ReportVersion,
		RunID:            uuid.NewString(),
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
		Seed:             seed,
		Config:           cfg,
		Containers:       containers,
		Result:           result,
		PackedPercentage: model.PackedPercentage(result.Placed, containers),
		Usages:           model.ContainerUsages(result.Placed, containers),
		Offcuts:          model.Offcuts(result.Free, cfg.MinOffcutDimension, cfg.MinOffcutArea),
	}
}

// WriteReport writes the report to path as indented JSON.
func WriteReport(path string, report Report) error {
	if err := writeJSON(path, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

var errMissingVersion = errors.New("missing version field")

// ReadReport reads a report written by WriteReport. Placements of the
// recorded items are restored.
func ReadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report: %w", err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("failed to parse report: %w", err)
	}
	if report.Version == "" {
		return Report{}, fmt.Errorf("invalid report file: %w", errMissingVersion)
	}
	if _, err := uuid.Parse(report.RunID); err != nil {
		return Report{}, fmt.Errorf("invalid report run id %q: %w", report.RunID, err)
	}
	return report, nil
}
