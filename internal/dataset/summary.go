package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"pickarb/internal/errors"
)

// BuildSummary records row counts per stage for a dataset build run.
// It is diagnostic only; nothing downstream consumes it.
type BuildSummary struct {
	RunID                string    `json:"run_id"`
	BuiltAt              time.Time `json:"built_at"`
	PerformanceRows      int       `json:"war_rows"`
	SalaryRows           int       `json:"salary_rows"`
	DraftRows            int       `json:"draft_rows"`
	MarketRows           int       `json:"market_rows"`
	PickRows             int       `json:"pick_rows"`
	UniqueCanonicalNames int       `json:"unique_canonical_names"`
}

// NewBuildSummary assembles the summary for a completed build.
func NewBuildSummary(performance []PerformanceRecord, salaries []SalaryRecord, draft []DraftPick, market []MarketRecord, outcomes []PickOutcome) BuildSummary {
	names := make(map[string]struct{})
	for _, p := range performance {
		names[p.CanonicalName] = struct{}{}
	}
	for _, d := range draft {
		names[d.CanonicalName] = struct{}{}
	}

	return BuildSummary{
		RunID:                uuid.NewString(),
		BuiltAt:              time.Now().UTC(),
		PerformanceRows:      len(performance),
		SalaryRows:           len(salaries),
		DraftRows:            len(draft),
		MarketRows:           len(market),
		PickRows:             len(outcomes),
		UniqueCanonicalNames: len(names),
	}
}

// Write persists the summary as indented JSON, overwriting any prior run.
func (s BuildSummary) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create directory for %s", path), err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.NewStorageError("failed to marshal build summary", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
