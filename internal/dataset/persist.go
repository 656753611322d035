package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"pickarb/internal/errors"
)

// Intermediate tables are the contract between the two pipeline binaries:
// cmd/dataset writes them, cmd/arbitrage reads them back. Writes always
// truncate; reruns overwrite rather than merge.

func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create directory for %s", path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to write header to %s", path), err)
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write row %d to %s", i, path), err)
		}
	}
	return writer.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WritePerformanceCSV persists the filtered player-value table.
func WritePerformanceCSV(path string, records []PerformanceRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Slug, r.PlayerName, r.CanonicalName,
			strconv.Itoa(r.SeasonEnd), formatFloat(r.WAR),
		})
	}
	return writeCSV(path, []string{"player_slug", "player_name", "canonical_name", "season_end", "war"}, rows)
}

// WriteSalaryCSV persists the cleaned, deduplicated salary table.
func WriteSalaryCSV(path string, records []SalaryRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.CanonicalName, strconv.Itoa(r.SeasonEnd), formatFloat(r.Salary),
		})
	}
	return writeCSV(path, []string{"canonical_name", "season_end", "salary"}, rows)
}

// WriteDraftCSV persists the validated draft classes.
func WriteDraftCSV(path string, picks []DraftPick) error {
	rows := make([][]string, 0, len(picks))
	for _, p := range picks {
		rows = append(rows, []string{
			strconv.Itoa(p.SeasonEnd), strconv.Itoa(p.Pick), p.Team,
			p.PlayerName, p.Slug, p.CanonicalName,
		})
	}
	return writeCSV(path, []string{"season_end", "pick", "team", "player_name", "player_slug", "canonical_name"}, rows)
}

// WriteMarketCSV persists the joined market table.
func WriteMarketCSV(path string, records []MarketRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Slug, r.PlayerName, r.CanonicalName, strconv.Itoa(r.SeasonEnd),
			formatFloat(r.WAR), formatFloat(r.Salary), formatFloat(r.DollarsPerWAR),
		})
	}
	return writeCSV(path, []string{"player_slug", "player_name", "canonical_name", "season_end", "war", "salary", "dollars_per_war"}, rows)
}

// WritePickOutcomesCSV persists the rookie-window aggregates.
func WritePickOutcomesCSV(path string, outcomes []PickOutcome) error {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, []string{
			strconv.Itoa(o.DraftYear), strconv.Itoa(o.Pick), o.Slug,
			o.PlayerName, o.CanonicalName,
			formatFloat(o.WARFirst4), formatFloat(o.CostFirst4),
		})
	}
	return writeCSV(path, []string{"draft_year", "pick", "player_slug", "player_name", "canonical_name", "war_first4", "cost_first4"}, rows)
}

// ReadMarketCSV loads a market table previously written by WriteMarketCSV.
func ReadMarketCSV(path string) ([]MarketRecord, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	slugCol := t.col("player_slug")
	nameCol := t.col("player_name")
	canonCol := t.col("canonical_name")
	seasonCol := t.col("season_end")
	warCol := t.col("war")
	salaryCol := t.col("salary")
	if canonCol < 0 || seasonCol < 0 || warCol < 0 || salaryCol < 0 {
		return nil, errors.NewParsingError(fmt.Sprintf("%s is not a market table", path), nil)
	}

	var records []MarketRecord
	for _, row := range t.rows {
		season, err := strconv.Atoi(field(row, seasonCol))
		if err != nil {
			continue
		}
		war, err := strconv.ParseFloat(field(row, warCol), 64)
		if err != nil {
			continue
		}
		salary, err := strconv.ParseFloat(field(row, salaryCol), 64)
		if err != nil {
			continue
		}
		if war <= 0 || salary <= 0 {
			continue
		}
		records = append(records, MarketRecord{
			Slug:          field(row, slugCol),
			PlayerName:    field(row, nameCol),
			CanonicalName: field(row, canonCol),
			SeasonEnd:     season,
			WAR:           war,
			Salary:        salary,
			DollarsPerWAR: salary / war,
		})
	}

	if len(records) == 0 {
		return nil, errors.NewEmptyStageError("market table read")
	}
	return records, nil
}

// ReadPickOutcomesCSV loads a pick-outcome table previously written by
// WritePickOutcomesCSV.
func ReadPickOutcomesCSV(path string) ([]PickOutcome, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	yearCol := t.col("draft_year")
	pickCol := t.col("pick")
	slugCol := t.col("player_slug")
	nameCol := t.col("player_name")
	canonCol := t.col("canonical_name")
	warCol := t.col("war_first4")
	costCol := t.col("cost_first4")
	if yearCol < 0 || pickCol < 0 || warCol < 0 || costCol < 0 {
		return nil, errors.NewParsingError(fmt.Sprintf("%s is not a pick-outcome table", path), nil)
	}

	var outcomes []PickOutcome
	for _, row := range t.rows {
		year, err := strconv.Atoi(field(row, yearCol))
		if err != nil {
			continue
		}
		pick, err := strconv.Atoi(field(row, pickCol))
		if err != nil {
			continue
		}
		war, err := strconv.ParseFloat(field(row, warCol), 64)
		if err != nil {
			continue
		}
		cost, err := strconv.ParseFloat(field(row, costCol), 64)
		if err != nil {
			continue
		}
		outcomes = append(outcomes, PickOutcome{
			DraftYear:     year,
			Pick:          pick,
			Slug:          field(row, slugCol),
			PlayerName:    field(row, nameCol),
			CanonicalName: field(row, canonCol),
			WARFirst4:     war,
			CostFirst4:    cost,
		})
	}

	if len(outcomes) == 0 {
		return nil, errors.NewEmptyStageError("pick-outcome table read")
	}
	return outcomes, nil
}
