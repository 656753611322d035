package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"pickarb/internal/pricing"
)

// ScenarioPanel pairs a scenario band with the bucket table classified
// against it.
type ScenarioPanel struct {
	Name  string
	Title string
	Band  pricing.PriceBand
	Table []pricing.BucketSummary
}

// WriteWorkbook writes the consolidated report workbook: one sheet for the
// free-agency band, one for the baseline bucket table, and one per
// scenario panel.
func WriteWorkbook(path string, baselineBand pricing.PriceBand, baseline []pricing.BucketSummary, panels []ScenarioPanel, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeBandSheet(f, "FA Price Band", baselineBand); err != nil {
		return err
	}
	if err := writeBucketSheet(f, "Baseline", baseline); err != nil {
		return err
	}
	for _, panel := range panels {
		sheet := fmt.Sprintf("Scenario %s", panel.Name)
		if err := writeBucketSheet(f, sheet, panel.Table); err != nil {
			return err
		}
		// Record the scenario band alongside its table.
		if err := setRow(f, sheet, len(panel.Table)+3, []interface{}{"scenario", panel.Title}); err != nil {
			return err
		}
		if err := setRow(f, sheet, len(panel.Table)+4, []interface{}{"band_q25", panel.Band.Q25, "band_q50", panel.Band.Q50, "band_q75", panel.Band.Q75}); err != nil {
			return err
		}
	}

	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info("wrote report workbook",
		slog.String("path", path),
		slog.Int("scenario_sheets", len(panels)))
	return nil
}

func writeBandSheet(f *excelize.File, sheet string, band pricing.PriceBand) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	rows := [][]interface{}{
		{"quantile", "value"},
		{"q25", band.Q25},
		{"q50", band.Q50},
		{"q75", band.Q75},
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeBucketSheet(f *excelize.File, sheet string, table []pricing.BucketSummary) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	header := make([]interface{}, len(bucketHeaders))
	for i, h := range bucketHeaders {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, row := range table {
		values := []interface{}{
			string(row.Bucket), row.Players,
			row.Median, row.Q25, row.Q75,
			row.WARMedian, row.CostMedian,
			row.MarketQ25, row.MarketQ50, row.MarketQ75,
			string(row.Zone), row.MarketEquivCost4Yr, row.Surplus4Yr,
		}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to set row %d on %s: %w", row, sheet, err)
	}
	return nil
}
