package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the pipeline paths.
// This is the single source of truth for every file the pipeline touches.
type Paths struct {
	ExecutableDir string
	DataDir       string
	TablesDir     string
	LogsDir       string
	ConfigFile    string

	// Intermediate dataset files written by cmd/dataset and read by
	// cmd/arbitrage.
	PlayerWARCSV        string
	PlayerSalaryCSV     string
	DraftClassesCSV     string
	MarketRawCSV        string
	PickOutcomesCSV     string
	BuildSummaryJSON    string

	// Report tables written by cmd/arbitrage.
	PriceBandCSV        string
	BucketSummaryCSV    string
	ArbitrageSummaryCSV string
	WorkbookXLSX        string
}

// GetPaths returns the pipeline paths relative to the executable location.
// All paths are always relative to the executable directory, never the
// current working directory.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return PathsFor(filepath.Dir(exe)), nil
}

// PathsFor builds the path set rooted at the given directory. Exposed so
// tests can run against a temp directory.
//
// Directory structure:
//
//	<root>/
//	  ├── pickarb.yaml       (optional config)
//	  ├── data/              (raw inputs and intermediate datasets)
//	  ├── tables/            (report tables, CSV and XLSX)
//	  └── logs/
func PathsFor(root string) *Paths {
	dataDir := filepath.Join(root, "data")
	tablesDir := filepath.Join(root, "tables")

	return &Paths{
		ExecutableDir: root,
		DataDir:       dataDir,
		TablesDir:     tablesDir,
		LogsDir:       filepath.Join(root, "logs"),
		ConfigFile:    filepath.Join(root, "pickarb.yaml"),

		PlayerWARCSV:     filepath.Join(dataDir, "player_war.csv"),
		PlayerSalaryCSV:  filepath.Join(dataDir, "player_salary_clean.csv"),
		DraftClassesCSV:  filepath.Join(dataDir, "draft_classes.csv"),
		MarketRawCSV:     filepath.Join(dataDir, "salary_market_raw.csv"),
		PickOutcomesCSV:  filepath.Join(dataDir, "pick_outcomes_first4.csv"),
		BuildSummaryJSON: filepath.Join(dataDir, "build_summary.json"),

		PriceBandCSV:        filepath.Join(tablesDir, "salary_price_band_overall.csv"),
		BucketSummaryCSV:    filepath.Join(tablesDir, "pick_bucket_summary.csv"),
		ArbitrageSummaryCSV: filepath.Join(tablesDir, "table1_arbitrage_summary.csv"),
		WorkbookXLSX:        filepath.Join(tablesDir, "arbitrage_report.xlsx"),
	}
}

// GetInputPath resolves a raw input filename inside the data directory.
func (p *Paths) GetInputPath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(p.DataDir, filename)
}

// GetTablePath resolves a report table filename inside the tables directory.
func (p *Paths) GetTablePath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(p.TablesDir, filename)
}

// ScenarioTableCSV returns the report table path for a named scenario.
func (p *Paths) ScenarioTableCSV(name string) string {
	return filepath.Join(p.TablesDir, fmt.Sprintf("table_scenario_%s.csv", name))
}

// ScenarioFormattedCSV returns the formatted-in-millions variant path for a
// named scenario.
func (p *Paths) ScenarioFormattedCSV(name string) string {
	return filepath.Join(p.TablesDir, fmt.Sprintf("table_scenario_%s_formatted.csv", name))
}

// EnsureDirectories creates the data, tables, and logs directories.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.TablesDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
