// Command arbitrage is the compute step of the pick-cap arbitrage
// pipeline. It loads the intermediate tables written by cmd/dataset,
// computes the free-agency price band, the per-bucket rookie cost
// summaries, and the BUY/SELL/NEUTRAL classification, then reruns the
// classification under the thin-FA, deep-FA, and apron-pressure scenarios
// and writes every report table plus the consolidated workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"pickarb/internal/config"
	"pickarb/internal/dataset"
	"pickarb/internal/exporter"
	"pickarb/internal/infrastructure"
	"pickarb/internal/pricing"
)

func main() {
	root := flag.String("root", "", "pipeline root directory (defaults to the executable directory)")
	flag.Parse()

	paths, err := resolvePaths(*root)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())
	logger.InfoContext(ctx, "starting arbitrage computation",
		slog.String("data_dir", paths.DataDir),
		slog.String("tables_dir", paths.TablesDir),
		slog.Float64("friction_premium", cfg.Pricing.FrictionPremium),
		slog.Float64("apron_markup", cfg.Pricing.ApronMarkup))

	if err := run(ctx, cfg, paths, logger); err != nil {
		logger.ErrorContext(ctx, "arbitrage computation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "arbitrage computation complete")
}

func run(ctx context.Context, cfg *config.Config, paths *config.Paths, logger *slog.Logger) error {
	market, err := dataset.ReadMarketCSV(paths.MarketRawCSV)
	if err != nil {
		return fmt.Errorf("read market table: %w", err)
	}
	outcomes, err := dataset.ReadPickOutcomesCSV(paths.PickOutcomesCSV)
	if err != nil {
		return fmt.Errorf("read pick outcomes: %w", err)
	}
	logger.InfoContext(ctx, "loaded intermediate tables",
		slog.Int("market_rows", len(market)),
		slog.Int("pick_rows", len(outcomes)))

	band, err := pricing.ComputeBand(market, logger)
	if err != nil {
		return fmt.Errorf("compute baseline band: %w", err)
	}

	baseline, err := pricing.BuildBucketTable(outcomes, band, cfg.Seasons.RookieYears, cfg.Pricing.FrictionPremium, logger)
	if err != nil {
		return fmt.Errorf("build baseline bucket table: %w", err)
	}

	writer := exporter.NewCSVWriter(logger)
	if err := writer.WritePriceBandTable(paths.PriceBandCSV, band); err != nil {
		return err
	}
	if err := writer.WriteBucketTable(paths.BucketSummaryCSV, baseline); err != nil {
		return err
	}
	if err := writer.WriteFormattedBucketTable(paths.ArbitrageSummaryCSV, baseline); err != nil {
		return err
	}

	scenarios, err := pricing.BuildScenarios(market, band, cfg.Pricing.ApronMarkup, logger)
	if err != nil {
		return fmt.Errorf("build scenarios: %w", err)
	}

	panels := make([]exporter.ScenarioPanel, 0, len(scenarios))
	for _, scenario := range scenarios {
		table, err := pricing.BuildBucketTable(outcomes, scenario.Band, cfg.Seasons.RookieYears, cfg.Pricing.FrictionPremium, logger)
		if err != nil {
			return fmt.Errorf("build %s scenario table: %w", scenario.Name, err)
		}
		if err := writer.WriteBucketTable(paths.ScenarioTableCSV(scenario.Name), table); err != nil {
			return err
		}
		if err := writer.WriteFormattedBucketTable(paths.ScenarioFormattedCSV(scenario.Name), table); err != nil {
			return err
		}
		panels = append(panels, exporter.ScenarioPanel{
			Name:  scenario.Name,
			Title: scenario.Title,
			Band:  scenario.Band,
			Table: table,
		})
		logger.InfoContext(ctx, "scenario computed",
			slog.String("scenario", scenario.Name),
			slog.Float64("band_q25", scenario.Band.Q25),
			slog.Float64("band_q75", scenario.Band.Q75))
	}

	if err := exporter.WriteWorkbook(paths.WorkbookXLSX, band, baseline, panels, logger); err != nil {
		return err
	}

	return nil
}

func resolvePaths(root string) (*config.Paths, error) {
	if root != "" {
		return config.PathsFor(root), nil
	}
	return config.GetPaths()
}
