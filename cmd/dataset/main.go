// Command dataset is the build step of the pick-cap arbitrage pipeline.
// It loads the raw performance, salary, and draft CSVs, normalizes player
// names, builds the free-agency market join and the rookie-window pick
// outcomes, and persists the intermediate tables plus a JSON build summary.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"pickarb/internal/config"
	"pickarb/internal/dataset"
	"pickarb/internal/infrastructure"
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
	logger.InfoContext(ctx, "starting dataset build",
		slog.String("data_dir", paths.DataDir),
		slog.Int("performance_start", cfg.Seasons.PerformanceStart),
		slog.Int("performance_end", cfg.Seasons.PerformanceEnd),
		slog.Int("draft_start", cfg.Seasons.DraftStart),
		slog.Int("draft_end", cfg.Seasons.DraftEnd))

	summary, err := run(ctx, cfg, paths, logger)
	if err != nil {
		logger.ErrorContext(ctx, "dataset build failed", "error", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))
	logger.InfoContext(ctx, "dataset build complete", slog.String("run_id", summary.RunID))
}

func run(ctx context.Context, cfg *config.Config, paths *config.Paths, logger *slog.Logger) (*dataset.BuildSummary, error) {
	performance, err := dataset.LoadPerformance(
		paths.GetInputPath(cfg.Inputs.PerformanceCSV),
		cfg.Seasons.PerformanceStart, cfg.Seasons.PerformanceEnd, logger)
	if err != nil {
		return nil, fmt.Errorf("load performance: %w", err)
	}

	salaries, err := dataset.LoadSalaries(
		paths.GetInputPath(cfg.Inputs.SalaryCSV),
		cfg.Seasons.SalaryStart, cfg.Seasons.SalaryEnd, logger)
	if err != nil {
		return nil, fmt.Errorf("load salaries: %w", err)
	}

	draft, err := dataset.LoadDraftPicks(
		paths.GetInputPath(cfg.Inputs.DraftCSV),
		cfg.Seasons.DraftStart, cfg.Seasons.DraftEnd, logger)
	if err != nil {
		return nil, fmt.Errorf("load draft picks: %w", err)
	}

	market, err := dataset.BuildMarket(performance, salaries, logger)
	if err != nil {
		return nil, fmt.Errorf("build market: %w", err)
	}

	outcomes, err := dataset.BuildPickOutcomes(draft, performance, salaries, cfg.Seasons.RookieYears, logger)
	if err != nil {
		return nil, fmt.Errorf("build pick outcomes: %w", err)
	}

	if err := dataset.WritePerformanceCSV(paths.PlayerWARCSV, performance); err != nil {
		return nil, err
	}
	if err := dataset.WriteSalaryCSV(paths.PlayerSalaryCSV, salaries); err != nil {
		return nil, err
	}
	if err := dataset.WriteDraftCSV(paths.DraftClassesCSV, draft); err != nil {
		return nil, err
	}
	if err := dataset.WriteMarketCSV(paths.MarketRawCSV, market); err != nil {
		return nil, err
	}
	if err := dataset.WritePickOutcomesCSV(paths.PickOutcomesCSV, outcomes); err != nil {
		return nil, err
	}

	summary := dataset.NewBuildSummary(performance, salaries, draft, market, outcomes)
	if runID := infrastructure.GetRunID(ctx); runID != "" {
		summary.RunID = runID
	}
	if err := summary.Write(paths.BuildSummaryJSON); err != nil {
		return nil, err
	}

	return &summary, nil
}

func resolvePaths(root string) (*config.Paths, error) {
	if root != "" {
		return config.PathsFor(root), nil
	}
	return config.GetPaths()
}
