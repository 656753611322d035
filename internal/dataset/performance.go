package dataset

import (
	"fmt"
	"log/slog"
	"strconv"

	"pickarb/internal/canonical"
	"pickarb/internal/errors"
)

// LoadPerformance reads the player-value CSV and returns one record per
// player-season inside [startSeason, endSeason]. Rows with unparseable
// seasons or values are dropped with a warning, not fatal.
//
// The source carries columns player_id (a stable slug), player_name,
// season (season_end year), and war_total.
func LoadPerformance(path string, startSeason, endSeason int, logger *slog.Logger) ([]PerformanceRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	slugCol := t.col("player_id", "player_slug")
	nameCol := t.col("player_name", "player")
	seasonCol := t.col("season", "season_end")
	warCol := t.col("war_total", "war")
	if nameCol < 0 || seasonCol < 0 || warCol < 0 {
		return nil, errors.NewParsingError(
			fmt.Sprintf("%s missing required columns (player_name, season, war_total)", path), nil)
	}

	var records []PerformanceRecord
	dropped := 0
	for i, row := range t.rows {
		season, err := strconv.Atoi(field(row, seasonCol))
		if err != nil {
			logger.Warn("dropping performance row with unparseable season",
				slog.Int("row", i+1),
				slog.String("season", field(row, seasonCol)))
			dropped++
			continue
		}
		if season < startSeason || season > endSeason {
			continue
		}

		war, err := strconv.ParseFloat(field(row, warCol), 64)
		if err != nil {
			logger.Warn("dropping performance row with unparseable value metric",
				slog.Int("row", i+1),
				slog.String("war", field(row, warCol)))
			dropped++
			continue
		}

		name := field(row, nameCol)
		rec := PerformanceRecord{
			Slug:          field(row, slugCol),
			PlayerName:    name,
			CanonicalName: canonical.Name(name),
			SeasonEnd:     season,
			WAR:           war,
		}
		if !rec.IsValid() {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, errors.NewEmptyStageError("performance load")
	}

	logger.Info("loaded performance records",
		slog.String("path", path),
		slog.Int("records", len(records)),
		slog.Int("dropped", dropped),
		slog.Int("start_season", startSeason),
		slog.Int("end_season", endSeason))

	return records, nil
}
