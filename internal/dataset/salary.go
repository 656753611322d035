package dataset

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"pickarb/internal/canonical"
	"pickarb/internal/errors"
)

// LoadSalaries reads the raw salary CSV (Player, Season, Salary) and
// returns one cleaned record per (canonical name, season_end), keeping the
// maximum salary when a player-season appears more than once. Split and
// partial contracts produce duplicate rows in the source; max-dedup keeps
// the full figure.
//
// Season strings look like "2016-17"; the leading four digits are taken as
// the season_end year, matching the convention of the other sources.
func LoadSalaries(path string, startSeason, endSeason int, logger *slog.Logger) ([]SalaryRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	nameCol := t.col("player", "player_name")
	seasonCol := t.col("season", "season_end")
	salaryCol := t.col("salary")
	if nameCol < 0 || seasonCol < 0 || salaryCol < 0 {
		return nil, errors.NewParsingError(
			fmt.Sprintf("%s missing required columns (Player, Season, Salary)", path), nil)
	}

	type key struct {
		name   string
		season int
	}
	maxSalary := make(map[key]float64)
	dropped := 0

	for i, row := range t.rows {
		seasonStr := field(row, seasonCol)
		if len(seasonStr) < 4 {
			logger.Warn("dropping salary row with unparseable season",
				slog.Int("row", i+1),
				slog.String("season", seasonStr))
			dropped++
			continue
		}
		season, err := strconv.Atoi(seasonStr[:4])
		if err != nil {
			logger.Warn("dropping salary row with unparseable season",
				slog.Int("row", i+1),
				slog.String("season", seasonStr))
			dropped++
			continue
		}
		if season < startSeason || season > endSeason {
			continue
		}

		name := canonical.Name(field(row, nameCol))
		if name == "" {
			dropped++
			continue
		}

		salary := CleanMoney(field(row, salaryCol))
		k := key{name: name, season: season}
		if salary > maxSalary[k] {
			maxSalary[k] = salary
		} else if _, seen := maxSalary[k]; !seen {
			maxSalary[k] = salary
		}
	}

	if len(maxSalary) == 0 {
		return nil, errors.NewEmptyStageError("salary load")
	}

	records := make([]SalaryRecord, 0, len(maxSalary))
	for k, salary := range maxSalary {
		records = append(records, SalaryRecord{
			CanonicalName: k.name,
			SeasonEnd:     k.season,
			Salary:        salary,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CanonicalName != records[j].CanonicalName {
			return records[i].CanonicalName < records[j].CanonicalName
		}
		return records[i].SeasonEnd < records[j].SeasonEnd
	})

	logger.Info("loaded salary records",
		slog.String("path", path),
		slog.Int("records", len(records)),
		slog.Int("dropped", dropped),
		slog.Int("start_season", startSeason),
		slog.Int("end_season", endSeason))

	return records, nil
}
