package dataset

import (
	"log/slog"
	"sort"

	"pickarb/internal/errors"
)

// BuildMarket inner-joins performance and salary records on
// (canonical_name, season_end) and keeps only rows where both salary and
// WAR are strictly positive. Players appearing in one source only are
// silently excluded; no value is asserted for them.
//
// An empty join result is fatal: every downstream percentile computation is
// undefined on an empty market.
func BuildMarket(performance []PerformanceRecord, salaries []SalaryRecord, logger *slog.Logger) ([]MarketRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	type key struct {
		name   string
		season int
	}
	salaryByKey := make(map[key]float64, len(salaries))
	for _, s := range salaries {
		salaryByKey[key{s.CanonicalName, s.SeasonEnd}] = s.Salary
	}

	var market []MarketRecord
	for _, p := range performance {
		salary, ok := salaryByKey[key{p.CanonicalName, p.SeasonEnd}]
		if !ok {
			continue
		}
		if salary <= 0 || p.WAR <= 0 {
			continue
		}
		market = append(market, MarketRecord{
			Slug:          p.Slug,
			PlayerName:    p.PlayerName,
			CanonicalName: p.CanonicalName,
			SeasonEnd:     p.SeasonEnd,
			WAR:           p.WAR,
			Salary:        salary,
			DollarsPerWAR: salary / p.WAR,
		})
	}

	if len(market) == 0 {
		return nil, errors.NewEmptyStageError("market join")
	}

	sort.Slice(market, func(i, j int) bool {
		if market[i].CanonicalName != market[j].CanonicalName {
			return market[i].CanonicalName < market[j].CanonicalName
		}
		return market[i].SeasonEnd < market[j].SeasonEnd
	})

	logger.Info("built salary market",
		slog.Int("performance_rows", len(performance)),
		slog.Int("salary_rows", len(salaries)),
		slog.Int("market_rows", len(market)))

	return market, nil
}
