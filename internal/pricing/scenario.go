package pricing

import (
	"log/slog"
	"sort"

	"pickarb/internal/dataset"
)

// Scenario is one alternate free-agency band the bucket table gets
// re-classified against. Scenarios alter only the band inputs; the rookie
// rates are fixed, and scenario runs share no mutable state.
type Scenario struct {
	Name  string
	Title string
	Band  PriceBand
}

// Canonical scenario names, used in output file naming.
const (
	ScenarioThin  = "thin"
	ScenarioDeep  = "deep"
	ScenarioApron = "apron"
)

// BuildScenarios derives the three alternate bands from the market slice
// and the baseline band:
//
//   - thin:  band over seasons whose market-wide median ratio sits in the
//     top quartile across seasons (a weak free-agent class bids prices up)
//   - deep:  bottom-quartile seasons
//   - apron: baseline band with every quantile marked up
//
// A season-restricted scenario whose slice comes up empty is skipped; the
// apron markup always applies.
func BuildScenarios(market []dataset.MarketRecord, baseline PriceBand, apronMarkup float64, logger *slog.Logger) ([]Scenario, error) {
	if logger == nil {
		logger = slog.Default()
	}

	highSeasons, lowSeasons, err := seasonQuartiles(market)
	if err != nil {
		return nil, err
	}

	var scenarios []Scenario

	if slice := filterSeasons(market, highSeasons); len(slice) > 0 {
		band, err := ComputeBand(slice, logger)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, Scenario{
			Name:  ScenarioThin,
			Title: "Thin FA class (top quartile)",
			Band:  band,
		})
	} else {
		logger.Warn("thin-FA scenario skipped: no seasons in top quartile slice")
	}

	if slice := filterSeasons(market, lowSeasons); len(slice) > 0 {
		band, err := ComputeBand(slice, logger)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, Scenario{
			Name:  ScenarioDeep,
			Title: "Deep FA class (bottom quartile)",
			Band:  band,
		})
	} else {
		logger.Warn("deep-FA scenario skipped: no seasons in bottom quartile slice")
	}

	scenarios = append(scenarios, Scenario{
		Name:  ScenarioApron,
		Title: "Second apron pressure (+10% FA $/WAR)",
		Band:  baseline.Scale(apronMarkup),
	})

	return scenarios, nil
}

// seasonQuartiles computes each season's median ratio and splits seasons
// into the top and bottom quartile of those medians (inclusive bounds).
func seasonQuartiles(market []dataset.MarketRecord) (high, low map[int]bool, err error) {
	bySeason := make(map[int][]float64)
	for _, m := range market {
		bySeason[m.SeasonEnd] = append(bySeason[m.SeasonEnd], m.DollarsPerWAR)
	}

	seasons := make([]int, 0, len(bySeason))
	medians := make([]float64, 0, len(bySeason))
	medianBySeason := make(map[int]float64, len(bySeason))
	for season, ratios := range bySeason {
		med, err := Median(finiteRatios(ratios))
		if err != nil {
			return nil, nil, err
		}
		seasons = append(seasons, season)
		medianBySeason[season] = med
		medians = append(medians, med)
	}
	sort.Ints(seasons)

	highThreshold, err := Quantile(medians, 0.75)
	if err != nil {
		return nil, nil, err
	}
	lowThreshold, err := Quantile(medians, 0.25)
	if err != nil {
		return nil, nil, err
	}

	high = make(map[int]bool)
	low = make(map[int]bool)
	for _, season := range seasons {
		if medianBySeason[season] >= highThreshold {
			high[season] = true
		}
		if medianBySeason[season] <= lowThreshold {
			low[season] = true
		}
	}
	return high, low, nil
}

func filterSeasons(market []dataset.MarketRecord, seasons map[int]bool) []dataset.MarketRecord {
	var out []dataset.MarketRecord
	for _, m := range market {
		if seasons[m.SeasonEnd] {
			out = append(out, m)
		}
	}
	return out
}
