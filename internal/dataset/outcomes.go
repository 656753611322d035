package dataset

import (
	"log/slog"
	"sort"

	"pickarb/internal/errors"
)

// BuildPickOutcomes sums value and cost for each drafted player over
// exactly rookieYears seasons immediately following the draft season.
// A season with no record contributes zero to both sums.
//
// WAR is looked up by player slug when the performance source carries one
// (slugs survive name changes), falling back to canonical name; salary is
// keyed by canonical name only, matching the salary source.
func BuildPickOutcomes(draft []DraftPick, performance []PerformanceRecord, salaries []SalaryRecord, rookieYears int, logger *slog.Logger) ([]PickOutcome, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if rookieYears <= 0 {
		return nil, errors.NewValidationError("rookie window must cover at least one season")
	}

	type key struct {
		id     string
		season int
	}
	warBySlug := make(map[key]float64, len(performance))
	warByName := make(map[key]float64, len(performance))
	for _, p := range performance {
		if p.Slug != "" {
			warBySlug[key{p.Slug, p.SeasonEnd}] = p.WAR
		}
		warByName[key{p.CanonicalName, p.SeasonEnd}] = p.WAR
	}
	salaryByName := make(map[key]float64, len(salaries))
	for _, s := range salaries {
		salaryByName[key{s.CanonicalName, s.SeasonEnd}] = s.Salary
	}

	outcomes := make([]PickOutcome, 0, len(draft))
	for _, pick := range draft {
		warSum := 0.0
		costSum := 0.0
		for season := pick.SeasonEnd + 1; season <= pick.SeasonEnd+rookieYears; season++ {
			if pick.Slug != "" {
				if war, ok := warBySlug[key{pick.Slug, season}]; ok {
					warSum += war
				}
			} else if war, ok := warByName[key{pick.CanonicalName, season}]; ok {
				warSum += war
			}
			costSum += salaryByName[key{pick.CanonicalName, season}]
		}
		outcomes = append(outcomes, PickOutcome{
			DraftYear:     pick.SeasonEnd,
			Pick:          pick.Pick,
			Slug:          pick.Slug,
			PlayerName:    pick.PlayerName,
			CanonicalName: pick.CanonicalName,
			WARFirst4:     warSum,
			CostFirst4:    costSum,
		})
	}

	if len(outcomes) == 0 {
		return nil, errors.NewEmptyStageError("pick outcomes")
	}

	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].DraftYear != outcomes[j].DraftYear {
			return outcomes[i].DraftYear < outcomes[j].DraftYear
		}
		return outcomes[i].Pick < outcomes[j].Pick
	})

	positive := 0
	for _, o := range outcomes {
		if o.HasPositiveWAR() {
			positive++
		}
	}
	logger.Info("built pick outcomes",
		slog.Int("picks", len(draft)),
		slog.Int("outcomes", len(outcomes)),
		slog.Int("with_positive_war", positive),
		slog.Int("rookie_years", rookieYears))

	return outcomes, nil
}
