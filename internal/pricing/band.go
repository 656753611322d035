package pricing

import (
	"log/slog"

	"pickarb/internal/dataset"
	"pickarb/internal/errors"
)

// PriceBand holds the 25th/50th/75th percentile of dollars-per-WAR across
// a free-agency market slice.
type PriceBand struct {
	Q25 float64 `json:"q25"`
	Q50 float64 `json:"q50"`
	Q75 float64 `json:"q75"`
}

// Scale returns a copy of the band with all three quantiles multiplied by
// factor. Used for markup scenarios.
func (b PriceBand) Scale(factor float64) PriceBand {
	return PriceBand{Q25: b.Q25 * factor, Q50: b.Q50 * factor, Q75: b.Q75 * factor}
}

// ComputeBand derives the price band over the given market slice. Ratios
// that are non-finite or non-positive are excluded before the quantiles
// are taken; an empty slice after filtering is a fatal error.
func ComputeBand(market []dataset.MarketRecord, logger *slog.Logger) (PriceBand, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ratios := make([]float64, 0, len(market))
	for _, m := range market {
		ratios = append(ratios, m.DollarsPerWAR)
	}
	ratios = finiteRatios(ratios)
	if len(ratios) == 0 {
		return PriceBand{}, errors.NewEmptyStageError("price band")
	}

	q25, err := Quantile(ratios, 0.25)
	if err != nil {
		return PriceBand{}, err
	}
	q50, err := Quantile(ratios, 0.50)
	if err != nil {
		return PriceBand{}, err
	}
	q75, err := Quantile(ratios, 0.75)
	if err != nil {
		return PriceBand{}, err
	}

	band := PriceBand{Q25: q25, Q50: q50, Q75: q75}
	logger.Debug("computed price band",
		slog.Int("market_rows", len(ratios)),
		slog.Float64("q25", band.Q25),
		slog.Float64("q50", band.Q50),
		slog.Float64("q75", band.Q75))

	return band, nil
}
