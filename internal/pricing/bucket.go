package pricing

import (
	"fmt"
	"log/slog"

	"pickarb/internal/dataset"
	"pickarb/internal/errors"
)

// Bucket is a contiguous range of draft pick numbers grouped for aggregate
// statistics.
type Bucket string

const (
	Bucket01to05 Bucket = "01-05"
	Bucket06to10 Bucket = "06-10"
	Bucket11to20 Bucket = "11-20"
	Bucket21to30 Bucket = "21-30"
	Bucket31to45 Bucket = "31-45"
	Bucket46to60 Bucket = "46-60"
)

// BucketOrder is the display order of the fixed partition of picks 1..60.
var BucketOrder = []Bucket{
	Bucket01to05, Bucket06to10, Bucket11to20,
	Bucket21to30, Bucket31to45, Bucket46to60,
}

// AssignBucket maps a pick number onto the fixed partition. Picks outside
// 1..60 are invalid input.
func AssignBucket(pick int) (Bucket, error) {
	switch {
	case pick >= 1 && pick <= 5:
		return Bucket01to05, nil
	case pick >= 6 && pick <= 10:
		return Bucket06to10, nil
	case pick >= 11 && pick <= 20:
		return Bucket11to20, nil
	case pick >= 21 && pick <= 30:
		return Bucket21to30, nil
	case pick >= 31 && pick <= 45:
		return Bucket31to45, nil
	case pick >= 46 && pick <= 60:
		return Bucket46to60, nil
	default:
		return "", errors.NewValidationError(fmt.Sprintf("pick %d outside valid range 1-60", pick))
	}
}

// RookieRate is one drafted player's implied per-season cost of value:
// (cost over the window / WAR over the window) / window length.
func RookieRate(o dataset.PickOutcome, rookieYears int) (float64, error) {
	if !o.HasPositiveWAR() {
		return 0, errors.NewValidationError(
			fmt.Sprintf("pick outcome for %s has non-positive WAR; rate undefined", o.CanonicalName))
	}
	return (o.CostFirst4 / o.WARFirst4) / float64(rookieYears), nil
}

// BucketSummary aggregates the rookie rates inside one pick bucket and
// carries the market band it was classified against.
type BucketSummary struct {
	Bucket     Bucket  `json:"bucket"`
	Players    int     `json:"players"`
	Median     float64 `json:"median"`
	Q25        float64 `json:"q25"`
	Q75        float64 `json:"q75"`
	WARMedian  float64 `json:"war_med"`
	CostMedian float64 `json:"cost_med"`

	MarketQ25 float64 `json:"market_q25"`
	MarketQ50 float64 `json:"market_q50"`
	MarketQ75 float64 `json:"market_q75"`

	Zone Zone `json:"arbitrage_zone"`

	// MarketEquivCost4Yr prices the bucket's median WAR production at the
	// FA median rate; Surplus4Yr is what the rookie contract saved (or
	// overpaid) against that.
	MarketEquivCost4Yr float64 `json:"market_equiv_cost_4yr"`
	Surplus4Yr         float64 `json:"surplus_4yr"`
}

// BuildBucketTable partitions outcomes into pick buckets, summarizes the
// per-season rookie rate within each, and classifies every bucket against
// the band. Outcomes with non-positive WAR are excluded up front (their
// rate is undefined). Buckets with no qualifying players are omitted.
func BuildBucketTable(outcomes []dataset.PickOutcome, band PriceBand, rookieYears int, frictionPremium float64, logger *slog.Logger) ([]BucketSummary, error) {
	if logger == nil {
		logger = slog.Default()
	}

	type bucketAccum struct {
		rates []float64
		wars  []float64
		costs []float64
	}
	accum := make(map[Bucket]*bucketAccum)
	excluded := 0

	for _, o := range outcomes {
		if !o.HasPositiveWAR() {
			excluded++
			continue
		}
		bucket, err := AssignBucket(o.Pick)
		if err != nil {
			return nil, err
		}
		rate, err := RookieRate(o, rookieYears)
		if err != nil {
			return nil, err
		}
		a := accum[bucket]
		if a == nil {
			a = &bucketAccum{}
			accum[bucket] = a
		}
		a.rates = append(a.rates, rate)
		a.wars = append(a.wars, o.WARFirst4)
		a.costs = append(a.costs, o.CostFirst4)
	}

	if len(accum) == 0 {
		return nil, errors.NewEmptyStageError("bucket table")
	}

	var table []BucketSummary
	for _, bucket := range BucketOrder {
		a, ok := accum[bucket]
		if !ok {
			continue
		}

		median, err := Median(a.rates)
		if err != nil {
			return nil, err
		}
		q25, err := Quantile(a.rates, 0.25)
		if err != nil {
			return nil, err
		}
		q75, err := Quantile(a.rates, 0.75)
		if err != nil {
			return nil, err
		}
		warMed, err := Median(a.wars)
		if err != nil {
			return nil, err
		}
		costMed, err := Median(a.costs)
		if err != nil {
			return nil, err
		}

		marketEquiv := warMed * band.Q50
		table = append(table, BucketSummary{
			Bucket:             bucket,
			Players:            len(a.rates),
			Median:             median,
			Q25:                q25,
			Q75:                q75,
			WARMedian:          warMed,
			CostMedian:         costMed,
			MarketQ25:          band.Q25,
			MarketQ50:          band.Q50,
			MarketQ75:          band.Q75,
			Zone:               Classify(median, band, frictionPremium),
			MarketEquivCost4Yr: marketEquiv,
			Surplus4Yr:         marketEquiv - costMed,
		})
	}

	logger.Debug("built bucket table",
		slog.Int("buckets", len(table)),
		slog.Int("excluded_zero_war", excluded))

	return table, nil
}
