package pricing

import (
	"math"
	"sort"

	"pickarb/internal/errors"
)

// Quantile returns the p-quantile (0..1) of values using linear
// interpolation at index p*(n-1). For four ratios [1,2,3,4] the quartiles
// come out 1.75 / 2.5 / 3.25.
//
// NaN and Inf inputs must be filtered by the caller; quantiles over an
// empty slice are undefined and return an error.
func Quantile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.NewValidationError("quantile of empty slice is undefined")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if p <= 0 {
		return sorted[0], nil
	}
	if p >= 1 {
		return sorted[n-1], nil
	}

	index := p * float64(n-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower], nil
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight, nil
}

// Median is the 0.5-quantile.
func Median(values []float64) (float64, error) {
	return Quantile(values, 0.5)
}

// finiteRatios filters out NaN, Inf, and non-positive values so a zero
// denominator can never corrupt the percentile statistics.
func finiteRatios(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}
