package exporter

import (
	"pickarb/internal/pricing"
)

// Column layouts for the report tables. The formatted variant divides the
// dollar-rate columns by one million and renames them accordingly.
var (
	bucketHeaders = []string{
		"bucket", "players", "median", "q25", "q75",
		"war_med", "cost_med",
		"market_q25", "market_q50", "market_q75",
		"arbitrage_zone", "market_equiv_cost_4yr", "surplus_4yr",
	}

	bucketFormattedHeaders = []string{
		"bucket", "players",
		"rookie_cost_per_war_mil", "rookie_cost_q25_mil", "rookie_cost_q75_mil",
		"war_med", "cost_med",
		"market_cost_q25_mil", "market_cost_q50_mil", "market_cost_q75_mil",
		"arbitrage_zone", "market_equiv_cost_4yr", "surplus_4yr_mil",
	}
)

// WritePriceBandTable writes the free-agency band as a quantile/value
// table.
func (w *CSVWriter) WritePriceBandTable(path string, band pricing.PriceBand) error {
	records := [][]string{
		{"q25", formatFloat(band.Q25)},
		{"q50", formatFloat(band.Q50)},
		{"q75", formatFloat(band.Q75)},
	}
	return w.WriteSimpleCSV(path, []string{"quantile", "value"}, records)
}

// WriteBucketTable writes a bucket summary table with raw dollar rates.
func (w *CSVWriter) WriteBucketTable(path string, table []pricing.BucketSummary) error {
	records := make([][]string, 0, len(table))
	for _, row := range table {
		records = append(records, []string{
			string(row.Bucket),
			formatInt(row.Players),
			formatFloat(row.Median),
			formatFloat(row.Q25),
			formatFloat(row.Q75),
			formatWAR(row.WARMedian),
			formatFloat(row.CostMedian),
			formatFloat(row.MarketQ25),
			formatFloat(row.MarketQ50),
			formatFloat(row.MarketQ75),
			string(row.Zone),
			formatFloat(row.MarketEquivCost4Yr),
			formatFloat(row.Surplus4Yr),
		})
	}
	return w.WriteSimpleCSV(path, bucketHeaders, records)
}

// WriteFormattedBucketTable writes the formatted-in-millions variant of a
// bucket summary table.
func (w *CSVWriter) WriteFormattedBucketTable(path string, table []pricing.BucketSummary) error {
	records := make([][]string, 0, len(table))
	for _, row := range table {
		records = append(records, []string{
			string(row.Bucket),
			formatInt(row.Players),
			formatMillions(row.Median),
			formatMillions(row.Q25),
			formatMillions(row.Q75),
			formatWAR(row.WARMedian),
			formatFloat(row.CostMedian),
			formatMillions(row.MarketQ25),
			formatMillions(row.MarketQ50),
			formatMillions(row.MarketQ75),
			string(row.Zone),
			formatFloat(row.MarketEquivCost4Yr),
			formatMillions(row.Surplus4Yr),
		})
	}
	return w.WriteSimpleCSV(path, bucketFormattedHeaders, records)
}
