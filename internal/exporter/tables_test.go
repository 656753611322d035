package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickarb/internal/pricing"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, bom), "expected UTF-8 BOM prefix")

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, bom))).ReadAll()
	require.NoError(t, err)
	return records
}

func sampleTable() []pricing.BucketSummary {
	return []pricing.BucketSummary{
		{
			Bucket:             pricing.Bucket01to05,
			Players:            8,
			Median:             1_500_000,
			Q25:                1_200_000,
			Q75:                1_900_000,
			WARMedian:          7.5,
			CostMedian:         40_000_000,
			MarketQ25:          2_000_000,
			MarketQ50:          3_000_000,
			MarketQ75:          4_000_000,
			Zone:               pricing.ZoneBuy,
			MarketEquivCost4Yr: 22_500_000,
			Surplus4Yr:         -17_500_000,
		},
	}
}

func TestWritePriceBandTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables", "salary_price_band_overall.csv")
	writer := NewCSVWriter(nil)

	band := pricing.PriceBand{Q25: 1_750_000, Q50: 2_500_000, Q75: 3_250_000}
	require.NoError(t, writer.WritePriceBandTable(path, band))

	records := readCSVFile(t, path)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"quantile", "value"}, records[0])
	assert.Equal(t, []string{"q25", "1750000.00"}, records[1])
	assert.Equal(t, []string{"q50", "2500000.00"}, records[2])
	assert.Equal(t, []string{"q75", "3250000.00"}, records[3])
}

func TestWriteBucketTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pick_bucket_summary.csv")
	writer := NewCSVWriter(nil)

	require.NoError(t, writer.WriteBucketTable(path, sampleTable()))

	records := readCSVFile(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, bucketHeaders, records[0])

	row := records[1]
	assert.Equal(t, "01-05", row[0])
	assert.Equal(t, "8", row[1])
	assert.Equal(t, "1500000.00", row[2])
	assert.Equal(t, "7.5", row[5])
	assert.Equal(t, "BUY", row[10])
	assert.Equal(t, "-17500000.00", row[12])
}

func TestWriteFormattedBucketTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table1_arbitrage_summary.csv")
	writer := NewCSVWriter(nil)

	require.NoError(t, writer.WriteFormattedBucketTable(path, sampleTable()))

	records := readCSVFile(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, bucketFormattedHeaders, records[0])

	// Dollar-rate columns render in millions with 4 decimals.
	row := records[1]
	assert.Equal(t, "1.5000", row[2])
	assert.Equal(t, "1.2000", row[3])
	assert.Equal(t, "3.0000", row[8])
	assert.Equal(t, "-17.5000", row[12])
}

func TestWriteCSVTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	writer := NewCSVWriter(nil)

	require.NoError(t, writer.WriteSimpleCSV(path, []string{"a"}, [][]string{{"1"}, {"2"}}))
	require.NoError(t, writer.WriteSimpleCSV(path, []string{"a"}, [][]string{{"3"}}))

	records := readCSVFile(t, path)
	assert.Equal(t, [][]string{{"a"}, {"3"}}, records)
}
