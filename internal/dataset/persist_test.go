package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "market_raw.csv")
	want := []MarketRecord{
		{Slug: "a01", PlayerName: "A One", CanonicalName: "a one", SeasonEnd: 2019, WAR: 4, Salary: 8_000_000, DollarsPerWAR: 2_000_000},
		{Slug: "b01", PlayerName: "B Two", CanonicalName: "b two", SeasonEnd: 2020, WAR: 1.5, Salary: 3_000_000, DollarsPerWAR: 2_000_000},
	}

	require.NoError(t, WriteMarketCSV(path, want))

	got, err := ReadMarketCSV(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPickOutcomesCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "pick_outcomes.csv")
	want := []PickOutcome{
		{DraftYear: 2018, Pick: 3, Slug: "rook01", PlayerName: "Rookie", CanonicalName: "rookie", WARFirst4: 6, CostFirst4: 12_000_000},
		{DraftYear: 2019, Pick: 55, Slug: "stash01", PlayerName: "Stash", CanonicalName: "stash", WARFirst4: 0, CostFirst4: 0},
	}

	require.NoError(t, WritePickOutcomesCSV(path, want))

	got, err := ReadPickOutcomesCSV(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadMarketCSVFiltersNonPositiveRows(t *testing.T) {
	// A hand-edited intermediate file with a zero-WAR row must not leak
	// into the ratio pool.
	path := writeFixture(t, "market_raw.csv", `player_slug,player_name,canonical_name,season_end,war,salary,dollars_per_war
a01,A,a,2019,0,1000000,0
b01,B,b,2019,2,1000000,500000
`)

	records, err := ReadMarketCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].CanonicalName)
}
