package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPickOutcomesWindow(t *testing.T) {
	draft := []DraftPick{
		{SeasonEnd: 2018, Pick: 3, PlayerName: "Rookie", Slug: "rook01", CanonicalName: "rookie"},
	}
	// Records for seasons +1 and +3 only; +2 and +4 are missing and must
	// contribute zero. The 2018 and 2023 rows fall outside the window.
	performance := []PerformanceRecord{
		{Slug: "rook01", CanonicalName: "rookie", SeasonEnd: 2018, WAR: 99},
		{Slug: "rook01", CanonicalName: "rookie", SeasonEnd: 2019, WAR: 2},
		{Slug: "rook01", CanonicalName: "rookie", SeasonEnd: 2021, WAR: 4},
		{Slug: "rook01", CanonicalName: "rookie", SeasonEnd: 2023, WAR: 99},
	}
	salaries := []SalaryRecord{
		{CanonicalName: "rookie", SeasonEnd: 2019, Salary: 5_000_000},
		{CanonicalName: "rookie", SeasonEnd: 2021, Salary: 7_000_000},
		{CanonicalName: "rookie", SeasonEnd: 2023, Salary: 99_000_000},
	}

	outcomes, err := BuildPickOutcomes(draft, performance, salaries, 4, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	o := outcomes[0]
	assert.Equal(t, 2018, o.DraftYear)
	assert.Equal(t, 3, o.Pick)
	assert.InDelta(t, 6, o.WARFirst4, 1e-12)
	assert.InDelta(t, 12_000_000, o.CostFirst4, 1e-6)
	assert.True(t, o.HasPositiveWAR())
}

func TestBuildPickOutcomesSlugPreferred(t *testing.T) {
	// Two distinct players share a canonical name; the slug keeps their WAR
	// apart while salary still joins on the name.
	draft := []DraftPick{
		{SeasonEnd: 2018, Pick: 10, PlayerName: "Common Name", Slug: "right01", CanonicalName: "common name"},
	}
	performance := []PerformanceRecord{
		{Slug: "wrong01", CanonicalName: "common name", SeasonEnd: 2019, WAR: 100},
		{Slug: "right01", CanonicalName: "common name", SeasonEnd: 2019, WAR: 3},
	}
	salaries := []SalaryRecord{
		{CanonicalName: "common name", SeasonEnd: 2019, Salary: 4_000_000},
	}

	outcomes, err := BuildPickOutcomes(draft, performance, salaries, 4, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.InDelta(t, 3, outcomes[0].WARFirst4, 1e-12)
}

func TestBuildPickOutcomesNameFallback(t *testing.T) {
	draft := []DraftPick{
		{SeasonEnd: 2018, Pick: 20, PlayerName: "No Slug", CanonicalName: "no slug"},
	}
	performance := []PerformanceRecord{
		{Slug: "nslug01", CanonicalName: "no slug", SeasonEnd: 2020, WAR: 1.5},
	}

	outcomes, err := BuildPickOutcomes(draft, performance, nil, 4, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.InDelta(t, 1.5, outcomes[0].WARFirst4, 1e-12)
	assert.Zero(t, outcomes[0].CostFirst4)
}

func TestBuildPickOutcomesNeverPlayed(t *testing.T) {
	draft := []DraftPick{
		{SeasonEnd: 2019, Pick: 55, PlayerName: "Stash", Slug: "stash01", CanonicalName: "stash"},
	}

	outcomes, err := BuildPickOutcomes(draft, nil, nil, 4, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Zero(t, outcomes[0].WARFirst4)
	assert.Zero(t, outcomes[0].CostFirst4)
	assert.False(t, outcomes[0].HasPositiveWAR())
}

func TestBuildPickOutcomesSorted(t *testing.T) {
	draft := []DraftPick{
		{SeasonEnd: 2019, Pick: 5, PlayerName: "B", CanonicalName: "b"},
		{SeasonEnd: 2018, Pick: 40, PlayerName: "A", CanonicalName: "a"},
		{SeasonEnd: 2018, Pick: 2, PlayerName: "C", CanonicalName: "c"},
	}

	outcomes, err := BuildPickOutcomes(draft, nil, nil, 4, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.Equal(t, []int{2018, 2018, 2019}, []int{outcomes[0].DraftYear, outcomes[1].DraftYear, outcomes[2].DraftYear})
	assert.Equal(t, []int{2, 40, 5}, []int{outcomes[0].Pick, outcomes[1].Pick, outcomes[2].Pick})
}

func TestBuildPickOutcomesInvalidWindow(t *testing.T) {
	draft := []DraftPick{{SeasonEnd: 2018, Pick: 1, PlayerName: "X", CanonicalName: "x"}}
	_, err := BuildPickOutcomes(draft, nil, nil, 0, nil)
	assert.Error(t, err)
}
