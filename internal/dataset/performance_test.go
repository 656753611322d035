package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "pickarb/internal/errors"
)

func TestLoadPerformance(t *testing.T) {
	path := writeFixture(t, "war.csv", `player_id,player_name,season,war_total
doncilu01,Luka Dončić,2019,4.5
jamesle01,LeBron James,2018,12.3
jamesle01,LeBron James,2014,10.0
`)

	records, err := LoadPerformance(path, 2017, 2024, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// The 2014 season falls outside the window.
	assert.Equal(t, "doncilu01", records[0].Slug)
	assert.Equal(t, "luka doncic", records[0].CanonicalName)
	assert.Equal(t, 2019, records[0].SeasonEnd)
	assert.InDelta(t, 4.5, records[0].WAR, 1e-12)
	assert.Equal(t, "lebron james", records[1].CanonicalName)
}

func TestLoadPerformanceHeaderAliases(t *testing.T) {
	path := writeFixture(t, "war.csv", `player_slug,player,season_end,war
tatumja01,Jayson Tatum,2020,7.1
`)

	records, err := LoadPerformance(path, 2017, 2024, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "tatumja01", records[0].Slug)
}

func TestLoadPerformanceDropsBadRows(t *testing.T) {
	path := writeFixture(t, "war.csv", `player_id,player_name,season,war_total
x01,Bad Season,abc,1.0
y01,Bad WAR,2019,not-a-number
z01,Good Row,2019,2.5
`)

	records, err := LoadPerformance(path, 2017, 2024, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "good row", records[0].CanonicalName)
}

func TestLoadPerformanceEmptyWindowIsError(t *testing.T) {
	path := writeFixture(t, "war.csv", `player_id,player_name,season,war_total
x01,Some Player,2005,3.0
`)

	_, err := LoadPerformance(path, 2017, 2024, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeEmptyStage))
}
