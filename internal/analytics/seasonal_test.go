package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroclim/climate-cli/internal/dataset"
)

func TestSeasonSummary(t *testing.T) {
	t.Parallel()

	tbl := tableOf(
		day(2020, time.June, 1, fp(20), fp(2)),
		day(2020, time.July, 1, fp(24), fp(0)),
		day(2021, time.August, 1, fp(26), fp(4)),
		day(2020, time.January, 1, fp(4), fp(10)), // winter, excluded
	)

	s := SeasonSummary(tbl, dataset.SeasonSummer)
	assert.Equal(t, dataset.SeasonSummer, s.Season)

	require.Len(t, s.TempByYear, 2)
	assert.InDelta(t, 22.0, s.TempByYear[0].Value, 1e-9)
	assert.InDelta(t, 26.0, s.TempByYear[1].Value, 1e-9)

	require.Len(t, s.PrecipByYear, 2)
	assert.InDelta(t, 2.0, s.PrecipByYear[0].Value, 1e-9)
	assert.InDelta(t, 4.0, s.PrecipByYear[1].Value, 1e-9)
	assert.InDelta(t, 3.0, s.AvgPrecip, 1e-9)
}

func TestSeasonSummary_DecemberCountsTowardOwnYear(t *testing.T) {
	t.Parallel()

	tbl := tableOf(day(2020, time.December, 15, fp(2), nil))
	s := SeasonSummary(tbl, dataset.SeasonWinter)
	require.Len(t, s.TempByYear, 1)
	assert.Equal(t, 2020, s.TempByYear[0].Year)
}

func TestSeasonSummary_EmptySeason(t *testing.T) {
	t.Parallel()

	tbl := tableOf(day(2020, time.June, 1, fp(20), nil))
	s := SeasonSummary(tbl, dataset.SeasonWinter)
	assert.Empty(t, s.TempByYear)
	assert.Empty(t, s.PrecipByYear)
	assert.Equal(t, 0.0, s.AvgPrecip)
}
