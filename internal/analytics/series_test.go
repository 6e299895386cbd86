package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearlyMeanTemp(t *testing.T) {
	t.Parallel()

	tbl := tableOf(
		day(2021, time.January, 1, fp(2), nil),
		day(2021, time.January, 2, fp(4), nil),
		day(2020, time.June, 1, fp(20), nil),
		day(2022, time.June, 1, nil, fp(3)), // no temperature, year omitted
	)

	got := YearlyMeanTemp(tbl)
	require.Len(t, got, 2)
	assert.Equal(t, YearValue{Year: 2020, Value: 20}, got[0])
	assert.Equal(t, 2021, got[1].Year)
	assert.InDelta(t, 3.0, got[1].Value, 1e-9)
}

func TestAnnualPrecipTotals(t *testing.T) {
	t.Parallel()

	tbl := tableOf(
		day(2020, time.March, 1, nil, fp(1.5)),
		day(2020, time.March, 2, nil, fp(2.5)),
		day(2021, time.March, 1, nil, fp(10)),
		day(2021, time.March, 2, nil, nil), // missing cell skipped, not zeroed
	)

	got := AnnualPrecipTotals(tbl)
	require.Len(t, got, 2)
	assert.InDelta(t, 4.0, got[0].Value, 1e-9)
	assert.InDelta(t, 10.0, got[1].Value, 1e-9)
}

func TestTrendDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		series []YearValue
		want   float64
	}{
		{name: "empty", series: nil, want: 0},
		{
			name:   "shorter than window uses whole series on both ends",
			series: []YearValue{{2020, 10}, {2021, 12}},
			want:   0, // both ends average the same two values
		},
		{
			name: "five year window at each end",
			series: []YearValue{
				{1989, 10}, {1990, 10}, {1991, 10}, {1992, 10}, {1993, 10},
				{1994, 11},
				{2020, 12}, {2021, 12}, {2022, 12}, {2023, 12}, {2024, 12},
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TrendDelta(tt.series), 1e-9)
		})
	}
}

func TestMeanValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, MeanValue(nil))
	assert.InDelta(t, 15.0, MeanValue([]YearValue{{2020, 10}, {2021, 20}}), 1e-9)
}
