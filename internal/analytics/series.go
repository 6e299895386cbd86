package analytics

import (
	"sort"

	"github.com/agroclim/climate-cli/internal/dataset"
)

// YearValue is one aggregated value for a calendar year.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// trendWindow is the number of years averaged at each end of a series when
// computing a long-term change.
const trendWindow = 5

// YearlyMeanTemp returns the mean daily temperature per year, ascending by
// year. Years with no temperature measurements are omitted.
func YearlyMeanTemp(t *dataset.Table) []YearValue {
	return yearlyAgg(t, func(r dataset.EnrichedRecord) *float64 { return r.TempMean }, mean)
}

// AnnualPrecipTotals returns total precipitation per year, ascending by year.
func AnnualPrecipTotals(t *dataset.Table) []YearValue {
	return yearlyAgg(t, func(r dataset.EnrichedRecord) *float64 { return r.Precipitation }, sum)
}

// TrendDelta is the difference between the mean of the last and first five
// values of a year series. Shorter series use whatever is available on each
// end; an empty series yields 0.
func TrendDelta(series []YearValue) float64 {
	if len(series) == 0 {
		return 0
	}
	n := trendWindow
	if n > len(series) {
		n = len(series)
	}
	var first, last []float64
	for _, yv := range series[:n] {
		first = append(first, yv.Value)
	}
	for _, yv := range series[len(series)-n:] {
		last = append(last, yv.Value)
	}
	return mean(last) - mean(first)
}

// MeanValue averages a year series.
func MeanValue(series []YearValue) float64 {
	var vals []float64
	for _, yv := range series {
		vals = append(vals, yv.Value)
	}
	return mean(vals)
}

// yearlyAgg groups one measurement by year and reduces each group.
func yearlyAgg(t *dataset.Table, field func(dataset.EnrichedRecord) *float64, reduce func([]float64) float64) []YearValue {
	byYear := make(map[int][]float64)
	for _, r := range t.Records {
		if v := field(r); v != nil {
			byYear[r.Year] = append(byYear[r.Year], *v)
		}
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearValue, 0, len(years))
	for _, y := range years {
		out = append(out, YearValue{Year: y, Value: reduce(byYear[y])})
	}
	return out
}
