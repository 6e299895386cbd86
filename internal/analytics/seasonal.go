package analytics

import (
	"sort"

	"github.com/agroclim/climate-cli/internal/dataset"
)

// SeasonalSummary is one season's year-by-year evolution.
type SeasonalSummary struct {
	Season       dataset.Season `json:"season"`
	TempByYear   []YearValue    `json:"temp_by_year,omitempty"`   // mean temperature per year
	PrecipByYear []YearValue    `json:"precip_by_year,omitempty"` // total precipitation per year
	AvgPrecip    float64        `json:"avg_precip"`               // all-years mean of the seasonal totals
}

// SeasonSummary aggregates the records of one season. The season label
// groups by calendar month, so December counts toward the winter of its own
// year rather than the following one.
func SeasonSummary(t *dataset.Table, season dataset.Season) SeasonalSummary {
	tempByYear := make(map[int][]float64)
	precipByYear := make(map[int][]float64)
	for _, r := range t.Records {
		if r.Season != season {
			continue
		}
		if r.TempMean != nil {
			tempByYear[r.Year] = append(tempByYear[r.Year], *r.TempMean)
		}
		if r.Precipitation != nil {
			precipByYear[r.Year] = append(precipByYear[r.Year], *r.Precipitation)
		}
	}

	s := SeasonalSummary{
		Season:       season,
		TempByYear:   reduceByYear(tempByYear, mean),
		PrecipByYear: reduceByYear(precipByYear, sum),
	}
	s.AvgPrecip = MeanValue(s.PrecipByYear)
	return s
}

func reduceByYear(byYear map[int][]float64, reduce func([]float64) float64) []YearValue {
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
