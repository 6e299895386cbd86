package analytics

import (
	"sort"

	"github.com/agroclim/climate-cli/internal/dataset"
)

// MonthYearMatrix is the heatmap input: mean temperature per calendar month
// per year. Values has twelve rows (January..December); each row has one
// cell per entry of Years, nil where the month has no measurements.
type MonthYearMatrix struct {
	Years  []int        `json:"years"`
	Values [][]*float64 `json:"values"`
}

// MonthlyTempMatrix aggregates daily mean temperatures into a month-by-year
// grid.
func MonthlyTempMatrix(t *dataset.Table) MonthYearMatrix {
	type key struct{ year, month int }
	cells := make(map[key][]float64)
	for _, r := range t.Records {
		if r.TempMean != nil {
			k := key{r.Year, r.Month}
			cells[k] = append(cells[k], *r.TempMean)
		}
	}

	years := t.Years()
	values := make([][]*float64, 12)
	for m := 0; m < 12; m++ {
		row := make([]*float64, len(years))
		for yi, y := range years {
			if vals, ok := cells[key{y, m + 1}]; ok {
				avg := mean(vals)
				row[yi] = &avg
			}
		}
		values[m] = row
	}
	return MonthYearMatrix{Years: years, Values: values}
}

// Variable selects which measurement a comparative chart aggregates.
type Variable string

const (
	VariableTemperature   Variable = "temperature"
	VariablePrecipitation Variable = "precipitation"
)

// ValidVariable reports whether v is a known variable selector.
func ValidVariable(v Variable) bool {
	return v == VariableTemperature || v == VariablePrecipitation
}

// DecadeSeries is one decade's mean value per calendar month.
type DecadeSeries struct {
	Decade int        `json:"decade"`
	Values []*float64 `json:"values"` // January..December, nil when no data
}

// DecadalMonthlyMeans averages the selected variable per (decade, month),
// ascending by decade.
func DecadalMonthlyMeans(t *dataset.Table, variable Variable) []DecadeSeries {
	field := func(r dataset.EnrichedRecord) *float64 { return r.TempMean }
	if variable == VariablePrecipitation {
		field = func(r dataset.EnrichedRecord) *float64 { return r.Precipitation }
	}

	type key struct{ decade, month int }
	cells := make(map[key][]float64)
	decadesSeen := make(map[int]bool)
	for _, r := range t.Records {
		v := field(r)
		if v == nil {
			continue
		}
		d := dataset.DecadeOf(r.Year)
		decadesSeen[d] = true
		k := key{d, r.Month}
		cells[k] = append(cells[k], *v)
	}

	decades := make([]int, 0, len(decadesSeen))
	for d := range decadesSeen {
		decades = append(decades, d)
	}
	sort.Ints(decades)

	out := make([]DecadeSeries, 0, len(decades))
	for _, d := range decades {
		ds := DecadeSeries{Decade: d, Values: make([]*float64, 12)}
		for m := 1; m <= 12; m++ {
			if vals, ok := cells[key{d, m}]; ok {
				avg := mean(vals)
				ds.Values[m-1] = &avg
			}
		}
		out = append(out, ds)
	}
	return out
}
