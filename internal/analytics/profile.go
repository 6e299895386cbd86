package analytics

import (
	"sort"
	"time"

	"github.com/agroclim/climate-cli/internal/dataset"
)

// rollingWindow is the centered moving-average span of the annual profile.
const rollingWindow = 30

// ProfilePoint is one day of an annual climate profile.
type ProfilePoint struct {
	Date    time.Time `json:"date"`
	Temp    *float64  `json:"temp,omitempty"`
	Rolling *float64  `json:"rolling,omitempty"`
}

// AnnualProfile is the daily temperature trace of a single year with a
// centered 30-day moving average.
type AnnualProfile struct {
	Year   int            `json:"year"`
	Points []ProfilePoint `json:"points"`
}

// YearProfile builds the daily profile for one year. The second return is
// false when the year is not present in the table. The rolling value is set
// only where a full 30-day window of measurements exists, so the series
// starts and ends short of the raw trace.
func YearProfile(t *dataset.Table, year int) (AnnualProfile, bool) {
	var points []ProfilePoint
	for _, r := range t.Records {
		if r.Year == year {
			points = append(points, ProfilePoint{Date: r.Date, Temp: r.TempMean})
		}
	}
	if len(points) == 0 {
		return AnnualProfile{}, false
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	half := rollingWindow / 2
	for i := range points {
		lo := i - half
		hi := i + half // window is [lo, hi), rollingWindow entries
		if lo < 0 || hi > len(points) {
			continue
		}
		var window []float64
		for _, p := range points[lo:hi] {
			if p.Temp == nil {
				window = nil
				break
			}
			window = append(window, *p.Temp)
		}
		if len(window) == rollingWindow {
			avg := mean(window)
			points[i].Rolling = &avg
		}
	}

	return AnnualProfile{Year: year, Points: points}, true
}

// YearMetrics compares one year's headline numbers against the all-years
// baseline. Fields are nil when the backing capability is absent or the year
// has no measurements for it.
type YearMetrics struct {
	Year        int      `json:"year"`
	MeanTemp    *float64 `json:"mean_temp,omitempty"`
	TempDelta   *float64 `json:"temp_delta,omitempty"`   // vs all-years daily mean
	PrecipTotal *float64 `json:"precip_total,omitempty"`
	PrecipDelta *float64 `json:"precip_delta,omitempty"` // vs average annual total
}

// MetricsForYear computes the annual profile header cards.
func MetricsForYear(t *dataset.Table, year int) YearMetrics {
	m := YearMetrics{Year: year}

	var yearTemps, allTemps []float64
	for _, r := range t.Records {
		if r.TempMean == nil {
			continue
		}
		allTemps = append(allTemps, *r.TempMean)
		if r.Year == year {
			yearTemps = append(yearTemps, *r.TempMean)
		}
	}
	if len(yearTemps) > 0 {
		avg := mean(yearTemps)
		delta := avg - mean(allTemps)
		m.MeanTemp = &avg
		m.TempDelta = &delta
	}

	totals := AnnualPrecipTotals(t)
	for _, yv := range totals {
		if yv.Year == year {
			total := yv.Value
			delta := total - MeanValue(totals)
			m.PrecipTotal = &total
			m.PrecipDelta = &delta
			break
		}
	}
	return m
}
