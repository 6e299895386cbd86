package analytics

import (
	"time"

	"github.com/agroclim/climate-cli/internal/dataset"
)

// DefaultHistogramBins matches the distribution charts' bin count.
const DefaultHistogramBins = 50

// Histogram is a binned frequency count of daily values for one era.
type Histogram struct {
	Period dataset.Period `json:"period"`
	Counts []int          `json:"counts"`
	Mean   float64        `json:"mean"`
	Days   int            `json:"days"`
}

// EraComparison holds the temperature distributions of the two eras over a
// shared set of bin edges, plus the shift between their means.
type EraComparison struct {
	BinEdges []float64 `json:"bin_edges"` // len(Counts)+1, shared by both eras
	Early    Histogram `json:"early"`
	Recent   Histogram `json:"recent"`
	Delta    float64   `json:"delta"` // recent mean minus early mean
}

// CompareEras bins daily mean temperatures into the early and recent period
// buckets. The bin edges span the combined range of both eras so the two
// histograms overlay directly.
func CompareEras(t *dataset.Table, bins int) EraComparison {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	var early, recent []float64
	for _, r := range t.Records {
		if r.TempMean == nil {
			continue
		}
		if dataset.PeriodOf(r.Year) == dataset.PeriodEarly {
			early = append(early, *r.TempMean)
		} else {
			recent = append(recent, *r.TempMean)
		}
	}

	all := append(append([]float64{}, early...), recent...)
	if len(all) == 0 {
		return EraComparison{
			Early:  Histogram{Period: dataset.PeriodEarly},
			Recent: Histogram{Period: dataset.PeriodRecent},
		}
	}

	lo, hi := minMax(all)
	edges := binEdges(lo, hi, bins)

	cmp := EraComparison{
		BinEdges: edges,
		Early:    Histogram{Period: dataset.PeriodEarly, Counts: binCounts(early, edges), Mean: mean(early), Days: len(early)},
		Recent:   Histogram{Period: dataset.PeriodRecent, Counts: binCounts(recent, edges), Mean: mean(recent), Days: len(recent)},
	}
	if len(early) > 0 && len(recent) > 0 {
		cmp.Delta = cmp.Recent.Mean - cmp.Early.Mean
	}
	return cmp
}

func binEdges(lo, hi float64, bins int) []float64 {
	if hi == lo {
		hi = lo + 1 // degenerate range, one unit wide
	}
	width := (hi - lo) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi
	return edges
}

// binCounts assigns values to half-open bins; the last bin includes its
// upper edge so the maximum is not lost.
func binCounts(vals []float64, edges []float64) []int {
	counts := make([]int, len(edges)-1)
	lo := edges[0]
	hi := edges[len(edges)-1]
	width := (hi - lo) / float64(len(counts))
	for _, v := range vals {
		if v < lo || v > hi {
			continue
		}
		i := int((v - lo) / width)
		if i >= len(counts) {
			i = len(counts) - 1
		}
		counts[i]++
	}
	return counts
}

// BoxStats summarizes one group's distribution for a box plot.
type BoxStats struct {
	Label  string  `json:"label"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	SD     float64 `json:"sd"`
	Days   int     `json:"days"`
}

// MonthlyPrecipBoxes returns per-month precipitation box statistics in
// calendar order. Months with no measurements are omitted.
func MonthlyPrecipBoxes(t *dataset.Table) []BoxStats {
	byMonth := make(map[int][]float64)
	for _, r := range t.Records {
		if r.Precipitation != nil {
			byMonth[r.Month] = append(byMonth[r.Month], *r.Precipitation)
		}
	}

	var out []BoxStats
	for m := 1; m <= 12; m++ {
		vals := byMonth[m]
		if len(vals) == 0 {
			continue
		}
		lo, hi := minMax(vals)
		out = append(out, BoxStats{
			Label:  time.Month(m).String(),
			Min:    lo,
			Q1:     quantile(vals, 0.25),
			Median: quantile(vals, 0.5),
			Q3:     quantile(vals, 0.75),
			Max:    hi,
			Mean:   mean(vals),
			SD:     stddev(vals),
			Days:   len(vals),
		})
	}
	return out
}
