// Package chartspec turns analytics series into renderer-agnostic chart
// specifications. The dashboard frontend receives these as JSON and draws
// them; nothing here touches the dataset directly except through the
// analytics package, so the presentation layer stays a pure function of
// (table, selection).
package chartspec

import (
	"fmt"

	"github.com/agroclim/climate-cli/internal/analytics"
	"github.com/agroclim/climate-cli/internal/dataset"
)

// Chart IDs exposed by the API.
const (
	ChartAnnualTemperature       = "annual-temperature"
	ChartAnnualPrecipitation     = "annual-precipitation"
	ChartTemperatureDistribution = "temperature-distribution"
	ChartMonthlyHeatmap          = "monthly-heatmap"
	ChartMonthlyPrecipitation    = "monthly-precipitation"
	ChartAnnualProfile           = "annual-profile"
	ChartDecadal                 = "decadal"
	ChartSeasonal                = "seasonal"
)

// Spec is a complete chart description: what to draw, how to label it, and
// the narrative paragraph shown beneath it.
type Spec struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // line, area, bar, histogram, heatmap, box, scatter
	Title     string `json:"title"`
	XAxis     Axis   `json:"x_axis"`
	YAxis     Axis   `json:"y_axis"`
	Narrative string `json:"narrative,omitempty"`

	Series  []Series             `json:"series,omitempty"`
	Heatmap *Heatmap             `json:"heatmap,omitempty"`
	Boxes   []analytics.BoxStats `json:"boxes,omitempty"`
	Metrics []Metric             `json:"metrics,omitempty"`
}

// Axis labels one chart axis.
type Axis struct {
	Title string   `json:"title,omitempty"`
	Ticks []string `json:"ticks,omitempty"`
}

// Series is one plotted trace.
type Series struct {
	Name   string     `json:"name"`
	Mode   string     `json:"mode,omitempty"` // lines, markers, lines+markers, bars
	Color  string     `json:"color,omitempty"`
	Fill   bool       `json:"fill,omitempty"`
	X      []float64  `json:"x,omitempty"`
	Y      []*float64 `json:"y"`
	Labels []string   `json:"labels,omitempty"`
}

// Heatmap is a dense grid payload with row/column labels.
type Heatmap struct {
	Columns    []string     `json:"columns"`
	Rows       []string     `json:"rows"`
	Values     [][]*float64 `json:"values"`
	ColorScale string       `json:"color_scale,omitempty"`
}

// Metric is a headline stat card rendered next to a chart.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

var monthTicks = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

const (
	colorTemperature   = "#e74c3c"
	colorTemperatureMA = "#c0392b"
	colorPrecipitation = "#3498db"
)

// AnnualTemperature is the yearly mean temperature trend line.
func AnnualTemperature(series []analytics.YearValue) *Spec {
	delta := analytics.TrendDelta(series)
	return &Spec{
		ID:    ChartAnnualTemperature,
		Type:  "line",
		Title: "Temperature Warming Trend Over 35 Years",
		XAxis: Axis{Title: "Year"},
		YAxis: Axis{Title: "Temperature (°C)"},
		Series: []Series{{
			Name:  "Annual Temperature",
			Mode:  "lines+markers",
			Color: colorTemperature,
			X:     yearsOf(series),
			Y:     valuesOf(series),
		}},
		Narrative: fmt.Sprintf("The annual average temperature shows a clear upward trend. "+
			"With an average increase of %.1f°C, farmers must now adapt to longer growing "+
			"seasons but also face increased risks of heat stress during critical growth phases.", delta),
	}
}

// AnnualPrecipitation is the yearly precipitation total area chart.
func AnnualPrecipitation(totals []analytics.YearValue) *Spec {
	return &Spec{
		ID:    ChartAnnualPrecipitation,
		Type:  "area",
		Title: "Precipitation Pattern Changes",
		XAxis: Axis{Title: "Year"},
		YAxis: Axis{Title: "Total Precipitation (mm)"},
		Series: []Series{{
			Name:  "Annual Precipitation",
			Mode:  "lines+markers",
			Color: colorPrecipitation,
			Fill:  true,
			X:     yearsOf(totals),
			Y:     valuesOf(totals),
		}},
		Narrative: "While the total annual precipitation hasn't changed dramatically, its " +
			"distribution throughout the year has become more erratic, posing challenges for " +
			"agricultural planning and irrigation management.",
	}
}

// TemperatureDistribution overlays the two eras' daily temperature
// histograms.
func TemperatureDistribution(cmp analytics.EraComparison) *Spec {
	return &Spec{
		ID:    ChartTemperatureDistribution,
		Type:  "histogram",
		Title: "Temperature Distribution Shift Between Two Periods",
		XAxis: Axis{Title: "Temperature (°C)", Ticks: edgeTicks(cmp.BinEdges)},
		YAxis: Axis{Title: "Frequency (days)"},
		Series: []Series{
			{Name: string(cmp.Early.Period), Mode: "bars", Y: intsToPtrs(cmp.Early.Counts)},
			{Name: string(cmp.Recent.Period), Mode: "bars", Y: intsToPtrs(cmp.Recent.Counts)},
		},
		Metrics: []Metric{
			{Label: fmt.Sprintf("%s Avg", cmp.Early.Period), Value: fmt.Sprintf("%.2f°C", cmp.Early.Mean)},
			{Label: fmt.Sprintf("%s Avg", cmp.Recent.Period), Value: fmt.Sprintf("%.2f°C", cmp.Recent.Mean), Delta: fmt.Sprintf("%+.2f°C", cmp.Delta)},
		},
		Narrative: "The more recent period exhibits both higher average temperatures and more " +
			"extreme temperature events, affecting crop selection decisions and planting schedules.",
	}
}

// MonthlyHeatmap is the month-by-year temperature calendar.
func MonthlyHeatmap(m analytics.MonthYearMatrix) *Spec {
	cols := make([]string, len(m.Years))
	for i, y := range m.Years {
		cols[i] = fmt.Sprintf("%d", y)
	}
	return &Spec{
		ID:    ChartMonthlyHeatmap,
		Type:  "heatmap",
		Title: "Temperature Calendar: Seasonal Patterns Over Years",
		XAxis: Axis{Title: "Year"},
		YAxis: Axis{Title: "Month"},
		Heatmap: &Heatmap{
			Columns:    cols,
			Rows:       monthTicks,
			Values:     m.Values,
			ColorScale: "RdYlBu_r",
		},
		Narrative: "The heatmap reveals intensifying summer temperatures and milder winters, " +
			"extending the growing season but increasing the risk of early spring frosts damaging " +
			"crops that start growing too soon.",
	}
}

// MonthlyPrecipitation is the per-month precipitation box plot.
func MonthlyPrecipitation(boxes []analytics.BoxStats) *Spec {
	return &Spec{
		ID:    ChartMonthlyPrecipitation,
		Type:  "box",
		Title: "Seasonal Precipitation Variability",
		XAxis: Axis{Title: "Month"},
		YAxis: Axis{Title: "Precipitation (mm/day)"},
		Boxes: boxes,
		Narrative: "Monthly precipitation patterns show increasing variability, with more intense " +
			"rainfall events and longer dry periods, impacting soil moisture levels and erosion risks.",
	}
}

// AnnualProfile is one year's daily temperature trace with its 30-day
// moving average and headline metric cards.
func AnnualProfile(p analytics.AnnualProfile, m analytics.YearMetrics) *Spec {
	raw := Series{
		Name:  "Daily Temperature",
		Mode:  "lines",
		Color: colorTemperature,
		Fill:  true,
		Y:     make([]*float64, len(p.Points)),
	}
	ma := Series{
		Name:  "30-day Moving Average",
		Mode:  "lines",
		Color: colorTemperatureMA,
		Y:     make([]*float64, len(p.Points)),
	}
	labels := make([]string, len(p.Points))
	for i, pt := range p.Points {
		labels[i] = pt.Date.Format("2006-01-02")
		raw.Y[i] = pt.Temp
		ma.Y[i] = pt.Rolling
	}
	raw.Labels = labels

	spec := &Spec{
		ID:     ChartAnnualProfile,
		Type:   "line",
		Title:  fmt.Sprintf("Daily Temperature Profile for %d", p.Year),
		XAxis:  Axis{Title: "Date"},
		YAxis:  Axis{Title: "Temperature (°C)"},
		Series: []Series{raw, ma},
		Narrative: fmt.Sprintf("The detailed temperature profile for %d compared to historical "+
			"patterns highlights the evolving challenges in agricultural planning.", p.Year),
	}
	if m.MeanTemp != nil {
		spec.Metrics = append(spec.Metrics, Metric{
			Label: fmt.Sprintf("Avg Temp %d", p.Year),
			Value: fmt.Sprintf("%.1f°C", *m.MeanTemp),
			Delta: fmt.Sprintf("%+.1f°C vs avg", *m.TempDelta),
		})
	}
	if m.PrecipTotal != nil {
		spec.Metrics = append(spec.Metrics, Metric{
			Label: fmt.Sprintf("Total Precip %d", p.Year),
			Value: fmt.Sprintf("%.0f mm", *m.PrecipTotal),
			Delta: fmt.Sprintf("%+.0f mm vs avg", *m.PrecipDelta),
		})
	}
	return spec
}

// Decadal compares monthly curves across decades for one variable.
func Decadal(series []analytics.DecadeSeries, variable analytics.Variable) *Spec {
	title := "Monthly Temperature by Decade"
	yTitle := "Temperature (°C)"
	if variable == analytics.VariablePrecipitation {
		title = "Monthly Precipitation by Decade"
		yTitle = "Precipitation (mm/day)"
	}

	spec := &Spec{
		ID:    ChartDecadal,
		Type:  "line",
		Title: title,
		XAxis: Axis{Title: "Month", Ticks: monthTicks},
		YAxis: Axis{Title: yTitle},
		Narrative: "Each successive decade shows warmer temperatures and more erratic rainfall, " +
			"indicating a long-term shift in agricultural conditions.",
	}
	for _, ds := range series {
		spec.Series = append(spec.Series, Series{
			Name: fmt.Sprintf("%ds", ds.Decade),
			Mode: "lines+markers",
			Y:    ds.Values,
		})
	}
	return spec
}

// Seasonal is the per-season year-by-year view: a temperature scatter and a
// precipitation bar series with its long-term average.
func Seasonal(s analytics.SeasonalSummary, caps dataset.Capabilities) *Spec {
	spec := &Spec{
		ID:    ChartSeasonal,
		Type:  "scatter",
		Title: fmt.Sprintf("%s Trends by Year", s.Season),
		XAxis: Axis{Title: "Year"},
		YAxis: Axis{Title: "Average Temperature (°C) / Total Precipitation (mm)"},
		Narrative: fmt.Sprintf("%s has experienced significant changes over the observation "+
			"period, affecting planting times, growing periods, and harvest windows.", s.Season),
	}
	if caps.TempMean {
		spec.Series = append(spec.Series, Series{
			Name:  fmt.Sprintf("%s Temperature", s.Season),
			Mode:  "markers",
			Color: colorTemperature,
			X:     yearsOf(s.TempByYear),
			Y:     valuesOf(s.TempByYear),
		})
	}
	if caps.Precipitation {
		spec.Series = append(spec.Series, Series{
			Name:  fmt.Sprintf("%s Precipitation", s.Season),
			Mode:  "bars",
			Color: colorPrecipitation,
			X:     yearsOf(s.PrecipByYear),
			Y:     valuesOf(s.PrecipByYear),
		})
		spec.Metrics = append(spec.Metrics, Metric{
			Label: "Average",
			Value: fmt.Sprintf("%.0f mm", s.AvgPrecip),
		})
	}
	return spec
}

func yearsOf(series []analytics.YearValue) []float64 {
	out := make([]float64, len(series))
	for i, yv := range series {
		out[i] = float64(yv.Year)
	}
	return out
}

func valuesOf(series []analytics.YearValue) []*float64 {
	out := make([]*float64, len(series))
	for i := range series {
		v := series[i].Value
		out[i] = &v
	}
	return out
}

func intsToPtrs(counts []int) []*float64 {
	out := make([]*float64, len(counts))
	for i, c := range counts {
		v := float64(c)
		out[i] = &v
	}
	return out
}

func edgeTicks(edges []float64) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = fmt.Sprintf("%.1f", e)
	}
	return out
}
