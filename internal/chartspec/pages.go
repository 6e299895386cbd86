package chartspec

import "github.com/agroclim/climate-cli/internal/dataset"

// Page slugs for the navigation surface.
const (
	PageProblem    = "problem"
	PageAnalysis   = "analysis"
	PageInsights   = "insights"
	PageConclusion = "conclusion"
)

// Page is one entry of the dashboard navigation.
type Page struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is one block of a page: either narrative text, or a reference to
// a chart the frontend should fetch. Sections whose chart depends on an
// absent capability are filtered out before the page is served.
type Section struct {
	Heading   string `json:"heading,omitempty"`
	Text      string `json:"text,omitempty"`
	ChartID   string `json:"chart_id,omitempty"`
	Selectors string `json:"selectors,omitempty"` // query parameters the chart accepts
}

// Pages builds the four navigable pages, omitting chart sections whose
// backing capability flag is false.
func Pages(caps dataset.Capabilities) []Page {
	pages := []Page{
		{
			Slug:  PageProblem,
			Title: "1. THE PROBLEM",
			Sections: []Section{{
				Heading: "Climate Change Impact on Agriculture",
				Text: "Over the past 35 years, climate change has significantly impacted " +
					"agricultural conditions. This analysis examines temperature trends, " +
					"precipitation patterns, and extreme weather events to understand how " +
					"farming conditions have evolved and what challenges farmers face today.",
			}},
		},
		{
			Slug:  PageAnalysis,
			Title: "2. ANALYSIS",
			Sections: []Section{
				chartSection("Annual Average Temperature Evolution", ChartAnnualTemperature, "", caps.TempMean),
				chartSection("Annual Precipitation Evolution", ChartAnnualPrecipitation, "", caps.Precipitation),
				chartSection("Temperature Distribution Comparison", ChartTemperatureDistribution, "", caps.TempMean),
				chartSection("Monthly Temperature Heatmap", ChartMonthlyHeatmap, "", caps.TempMean),
				chartSection("Monthly Precipitation Distribution", ChartMonthlyPrecipitation, "", caps.Precipitation),
			},
		},
		{
			Slug:  PageInsights,
			Title: "3. INTERACTIVE INSIGHTS",
			Sections: []Section{
				chartSection("Annual Climate Profile", ChartAnnualProfile, "year", caps.TempMean),
				chartSection("Decadal Comparison", ChartDecadal, "variable", caps.TempMean && caps.Precipitation),
				chartSection("Seasonal Analysis", ChartSeasonal, "season", caps.TempMean || caps.Precipitation),
			},
		},
		{
			Slug:  PageConclusion,
			Title: "4. CONCLUSION",
			Sections: []Section{{
				Heading: "Implications & Agricultural Adaptation Strategies",
				Text: "For farmers, immediate adaptations are essential: selecting crops better " +
					"suited to warmer conditions, implementing robust irrigation systems to counter " +
					"irregular rainfall patterns, and modifying traditional planting and harvesting " +
					"schedules. Moving forward, three key actions are vital: maintaining vigilant " +
					"monitoring of climate trends, conducting field trials of adaptive farming " +
					"techniques, and fostering knowledge-sharing networks within farming communities.",
			}},
		},
	}

	for i := range pages {
		pages[i].Sections = compact(pages[i].Sections)
	}
	return pages
}

// PageBySlug returns the page with the given slug, or false.
func PageBySlug(caps dataset.Capabilities, slug string) (Page, bool) {
	for _, p := range Pages(caps) {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// chartSection returns a zero Section when the capability gate is closed;
// compact drops it.
func chartSection(heading, chartID, selectors string, enabled bool) Section {
	if !enabled {
		return Section{}
	}
	return Section{Heading: heading, ChartID: chartID, Selectors: selectors}
}

func compact(sections []Section) []Section {
	out := sections[:0]
	for _, s := range sections {
		if s != (Section{}) {
			out = append(out, s)
		}
	}
	return out
}
