package chartspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroclim/climate-cli/internal/dataset"
)

func fullCaps() dataset.Capabilities {
	return dataset.Capabilities{TempMean: true, TempMax: true, TempMin: true, Precipitation: true}
}

func chartIDs(p Page) []string {
	var ids []string
	for _, s := range p.Sections {
		if s.ChartID != "" {
			ids = append(ids, s.ChartID)
		}
	}
	return ids
}

func TestPages_FullCapabilities(t *testing.T) {
	t.Parallel()

	pages := Pages(fullCaps())
	require.Len(t, pages, 4)
	assert.Equal(t, "1. THE PROBLEM", pages[0].Title)
	assert.Equal(t, "2. ANALYSIS", pages[1].Title)
	assert.Equal(t, "3. INTERACTIVE INSIGHTS", pages[2].Title)
	assert.Equal(t, "4. CONCLUSION", pages[3].Title)

	assert.Equal(t, []string{
		ChartAnnualTemperature,
		ChartAnnualPrecipitation,
		ChartTemperatureDistribution,
		ChartMonthlyHeatmap,
		ChartMonthlyPrecipitation,
	}, chartIDs(pages[1]))
	assert.Equal(t, []string{ChartAnnualProfile, ChartDecadal, ChartSeasonal}, chartIDs(pages[2]))
}

func TestPages_TemperatureOnly(t *testing.T) {
	t.Parallel()

	pages := Pages(dataset.Capabilities{TempMean: true})

	assert.Equal(t, []string{
		ChartAnnualTemperature,
		ChartTemperatureDistribution,
		ChartMonthlyHeatmap,
	}, chartIDs(pages[1]))
	// Decadal needs both variables; seasonal works with either.
	assert.Equal(t, []string{ChartAnnualProfile, ChartSeasonal}, chartIDs(pages[2]))
}

func TestPages_NoCapabilities(t *testing.T) {
	t.Parallel()

	pages := Pages(dataset.Capabilities{})
	require.Len(t, pages, 4)
	assert.Empty(t, pages[1].Sections)
	assert.Empty(t, pages[2].Sections)
	// The narrative pages survive without any data capabilities.
	assert.NotEmpty(t, pages[0].Sections)
	assert.NotEmpty(t, pages[3].Sections)
}

func TestPageBySlug(t *testing.T) {
	t.Parallel()

	p, ok := PageBySlug(fullCaps(), PageInsights)
	require.True(t, ok)
	assert.Equal(t, PageInsights, p.Slug)

	_, ok = PageBySlug(fullCaps(), "appendix")
	assert.False(t, ok)
}
