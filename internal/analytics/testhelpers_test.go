package analytics

import (
	"time"

	"github.com/agroclim/climate-cli/internal/dataset"
)

func fp(v float64) *float64 { return &v }

// day builds one enriched record with the calendar fields derived from the
// date, the way the loader would.
func day(y int, m time.Month, d int, temp, precip *float64) dataset.EnrichedRecord {
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return dataset.EnrichedRecord{
		Date:          date,
		Year:          y,
		Month:         int(m),
		Day:           d,
		MonthName:     m.String(),
		Season:        dataset.SeasonOf(m),
		TempMean:      temp,
		Precipitation: precip,
	}
}

func tableOf(records ...dataset.EnrichedRecord) *dataset.Table {
	return &dataset.Table{Records: records}
}
