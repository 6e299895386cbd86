// Package dataset loads the daily agroclimatic series and resolves its
// arbitrary source schema into canonical fields.
//
// Station exports name their columns inconsistently ("DATE" vs "AAAAMMJJ",
// "TX"/"TN" vs "Temp_Max"/"Temp_Min", "RR" vs "Pluviometrie"). The loader
// binds each canonical role to a source column, either from an explicit
// configuration override or by substring heuristics over the header, then
// derives the calendar fields (year, month, season) used as grouping keys by
// every chart.
package dataset

import (
	"sort"
	"time"
)

// EnrichedRecord is one day of the dataset after date parsing and column
// inference. Measurement fields are nil when the source schema had no
// recognizable column for them, or when the individual cell was blank or
// unparseable.
type EnrichedRecord struct {
	Date      time.Time `json:"date"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Day       int       `json:"day"`
	MonthName string    `json:"month_name"`
	Season    Season    `json:"season"`

	TempMean      *float64 `json:"temp_mean,omitempty"`
	TempMax       *float64 `json:"temp_max,omitempty"`
	TempMin       *float64 `json:"temp_min,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"`
}

// Capabilities reports which semantic fields the source schema could provide.
// The flags are fixed for the whole table; consumers must branch on them
// before reading the corresponding record fields.
type Capabilities struct {
	TempMean      bool `json:"temp_mean"`
	TempMax       bool `json:"temp_max"`
	TempMin       bool `json:"temp_min"`
	Precipitation bool `json:"precipitation"`
}

// Schema records the outcome of column inference: which source column was
// bound to each canonical role. TempMeanColumns holds two names when the
// mean is computed as the elementwise average of a min/max pair. Empty
// strings (or an empty slice) mean the role is unbound.
type Schema struct {
	DateColumn          string   `json:"date_column"`
	TempMeanColumns     []string `json:"temp_mean_columns,omitempty"`
	TempMaxColumn       string   `json:"temp_max_column,omitempty"`
	TempMinColumn       string   `json:"temp_min_column,omitempty"`
	PrecipitationColumn string   `json:"precipitation_column,omitempty"`
}

// Capabilities derives the capability flags from the bound roles.
func (s Schema) Capabilities() Capabilities {
	return Capabilities{
		TempMean:      len(s.TempMeanColumns) > 0,
		TempMax:       s.TempMaxColumn != "",
		TempMin:       s.TempMinColumn != "",
		Precipitation: s.PrecipitationColumn != "",
	}
}

// Table is the immutable enriched dataset. It is built once per process and
// shared read-only by every consumer; no field is mutated after Load returns.
type Table struct {
	Records      []EnrichedRecord
	Schema       Schema
	Capabilities Capabilities

	SourcePath  string
	Header      []string
	RowsLoaded  int
	RowsDropped int
	LoadedAt    time.Time
}

// Years returns the distinct calendar years present, ascending.
func (t *Table) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range t.Records {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	// Records are in file order, which for daily series is chronological,
	// but sort anyway so callers can rely on it.
	sort.Ints(years)
	return years
}

// YearRange returns the first and last calendar years, or (0, 0) for an
// empty table.
func (t *Table) YearRange() (first, last int) {
	years := t.Years()
	if len(years) == 0 {
		return 0, 0
	}
	return years[0], years[len(years)-1]
}
