package dataset

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Hint sets for heuristic role matching. All comparisons are done on the
// lowercased column name; header order decides ties (first match wins).
var (
	dateHints   = []string{"date", "time"}
	tempHints   = []string{"temp", "t_", "tx", "tn", "tg"}
	meanHints   = []string{"mean", "avg", "tg", "moy"}
	maxHints    = []string{"max", "tx"}
	minHints    = []string{"min", "tn"}
	precipHints = []string{"precip", "rain", "rr", "pluvio", "pluie"}
)

// Overrides pins canonical roles to explicit source columns. A non-empty
// override bypasses the heuristics for that role and it is an error if the
// named column is missing from the header. The zero value means full
// sniffing.
type Overrides struct {
	Date          string
	TempMean      string
	TempMax       string
	TempMin       string
	Precipitation string
}

// InferSchema resolves the canonical roles against a header row.
//
// Date: override, else the first column whose name contains "date" or
// "time", else the first column of the table.
//
// Temperature: all columns matching a temperature hint form the candidate
// set, in header order. The mean is the first candidate with a mean-like
// name; failing that, the average of the first two candidates (assumed to be
// a min/max pair); failing that, the single candidate. Max and min are the
// first candidates matching their own hint sets, searched independently of
// the mean selection.
//
// Precipitation: override, else the first column matching a precipitation
// hint. No matching column is not an error; the role stays unbound and the
// capability flag is false.
func InferSchema(header []string, ov Overrides) (Schema, error) {
	if len(header) == 0 {
		return Schema{}, eris.New("infer: empty header")
	}

	var s Schema

	dateCol, err := resolveOverride(header, ov.Date, "date")
	if err != nil {
		return Schema{}, err
	}
	if dateCol == "" {
		dateCol = firstMatching(header, dateHints)
	}
	if dateCol == "" {
		dateCol = header[0]
	}
	s.DateColumn = dateCol

	tempCols := allMatching(header, tempHints)

	meanCol, err := resolveOverride(header, ov.TempMean, "temp_mean")
	if err != nil {
		return Schema{}, err
	}
	switch {
	case meanCol != "":
		s.TempMeanColumns = []string{meanCol}
	case len(tempCols) > 0:
		if c := firstMatching(tempCols, meanHints); c != "" {
			s.TempMeanColumns = []string{c}
		} else if len(tempCols) >= 2 {
			s.TempMeanColumns = []string{tempCols[0], tempCols[1]}
		} else {
			s.TempMeanColumns = []string{tempCols[0]}
		}
	}

	s.TempMaxColumn, err = resolveOverride(header, ov.TempMax, "temp_max")
	if err != nil {
		return Schema{}, err
	}
	if s.TempMaxColumn == "" {
		s.TempMaxColumn = firstMatching(tempCols, maxHints)
	}

	s.TempMinColumn, err = resolveOverride(header, ov.TempMin, "temp_min")
	if err != nil {
		return Schema{}, err
	}
	if s.TempMinColumn == "" {
		s.TempMinColumn = firstMatching(tempCols, minHints)
	}

	s.PrecipitationColumn, err = resolveOverride(header, ov.Precipitation, "precipitation")
	if err != nil {
		return Schema{}, err
	}
	if s.PrecipitationColumn == "" {
		s.PrecipitationColumn = firstMatching(header, precipHints)
	}

	return s, nil
}

// resolveOverride validates that an override names an existing column.
// Returns "" when no override is set for the role.
func resolveOverride(header []string, override, role string) (string, error) {
	if override == "" {
		return "", nil
	}
	for _, col := range header {
		if col == override {
			return col, nil
		}
	}
	return "", eris.Errorf("infer: %s override %q not found in header", role, override)
}

// containsAny reports whether the lowercased name contains any hint.
func containsAny(name string, hints []string) bool {
	lower := strings.ToLower(name)
	for _, h := range hints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// firstMatching returns the first column matching any hint, or "".
func firstMatching(cols []string, hints []string) string {
	for _, col := range cols {
		if containsAny(col, hints) {
			return col
		}
	}
	return ""
}

// allMatching returns every column matching any hint, preserving order.
func allMatching(cols []string, hints []string) []string {
	var out []string
	for _, col := range cols {
		if containsAny(col, hints) {
			out = append(out, col)
		}
	}
	return out
}
