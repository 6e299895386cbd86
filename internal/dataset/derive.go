package dataset

import "time"

// Season is a quarter of the meteorological year, derived purely from the
// calendar month.
type Season string

const (
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
)

// Seasons lists the four seasons in display order.
var Seasons = []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall}

// SeasonOf maps a month to its season: Dec/Jan/Feb winter, Mar/Apr/May
// spring, Jun/Jul/Aug summer, Sep/Oct/Nov fall.
func SeasonOf(m time.Month) Season {
	switch m {
	case time.December, time.January, time.February:
		return SeasonWinter
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	default:
		return SeasonFall
	}
}

// ValidSeason reports whether s is one of the four season labels.
func ValidSeason(s Season) bool {
	switch s {
	case SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall:
		return true
	}
	return false
}

// Period is the two-era comparison bucket used by the distribution charts.
type Period string

const (
	PeriodEarly  Period = "1989-2004"
	PeriodRecent Period = "2005-2024"
)

// periodSplitYear is the last year of the early era.
const periodSplitYear = 2004

// PeriodOf buckets a year into the early or recent era.
func PeriodOf(year int) Period {
	if year <= periodSplitYear {
		return PeriodEarly
	}
	return PeriodRecent
}

// DecadeOf truncates a year to its decade (1993 -> 1990).
func DecadeOf(year int) int {
	return year / 10 * 10
}

// enrich fills the calendar fields derived from a parsed date.
func enrich(date time.Time) EnrichedRecord {
	return EnrichedRecord{
		Date:      date,
		Year:      date.Year(),
		Month:     int(date.Month()),
		Day:       date.Day(),
		MonthName: date.Month().String(),
		Season:    SeasonOf(date.Month()),
	}
}
