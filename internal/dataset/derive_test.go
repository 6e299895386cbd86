package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonOf(t *testing.T) {
	t.Parallel()

	want := map[time.Month]Season{
		time.January:   SeasonWinter,
		time.February:  SeasonWinter,
		time.March:     SeasonSpring,
		time.April:     SeasonSpring,
		time.May:       SeasonSpring,
		time.June:      SeasonSummer,
		time.July:      SeasonSummer,
		time.August:    SeasonSummer,
		time.September: SeasonFall,
		time.October:   SeasonFall,
		time.November:  SeasonFall,
		time.December:  SeasonWinter,
	}
	for m, season := range want {
		assert.Equal(t, season, SeasonOf(m), m.String())
	}
}

func TestValidSeason(t *testing.T) {
	t.Parallel()

	for _, s := range Seasons {
		assert.True(t, ValidSeason(s))
	}
	assert.False(t, ValidSeason("Autumn"))
	assert.False(t, ValidSeason(""))
}

func TestPeriodOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PeriodEarly, PeriodOf(1989))
	assert.Equal(t, PeriodEarly, PeriodOf(2004))
	assert.Equal(t, PeriodRecent, PeriodOf(2005))
	assert.Equal(t, PeriodRecent, PeriodOf(2024))
}

func TestDecadeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1990, DecadeOf(1993))
	assert.Equal(t, 1990, DecadeOf(1990))
	assert.Equal(t, 2020, DecadeOf(2024))
}

func TestEnrich(t *testing.T) {
	t.Parallel()

	rec := enrich(time.Date(2020, time.July, 14, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2020, rec.Year)
	assert.Equal(t, 7, rec.Month)
	assert.Equal(t, 14, rec.Day)
	assert.Equal(t, "July", rec.MonthName)
	assert.Equal(t, SeasonSummer, rec.Season)
}
