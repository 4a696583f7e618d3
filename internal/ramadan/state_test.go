package ramadan_test

import (
	"testing"

	"github.com/ramadanuz/taqvo/internal/ramadan"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/stretchr/testify/assert"
)

const start = dateutil.DateKey("2026-02-18")

func TestStateFor(t *testing.T) {
	cases := []struct {
		Desc      string
		Date      dateutil.DateKey
		DayNumber int
		Active    bool
	}{
		{Desc: "day before start", Date: "2026-02-17", DayNumber: 0},
		{Desc: "start date is day one", Date: "2026-02-18", DayNumber: 1, Active: true},
		{Desc: "mid window", Date: "2026-03-01", DayNumber: 12, Active: true},
		{Desc: "last day", Date: "2026-03-19", DayNumber: 30, Active: true},
		{Desc: "day after last", Date: "2026-03-20", DayNumber: 31},
	}
	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			state := ramadan.StateFor(c.Date, start)
			assert.Equal(t, c.DayNumber, state.DayNumber)
			assert.Equal(t, c.Active, state.IsActive)
		})
	}
}

func TestStateTrichotomy(t *testing.T) {
	// Exactly one of the three flags must hold for any date.
	date := dateutil.DateKey("2026-01-01")
	for i := 0; i < 120; i++ {
		state := ramadan.StateFor(date, start)
		count := 0
		for _, flag := range []bool{state.IsNotStarted, state.IsActive, state.IsFinished} {
			if flag {
				count++
			}
		}
		assert.Equalf(t, 1, count, "date %s", date)
		date = dateutil.AddDays(date, 1)
	}
}

func TestWindowEnd(t *testing.T) {
	assert.Equal(t, dateutil.DateKey("2026-03-19"), ramadan.WindowEnd(start))
}

func TestWithinRange(t *testing.T) {
	assert.False(t, ramadan.WithinRange("2026-02-17", start))
	assert.True(t, ramadan.WithinRange("2026-02-18", start))
	assert.True(t, ramadan.WithinRange("2026-03-19", start))
	assert.False(t, ramadan.WithinRange("2026-03-20", start))
}
