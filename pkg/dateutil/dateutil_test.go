package dateutil_test

import (
	"testing"
	"time"

	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/stretchr/testify/assert"
)

func TestParseDateKey(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		key, err := dateutil.ParseDateKey("2026-02-18")
		assert.NoError(t, err)
		assert.Equal(t, dateutil.DateKey("2026-02-18"), key)
	})
	t.Run("rejects non-calendar date", func(t *testing.T) {
		_, err := dateutil.ParseDateKey("2026-02-30")
		assert.Error(t, err)
	})
	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := dateutil.ParseDateKey("18-02-2026")
		assert.Error(t, err)
	})
}

func TestAddDays(t *testing.T) {
	cases := []struct {
		Desc     string
		Key      dateutil.DateKey
		Days     int
		Expected dateutil.DateKey
	}{
		{Desc: "forward over month boundary", Key: "2026-02-27", Days: 3, Expected: "2026-03-02"},
		{Desc: "backward one day", Key: "2026-03-01", Days: -1, Expected: "2026-02-28"},
		{Desc: "zero is identity", Key: "2026-02-18", Days: 0, Expected: "2026-02-18"},
		{Desc: "invalid key unchanged", Key: "garbage", Days: 5, Expected: "garbage"},
	}
	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			assert.Equal(t, c.Expected, dateutil.AddDays(c.Key, c.Days))
		})
	}
}

func TestDayDiff(t *testing.T) {
	assert.Equal(t, 0, dateutil.DayDiff("2026-02-18", "2026-02-18"))
	assert.Equal(t, 29, dateutil.DayDiff("2026-02-18", "2026-03-19"))
	assert.Equal(t, -1, dateutil.DayDiff("2026-02-18", "2026-02-17"))
	assert.Equal(t, 0, dateutil.DayDiff("oops", "2026-02-18"))
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		Desc    string
		Value   string
		Minutes int
		OK      bool
	}{
		{Desc: "plain clock", Value: "05:07", Minutes: 307, OK: true},
		{Desc: "midnight", Value: "00:00", Minutes: 0, OK: true},
		{Desc: "last minute", Value: "23:59", Minutes: 1439, OK: true},
		{Desc: "timezone annotation discarded", Value: "18:42 (+05)", Minutes: 1122, OK: true},
		{Desc: "unknown sentinel rejected", Value: "--:--", OK: false},
		{Desc: "hour out of range", Value: "24:00", OK: false},
		{Desc: "minute out of range", Value: "10:60", OK: false},
		{Desc: "no separator", Value: "1842", OK: false},
		{Desc: "empty", Value: "", OK: false},
	}
	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			minutes, ok := dateutil.ParseClock(c.Value)
			assert.Equal(t, c.OK, ok)
			if c.OK {
				assert.Equal(t, c.Minutes, minutes)
			}
		})
	}
}

func TestClock(t *testing.T) {
	tashkent, err := dateutil.LoadZone("Asia/Tashkent")
	if err != nil {
		t.Fatal(err)
	}
	// 23:30 UTC on the 17th is already the 18th in Tashkent (UTC+5).
	moment := time.Date(2026, 2, 17, 23, 30, 0, 0, time.UTC)
	clock := dateutil.NewClockAt(func() time.Time { return moment }, tashkent)

	assert.Equal(t, dateutil.DateKey("2026-02-18"), clock.Today())
	assert.Equal(t, 4*60+30, clock.NowMinutes())
	assert.Equal(t, tashkent, clock.Location())
}

func TestLoadZone(t *testing.T) {
	_, err := dateutil.LoadZone("")
	assert.Error(t, err)
	_, err = dateutil.LoadZone("Narnia/Lantern")
	assert.Error(t, err)
	loc, err := dateutil.LoadZone("UTC")
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
