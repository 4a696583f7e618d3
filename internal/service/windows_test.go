package service_test

import (
	"testing"

	"github.com/ramadanuz/taqvo/internal/prayertimes"
	"github.com/ramadanuz/taqvo/internal/ramadan"
	"github.com/ramadanuz/taqvo/internal/service"
	"github.com/ramadanuz/taqvo/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func dayTimings() prayertimes.Timings {
	return prayertimes.Timings{
		Date:    "2026-03-01",
		Fajr:    "05:10",
		Dhuhr:   "12:30",
		Asr:     "16:00",
		Maghrib: "18:20",
		Isha:    "19:40",
	}
}

func TestCanMarkPrayer(t *testing.T) {
	timings := dayTimings()
	cases := []struct {
		Desc       string
		Key        string
		NowMinutes int
		Allowed    bool
	}{
		{Desc: "minute before fajr denied", Key: entity.PrayerFajr, NowMinutes: 5*60 + 9, Allowed: false},
		{Desc: "exactly at fajr allowed", Key: entity.PrayerFajr, NowMinutes: 5*60 + 10, Allowed: true},
		{Desc: "well past isha allowed", Key: entity.PrayerIsha, NowMinutes: 23 * 60, Allowed: true},
		{Desc: "asr before asr time denied", Key: entity.PrayerAsr, NowMinutes: 12 * 60, Allowed: false},
	}
	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			assert.Equal(t, c.Allowed, service.CanMarkPrayer(c.Key, c.NowMinutes, timings))
		})
	}
	t.Run("unknown timing always denies", func(t *testing.T) {
		assert.False(t, service.CanMarkPrayer(entity.PrayerFajr, 23*60, prayertimes.Unavailable("2026-03-01")))
	})
}

func TestCanCompleteFast(t *testing.T) {
	timings := dayTimings()
	t.Run("before fajr denied", func(t *testing.T) {
		assert.False(t, service.CanCompleteFast(5*60+9, timings))
	})
	t.Run("exactly at fajr allowed", func(t *testing.T) {
		assert.True(t, service.CanCompleteFast(5*60+10, timings))
	})
	t.Run("minute before maghrib allowed", func(t *testing.T) {
		assert.True(t, service.CanCompleteFast(18*60+19, timings))
	})
	t.Run("exactly at maghrib denied", func(t *testing.T) {
		assert.False(t, service.CanCompleteFast(18*60+20, timings))
	})
	t.Run("unknown timings deny", func(t *testing.T) {
		assert.False(t, service.CanCompleteFast(12*60, prayertimes.Unavailable("2026-03-01")))
	})
}

func TestCanEditDate(t *testing.T) {
	active := ramadan.State{DayNumber: 10, IsActive: true}
	finished := ramadan.State{DayNumber: 31, IsFinished: true}
	assert.True(t, service.CanEditDate("2026-03-01", "2026-03-01", active))
	assert.False(t, service.CanEditDate("2026-02-28", "2026-03-01", active))
	assert.False(t, service.CanEditDate("2026-03-02", "2026-03-01", active))
	assert.False(t, service.CanEditDate("2026-03-20", "2026-03-20", finished))
}
