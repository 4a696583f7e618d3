package service

import (
	"github.com/ramadanuz/taqvo/internal/prayertimes"
	"github.com/ramadanuz/taqvo/internal/ramadan"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
)

// Action window guard: pure permission checks shared by the bot, the api and
// the scheduler. Unknown timings always deny.

// CanMarkPrayer permits marking once the prayer's start time has been
// reached. The lower bound is inclusive.
func CanMarkPrayer(key string, nowMinutes int, timings prayertimes.Timings) bool {
	start, ok := dateutil.ParseClock(timings.ForPrayer(key))
	if !ok {
		return false
	}
	return nowMinutes >= start
}

// CanCompleteFast permits confirming a full-day fast between fajr (inclusive)
// and maghrib (exclusive). The instant of maghrib itself is already outside
// the fast.
func CanCompleteFast(nowMinutes int, timings prayertimes.Timings) bool {
	fajr, okFajr := dateutil.ParseClock(timings.Fajr)
	maghrib, okMaghrib := dateutil.ParseClock(timings.Maghrib)
	if !okFajr || !okMaghrib {
		return false
	}
	return nowMinutes >= fajr && nowMinutes < maghrib
}

// CanEditDate permits mutations only against today's record while Ramadan is
// active. Anything else is a policy violation, not a data error.
func CanEditDate(date, today dateutil.DateKey, state ramadan.State) bool {
	return state.IsActive && date == today
}
