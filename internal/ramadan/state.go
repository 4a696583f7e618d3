package ramadan

import (
	"github.com/ramadanuz/taqvo/pkg/dateutil"
)

// TotalDays is the fixed lunar-month length used by the tracker. The whole
// window size hangs off this single constant.
const TotalDays = 30

// State describes where a calendar date sits relative to the Ramadan window.
// Exactly one of IsNotStarted, IsActive, IsFinished holds for any input.
type State struct {
	DayNumber    int  `json:"day_number"`
	IsActive     bool `json:"is_active"`
	IsNotStarted bool `json:"is_not_started"`
	IsFinished   bool `json:"is_finished"`
}

// StateFor maps a date to its Ramadan day number and activity status.
// Day one is the configured start date itself. Pure function, no I/O.
func StateFor(date, start dateutil.DateKey) State {
	dayNumber := dateutil.DayDiff(start, date) + 1
	return State{
		DayNumber:    dayNumber,
		IsActive:     dayNumber >= 1 && dayNumber <= TotalDays,
		IsNotStarted: dayNumber < 1,
		IsFinished:   dayNumber > TotalDays,
	}
}

// WindowEnd is the last date inside the Ramadan window.
func WindowEnd(start dateutil.DateKey) dateutil.DateKey {
	return dateutil.AddDays(start, TotalDays-1)
}

// WithinRange reports whether a date falls inside [start, WindowEnd].
// Date keys compare lexicographically in chronological order.
func WithinRange(date, start dateutil.DateKey) bool {
	return date >= start && date <= WindowEnd(start)
}
