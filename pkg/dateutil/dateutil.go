package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// DateKey is a calendar date in YYYY-MM-DD form, independent of time of day.
// Keys compare lexicographically in chronological order.
type DateKey string

const Layout = "2006-01-02"

// MinutesPerDay bounds NowMinutes and parsed clock values.
const MinutesPerDay = 24 * 60

// LoadZone resolves an IANA timezone name. Invalid names are a boot-time error.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, errors.New("timezone name is empty")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.New("resolving timezone error: " + err.Error())
	}
	return loc, nil
}

// ParseDateKey validates a YYYY-MM-DD string.
func ParseDateKey(value string) (DateKey, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return "", errors.New("parsing date key error: " + err.Error())
	}
	return DateKey(t.Format(Layout)), nil
}

// Clock resolves "now" in a fixed timezone. The time source is injectable
// so date and minute resolution stay deterministic in tests.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

func NewClock(loc *time.Location) *Clock {
	return &Clock{now: time.Now, loc: loc}
}

func NewClockAt(now func() time.Time, loc *time.Location) *Clock {
	return &Clock{now: now, loc: loc}
}

// Today returns the calendar date currently observed in the clock's zone,
// independent of the host machine's local zone.
func (c *Clock) Today() DateKey {
	return DateKey(c.now().In(c.loc).Format(Layout))
}

// NowMinutes returns minutes since midnight in the clock's zone, in [0, 1440).
func (c *Clock) NowMinutes() int {
	t := c.now().In(c.loc)
	return t.Hour()*60 + t.Minute()
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// AddDays shifts a date key by whole days, anchored at midnight UTC so that
// DST transitions never shift the result. Invalid keys are returned unchanged.
func AddDays(key DateKey, days int) DateKey {
	t, err := time.Parse(Layout, string(key))
	if err != nil {
		return key
	}
	return DateKey(t.AddDate(0, 0, days).Format(Layout))
}

// DayDiff returns the whole-day distance from one date key to another,
// anchored at midnight UTC. Invalid keys yield zero.
func DayDiff(from, to DateKey) int {
	f, err := time.Parse(Layout, string(from))
	if err != nil {
		return 0
	}
	t, err := time.Parse(Layout, string(to))
	if err != nil {
		return 0
	}
	return int(t.Sub(f) / (24 * time.Hour))
}

// ParseClock converts an HH:MM clock-of-day string to minutes since midnight.
// Trailing tokens after the first space (timezone annotations and the like)
// are discarded. Malformed values, including the "--:--" sentinel, report
// false rather than zero.
func ParseClock(value string) (int, bool) {
	clock, _, _ := strings.Cut(value, " ")
	hourText, minuteText, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
