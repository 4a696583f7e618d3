package errorvalues

import "errors"

// Store-level sentinels.
var (
	ErrUserNotFound    = errors.New("user doesn't exist")
	ErrWebUserExists   = errors.New("such web user already exists")
	ErrWebUserNotFound = errors.New("web user doesn't exist")
	ErrLogNotFound     = errors.New("prayer log doesn't exist")
	ErrDayNotFound     = errors.New("ramadan day doesn't exist")
)

// Policy violations: the action is rejected by timing or state rules, not by
// a system fault. Each maps to a user-facing message in the bot and api layers.
var (
	ErrRamadanInactive      = errors.New("ramadan is not active")
	ErrNotToday             = errors.New("only today's record can be edited")
	ErrInvalidPrayerKey     = errors.New("unknown prayer key")
	ErrInvalidStatus        = errors.New("invalid fasting status")
	ErrPrayerTimeNotReached = errors.New("prayer time has not come yet")
	ErrOutsideFastWindow    = errors.New("fasting can be confirmed only between fajr and maghrib")
	ErrAlreadyMarked        = errors.New("prayer is already marked")
	ErrNotMarked            = errors.New("prayer is not marked")
	ErrDayClosed            = errors.New("day is already closed")
	ErrDayNotComplete       = errors.New("all five prayers must be marked before closing the day")
	ErrStatusFinal          = errors.New("fasting status is already final")
)

var (
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
)
