package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ramadanuz/taqvo/pkg/dateutil"
)

type FastingStatus string

const (
	StatusPending   FastingStatus = "pending"
	StatusCompleted FastingStatus = "completed"
	StatusMissed    FastingStatus = "missed"
)

func (s FastingStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusMissed
}

// Terminal reports whether a status no longer changes on its own. Only the
// explicit toggle-back flow reverts a terminal status to pending.
func (s FastingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusMissed
}

const (
	PrayerFajr    = "fajr"
	PrayerDhuhr   = "dhuhr"
	PrayerAsr     = "asr"
	PrayerMaghrib = "maghrib"
	PrayerIsha    = "isha"
)

// PrayerKeys lists the five daily prayers in chronological order.
var PrayerKeys = []string{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

func ValidPrayerKey(key string) bool {
	for _, k := range PrayerKeys {
		if k == key {
			return true
		}
	}
	return false
}

// User is a bot user, created on first interaction and refreshed on every
// later one. Never deleted by this service.
type User struct {
	ID               uuid.UUID `json:"id"`
	TelegramID       int64     `json:"telegram_id"`
	Username         string    `json:"username"`
	City             string    `json:"city"`
	RemindersEnabled bool      `json:"reminders_enabled"`
	CreatedAt        time.Time `json:"created_at"`
}

// WebUser is a dashboard account linked to a bot user by telegram id.
type WebUser struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	TelegramID   int64
}

// PrayerLog holds the five completion flags for one user and one date.
// At most one log exists per (user, date).
type PrayerLog struct {
	ID       int64            `json:"-"`
	UserID   uuid.UUID        `json:"uid"`
	Date     dateutil.DateKey `json:"date"`
	Fajr     bool             `json:"fajr"`
	Dhuhr    bool             `json:"dhuhr"`
	Asr      bool             `json:"asr"`
	Maghrib  bool             `json:"maghrib"`
	Isha     bool             `json:"isha"`
	IsClosed bool             `json:"is_closed"`
}

func (l *PrayerLog) Done(key string) bool {
	switch key {
	case PrayerFajr:
		return l.Fajr
	case PrayerDhuhr:
		return l.Dhuhr
	case PrayerAsr:
		return l.Asr
	case PrayerMaghrib:
		return l.Maghrib
	case PrayerIsha:
		return l.Isha
	}
	return false
}

func (l *PrayerLog) CompletedCount() int {
	count := 0
	for _, key := range PrayerKeys {
		if l.Done(key) {
			count++
		}
	}
	return count
}

// AllCompleted reports whether the day may be closed.
func (l *PrayerLog) AllCompleted() bool {
	return l.CompletedCount() == len(PrayerKeys)
}

// RamadanDay is the fasting record for one user and one date. DayNumber is
// always what the state calculator derives for the date, never stored apart
// from it. At most one record exists per (user, date).
type RamadanDay struct {
	ID        int64            `json:"-"`
	UserID    uuid.UUID        `json:"uid"`
	Date      dateutil.DateKey `json:"date"`
	DayNumber int              `json:"day_number"`
	Status    FastingStatus    `json:"status"`
}

type FastingStats struct {
	Completed        int `json:"completed"`
	Missed           int `json:"missed"`
	Pending          int `json:"pending"`
	ClosedPrayerDays int `json:"closed_prayer_days"`
}
