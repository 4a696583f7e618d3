package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/internal/prayertimes"
	"github.com/ramadanuz/taqvo/internal/ramadan"
	"github.com/ramadanuz/taqvo/internal/repository"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

// CalendarDay is one cell of the 30-day grid rendered by the bot and the
// dashboard.
type CalendarDay struct {
	DayNumber int    `json:"day_number"`
	Emoji     string `json:"emoji"`
	Callback  string `json:"callback"`
}

type CalendarView struct {
	Days           []CalendarDay `json:"days"`
	TodayDayNumber int           `json:"today_day_number"`
	IsActive       bool          `json:"is_active"`
}

type RamadanService struct {
	daysRepo repository.RamadanDaysRepositoryI
	logsRepo repository.PrayerLogsRepositoryI
	timings  prayertimes.ProviderI
	clock    *dateutil.Clock
	start    dateutil.DateKey
}

func NewRamadanService(daysRepo repository.RamadanDaysRepositoryI, logsRepo repository.PrayerLogsRepositoryI, timings prayertimes.ProviderI, clock *dateutil.Clock, start dateutil.DateKey) *RamadanService {
	if daysRepo == nil || logsRepo == nil || timings == nil || clock == nil {
		log.Fatal("on ramadan service provided nil dependencies")
	}
	return &RamadanService{
		daysRepo: daysRepo,
		logsRepo: logsRepo,
		timings:  timings,
		clock:    clock,
		start:    start,
	}
}

func (rs *RamadanService) TodayState() ramadan.State {
	return ramadan.StateFor(rs.clock.Today(), rs.start)
}

func (rs *RamadanService) StateFor(date dateutil.DateKey) ramadan.State {
	return ramadan.StateFor(date, rs.start)
}

// EnsureDay provisions the fasting record for (user, date). Outside the
// active window it returns nil without touching the store. The upsert is
// idempotent: concurrent calls settle on one record and an existing
// non-pending status survives.
func (rs *RamadanService) EnsureDay(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) (*entity.RamadanDay, error) {
	state := ramadan.StateFor(date, rs.start)
	if !state.IsActive {
		return nil, nil
	}
	day, err := rs.daysRepo.Upsert(ctx, userID, date, state.DayNumber)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return day, nil
}

func (rs *RamadanService) UpdateTodayStatus(ctx context.Context, userID uuid.UUID, status entity.FastingStatus) (*entity.RamadanDay, error) {
	if !status.Terminal() {
		return nil, errorvalues.ErrInvalidStatus
	}
	today := rs.clock.Today()
	state := ramadan.StateFor(today, rs.start)
	if !state.IsActive {
		return nil, errorvalues.ErrRamadanInactive
	}
	day, err := rs.EnsureDay(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if day.Status.Terminal() {
		if day.Status == status {
			return day, nil
		}
		return nil, errorvalues.ErrStatusFinal
	}
	if status == entity.StatusCompleted {
		timings := rs.timings.FetchTimings(ctx, today)
		if !CanCompleteFast(rs.clock.NowMinutes(), timings) {
			return nil, errorvalues.ErrOutsideFastWindow
		}
	}
	err = rs.daysRepo.UpdateStatus(ctx, userID, today, status)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	day.Status = status
	return day, nil
}

// ResetTodayStatus serves the explicit toggle-back flow: it reverts today's
// terminal status to pending after the user confirmed the revert.
func (rs *RamadanService) ResetTodayStatus(ctx context.Context, userID uuid.UUID) (*entity.RamadanDay, error) {
	today := rs.clock.Today()
	state := ramadan.StateFor(today, rs.start)
	if !state.IsActive {
		return nil, errorvalues.ErrRamadanInactive
	}
	day, err := rs.daysRepo.Get(ctx, userID, today)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if day.Status == entity.StatusPending {
		return day, nil
	}
	err = rs.daysRepo.UpdateStatus(ctx, userID, today, entity.StatusPending)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	day.Status = entity.StatusPending
	return day, nil
}

// SweepMissed transitions every still-pending record of the date to missed.
// Dates outside the window report zero modifications without store access.
func (rs *RamadanService) SweepMissed(ctx context.Context, date dateutil.DateKey) (int64, error) {
	state := ramadan.StateFor(date, rs.start)
	if !state.IsActive {
		return 0, nil
	}
	modified, err := rs.daysRepo.SweepMissed(ctx, date)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return modified, nil
}

const (
	emojiCompleted = "✅"
	emojiMissed    = "❌"
	emojiUntracked = "⬜"
	emojiToday     = "🟡"
	emojiLocked    = "🔒"
)

// Calendar renders the 30-day grid. Past days show their stored status,
// today carries the cursor, future days stay locked.
func (rs *RamadanService) Calendar(ctx context.Context, userID uuid.UUID) (*CalendarView, error) {
	stateToday := rs.TodayState()

	entries, err := rs.daysRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	statusByDate := make(map[dateutil.DateKey]entity.FastingStatus, len(entries))
	for _, entry := range entries {
		statusByDate[entry.Date] = entry.Status
	}

	days := make([]CalendarDay, 0, ramadan.TotalDays)
	for dayNumber := 1; dayNumber <= ramadan.TotalDays; dayNumber++ {
		day := CalendarDay{DayNumber: dayNumber, Emoji: emojiLocked, Callback: "locked"}

		isPast := (stateToday.IsActive && dayNumber < stateToday.DayNumber) || stateToday.IsFinished
		switch {
		case stateToday.IsNotStarted:
			// keep locked
		case isPast:
			dayDate := dateutil.AddDays(rs.start, dayNumber-1)
			switch statusByDate[dayDate] {
			case entity.StatusCompleted:
				day.Emoji = emojiCompleted
			case entity.StatusMissed:
				day.Emoji = emojiMissed
			default:
				day.Emoji = emojiUntracked
			}
			day.Callback = "calendar:past"
		case stateToday.IsActive && dayNumber == stateToday.DayNumber:
			day.Emoji = emojiToday
			day.Callback = "calendar:today"
		}
		days = append(days, day)
	}

	return &CalendarView{
		Days:           days,
		TodayDayNumber: stateToday.DayNumber,
		IsActive:       stateToday.IsActive,
	}, nil
}

func (rs *RamadanService) Stats(ctx context.Context, userID uuid.UUID) (*entity.FastingStats, error) {
	stats := entity.FastingStats{}
	var err error
	stats.Completed, err = rs.daysRepo.CountByStatus(ctx, userID, entity.StatusCompleted)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	stats.Missed, err = rs.daysRepo.CountByStatus(ctx, userID, entity.StatusMissed)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	stats.Pending, err = rs.daysRepo.CountByStatus(ctx, userID, entity.StatusPending)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	stats.ClosedPrayerDays, err = rs.logsRepo.CountClosedDays(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &stats, nil
}
