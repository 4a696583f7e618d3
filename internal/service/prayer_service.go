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

type PrayerService struct {
	logsRepo repository.PrayerLogsRepositoryI
	timings  prayertimes.ProviderI
	clock    *dateutil.Clock
	start    dateutil.DateKey
}

func NewPrayerService(logsRepo repository.PrayerLogsRepositoryI, timings prayertimes.ProviderI, clock *dateutil.Clock, start dateutil.DateKey) *PrayerService {
	if logsRepo == nil || timings == nil || clock == nil {
		log.Fatal("on prayer service provided nil dependencies")
	}
	return &PrayerService{
		logsRepo: logsRepo,
		timings:  timings,
		clock:    clock,
		start:    start,
	}
}

func (ps *PrayerService) TodayLog(ctx context.Context, userID uuid.UUID) (*entity.PrayerLog, error) {
	plog, err := ps.logsRepo.GetOrCreate(ctx, userID, ps.clock.Today())
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return plog, nil
}

// checkEditable rejects mutations against non-today dates or outside the
// active window. Distinct sentinels keep the user-facing messages specific.
func (ps *PrayerService) checkEditable(date dateutil.DateKey) error {
	today := ps.clock.Today()
	state := ramadan.StateFor(today, ps.start)
	if !state.IsActive {
		return errorvalues.ErrRamadanInactive
	}
	if date != today {
		return errorvalues.ErrNotToday
	}
	return nil
}

func (ps *PrayerService) MarkPrayer(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, key string) (*entity.PrayerLog, error) {
	if !entity.ValidPrayerKey(key) {
		return nil, errorvalues.ErrInvalidPrayerKey
	}
	if err := ps.checkEditable(date); err != nil {
		return nil, err
	}
	plog, err := ps.logsRepo.GetOrCreate(ctx, userID, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if plog.IsClosed {
		return nil, errorvalues.ErrDayClosed
	}
	if plog.Done(key) {
		return nil, errorvalues.ErrAlreadyMarked
	}
	timings := ps.timings.FetchTimings(ctx, date)
	if !CanMarkPrayer(key, ps.clock.NowMinutes(), timings) {
		return nil, errorvalues.ErrPrayerTimeNotReached
	}
	err = ps.logsRepo.SetPrayer(ctx, userID, date, key, true)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	plog, err = ps.logsRepo.GetOrCreate(ctx, userID, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return plog, nil
}

// UnmarkPrayer serves the confirmed toggle-back flow. No time-window check:
// reverting a mark is allowed whenever the day is still open.
func (ps *PrayerService) UnmarkPrayer(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, key string) (*entity.PrayerLog, error) {
	if !entity.ValidPrayerKey(key) {
		return nil, errorvalues.ErrInvalidPrayerKey
	}
	if err := ps.checkEditable(date); err != nil {
		return nil, err
	}
	plog, err := ps.logsRepo.GetOrCreate(ctx, userID, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if plog.IsClosed {
		return nil, errorvalues.ErrDayClosed
	}
	if !plog.Done(key) {
		return nil, errorvalues.ErrNotMarked
	}
	err = ps.logsRepo.SetPrayer(ctx, userID, date, key, false)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	plog, err = ps.logsRepo.GetOrCreate(ctx, userID, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return plog, nil
}

func (ps *PrayerService) CloseDay(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) (*entity.PrayerLog, error) {
	if err := ps.checkEditable(date); err != nil {
		return nil, err
	}
	plog, err := ps.logsRepo.GetOrCreate(ctx, userID, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if plog.IsClosed {
		return nil, errorvalues.ErrDayClosed
	}
	if !plog.AllCompleted() {
		return nil, errorvalues.ErrDayNotComplete
	}
	err = ps.logsRepo.CloseDay(ctx, userID, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayClosed) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	plog.IsClosed = true
	return plog, nil
}
