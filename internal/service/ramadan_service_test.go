package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/internal/repository/mocks"
	"github.com/ramadanuz/taqvo/internal/service"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func pendingDay(uid uuid.UUID, date dateutil.DateKey, dayNumber int) *entity.RamadanDay {
	return &entity.RamadanDay{ID: 1, UserID: uid, Date: date, DayNumber: dayNumber, Status: entity.StatusPending}
}

func newRamadanService(t *testing.T) (*service.RamadanService, *mocks.MockRamadanDaysRepositoryI, *mocks.MockPrayerLogsRepositoryI) {
	ctrl := gomock.NewController(t)
	daysRepo := mocks.NewMockRamadanDaysRepositoryI(ctrl)
	logsRepo := mocks.NewMockPrayerLogsRepositoryI(ctrl)
	serv := service.NewRamadanService(daysRepo, logsRepo, stubProvider{timings: dayTimings()}, noonClock(), testStart)
	return serv, daysRepo, logsRepo
}

func TestTodayState(t *testing.T) {
	t.Parallel()
	serv, _, _ := newRamadanService(t)
	state := serv.TodayState()
	assert.True(t, state.IsActive)
	assert.Equal(t, 12, state.DayNumber)
}

func TestEnsureDay(t *testing.T) {
	t.Parallel()
	serv, daysRepo, _ := newRamadanService(t)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("provisioned inside window", func(t *testing.T) {
		daysRepo.EXPECT().Upsert(gomock.Any(), uid, testToday, 12).Return(pendingDay(uid, testToday, 12), nil)
		day, err := serv.EnsureDay(ctx, uid, testToday)
		assert.NoError(t, err)
		assert.Equal(t, 12, day.DayNumber)
		assert.Equal(t, entity.StatusPending, day.Status)
	})
	t.Run("nil outside window without store access", func(t *testing.T) {
		day, err := serv.EnsureDay(ctx, uid, "2026-05-01")
		assert.NoError(t, err)
		assert.Nil(t, day)
	})
}

func TestUpdateTodayStatus(t *testing.T) {
	t.Parallel()
	serv, daysRepo, _ := newRamadanService(t)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Status       entity.FastingStatus
		Expected     entity.FastingStatus
		MockPrepFunc func()
	}{
		{
			Desc:     "completed within fast window",
			Error:    nil,
			Status:   entity.StatusCompleted,
			Expected: entity.StatusCompleted,
			MockPrepFunc: func() {
				daysRepo.EXPECT().Upsert(gomock.Any(), uid, testToday, 12).Return(pendingDay(uid, testToday, 12), nil)
				daysRepo.EXPECT().UpdateStatus(gomock.Any(), uid, testToday, entity.StatusCompleted).Return(nil)
			},
		},
		{
			Desc:     "missed needs no window",
			Error:    nil,
			Status:   entity.StatusMissed,
			Expected: entity.StatusMissed,
			MockPrepFunc: func() {
				daysRepo.EXPECT().Upsert(gomock.Any(), uid, testToday, 12).Return(pendingDay(uid, testToday, 12), nil)
				daysRepo.EXPECT().UpdateStatus(gomock.Any(), uid, testToday, entity.StatusMissed).Return(nil)
			},
		},
		{
			Desc:     "same terminal status is idempotent",
			Error:    nil,
			Status:   entity.StatusCompleted,
			Expected: entity.StatusCompleted,
			MockPrepFunc: func() {
				day := pendingDay(uid, testToday, 12)
				day.Status = entity.StatusCompleted
				daysRepo.EXPECT().Upsert(gomock.Any(), uid, testToday, 12).Return(day, nil)
			},
		},
		{
			Desc:   "error conflicting terminal status",
			Error:  errorvalues.ErrStatusFinal,
			Status: entity.StatusMissed,
			MockPrepFunc: func() {
				day := pendingDay(uid, testToday, 12)
				day.Status = entity.StatusCompleted
				daysRepo.EXPECT().Upsert(gomock.Any(), uid, testToday, 12).Return(day, nil)
			},
		},
		{
			Desc:         "error pending is not terminal",
			Error:        errorvalues.ErrInvalidStatus,
			Status:       entity.StatusPending,
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			day, err := serv.UpdateTodayStatus(ctx, uid, tc.Status)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, tc.Expected, day.Status)
			}
		})
	}
}

func TestUpdateTodayStatusAfterMaghrib(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	daysRepo := mocks.NewMockRamadanDaysRepositoryI(ctrl)
	logsRepo := mocks.NewMockPrayerLogsRepositoryI(ctrl)
	// Maghrib already passed at noon: completion must be rejected.
	timings := dayTimings()
	timings.Maghrib = "11:00"
	serv := service.NewRamadanService(daysRepo, logsRepo, stubProvider{timings: timings}, noonClock(), testStart)
	uid := uuid.New()

	daysRepo.EXPECT().Upsert(gomock.Any(), uid, testToday, 12).Return(pendingDay(uid, testToday, 12), nil)
	_, err := serv.UpdateTodayStatus(context.Background(), uid, entity.StatusCompleted)
	assert.ErrorIs(t, err, errorvalues.ErrOutsideFastWindow)
}

func TestUpdateTodayStatusInactive(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	daysRepo := mocks.NewMockRamadanDaysRepositoryI(ctrl)
	logsRepo := mocks.NewMockPrayerLogsRepositoryI(ctrl)
	serv := service.NewRamadanService(daysRepo, logsRepo, stubProvider{timings: dayTimings()}, noonClock(), "2027-02-18")

	_, err := serv.UpdateTodayStatus(context.Background(), uuid.New(), entity.StatusCompleted)
	assert.ErrorIs(t, err, errorvalues.ErrRamadanInactive)
}

func TestResetTodayStatus(t *testing.T) {
	t.Parallel()
	serv, daysRepo, _ := newRamadanService(t)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("terminal reverted to pending", func(t *testing.T) {
		day := pendingDay(uid, testToday, 12)
		day.Status = entity.StatusCompleted
		daysRepo.EXPECT().Get(gomock.Any(), uid, testToday).Return(day, nil)
		daysRepo.EXPECT().UpdateStatus(gomock.Any(), uid, testToday, entity.StatusPending).Return(nil)
		result, err := serv.ResetTodayStatus(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, result.Status)
	})
	t.Run("already pending is a no-op", func(t *testing.T) {
		daysRepo.EXPECT().Get(gomock.Any(), uid, testToday).Return(pendingDay(uid, testToday, 12), nil)
		result, err := serv.ResetTodayStatus(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, result.Status)
	})
	t.Run("error day not found", func(t *testing.T) {
		daysRepo.EXPECT().Get(gomock.Any(), uid, testToday).Return(nil, errorvalues.ErrDayNotFound)
		_, err := serv.ResetTodayStatus(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)
	})
}

func TestSweepMissedService(t *testing.T) {
	t.Parallel()
	serv, daysRepo, _ := newRamadanService(t)
	ctx := context.Background()
	t.Run("sweeps inside window", func(t *testing.T) {
		daysRepo.EXPECT().SweepMissed(gomock.Any(), dateutil.DateKey("2026-02-28")).Return(int64(4), nil)
		modified, err := serv.SweepMissed(ctx, "2026-02-28")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), modified)
	})
	t.Run("outside window reports zero without store access", func(t *testing.T) {
		modified, err := serv.SweepMissed(ctx, "2026-02-17")
		assert.NoError(t, err)
		assert.Zero(t, modified)
	})
}

func TestCalendar(t *testing.T) {
	t.Parallel()
	serv, daysRepo, _ := newRamadanService(t)
	uid := uuid.New()

	completed := pendingDay(uid, "2026-02-18", 1)
	completed.Status = entity.StatusCompleted
	missed := pendingDay(uid, "2026-02-19", 2)
	missed.Status = entity.StatusMissed
	daysRepo.EXPECT().ListByUser(gomock.Any(), uid).Return([]*entity.RamadanDay{completed, missed}, nil)

	view, err := serv.Calendar(context.Background(), uid)
	assert.NoError(t, err)
	assert.Len(t, view.Days, 30)
	assert.True(t, view.IsActive)
	assert.Equal(t, 12, view.TodayDayNumber)
	assert.Equal(t, "✅", view.Days[0].Emoji)
	assert.Equal(t, "❌", view.Days[1].Emoji)
	// Past day with no record renders untracked.
	assert.Equal(t, "⬜", view.Days[2].Emoji)
	assert.Equal(t, "🟡", view.Days[11].Emoji)
	assert.Equal(t, "🔒", view.Days[12].Emoji)
	assert.Equal(t, "locked", view.Days[29].Callback)
}

func TestStats(t *testing.T) {
	t.Parallel()
	serv, daysRepo, logsRepo := newRamadanService(t)
	uid := uuid.New()

	daysRepo.EXPECT().CountByStatus(gomock.Any(), uid, entity.StatusCompleted).Return(8, nil)
	daysRepo.EXPECT().CountByStatus(gomock.Any(), uid, entity.StatusMissed).Return(2, nil)
	daysRepo.EXPECT().CountByStatus(gomock.Any(), uid, entity.StatusPending).Return(1, nil)
	logsRepo.EXPECT().CountClosedDays(gomock.Any(), uid).Return(6, nil)

	stats, err := serv.Stats(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, 8, stats.Completed)
	assert.Equal(t, 2, stats.Missed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 6, stats.ClosedPrayerDays)
}
