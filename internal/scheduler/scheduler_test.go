package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ramadanuz/taqvo/internal/prayertimes"
	"github.com/ramadanuz/taqvo/internal/ramadan"
	"github.com/ramadanuz/taqvo/internal/scheduler"
	"github.com/ramadanuz/taqvo/internal/service/mocks"
	"github.com/ramadanuz/taqvo/internal/telegram"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
	"github.com/stretchr/testify/assert"
)

const today = dateutil.DateKey("2026-03-01")

var specs = scheduler.CronSpecs{
	Fajr:    "45 4 * * *",
	Maghrib: "30 18 * * *",
	Missed:  "5 0 * * *",
}

type stubProvider struct {
	timings prayertimes.Timings
}

func (s stubProvider) FetchTimings(_ context.Context, _ dateutil.DateKey) prayertimes.Timings {
	return s.timings
}

// captureSender records deliveries and can fail selected chats.
type captureSender struct {
	sent    []int64
	failFor map[int64]bool
}

func (c *captureSender) SendMessage(_ context.Context, chatID int64, _ string, _ *telegram.InlineKeyboardMarkup) error {
	if c.failFor[chatID] {
		return errors.New("telegram unavailable")
	}
	c.sent = append(c.sent, chatID)
	return nil
}

func noonClock() *dateutil.Clock {
	moment := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return dateutil.NewClockAt(func() time.Time { return moment }, time.UTC)
}

func activeState(dayNumber int) ramadan.State {
	return ramadan.State{DayNumber: dayNumber, IsActive: true}
}

func rowTimings() prayertimes.Timings {
	return prayertimes.Timings{Date: today, Fajr: "05:10", Dhuhr: "12:30", Asr: "16:00", Maghrib: "18:20", Isha: "19:40"}
}

func TestSyncDays(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	ramadanService := mocks.NewMockRamadanServiceI(ctrl)
	sender := &captureSender{}
	serv := scheduler.New(sender, users, ramadanService, stubProvider{timings: rowTimings()}, noonClock(), specs)
	ctx := context.Background()

	first := &entity.User{ID: uuid.New(), TelegramID: 1}
	second := &entity.User{ID: uuid.New(), TelegramID: 2}

	ramadanService.EXPECT().SweepMissed(gomock.Any(), dateutil.DateKey("2026-02-28")).Return(int64(3), nil)
	ramadanService.EXPECT().StateFor(today).Return(activeState(12))
	users.EXPECT().ListAllUsers(gomock.Any()).Return([]*entity.User{first, second}, nil)
	ramadanService.EXPECT().EnsureDay(gomock.Any(), first.ID, today).Return(&entity.RamadanDay{UserID: first.ID, Date: today, DayNumber: 12}, nil)
	// One broken user must not abort the cycle.
	ramadanService.EXPECT().EnsureDay(gomock.Any(), second.ID, today).Return(nil, errors.New("db error"))

	result, err := serv.SyncDays(ctx)
	assert.NoError(t, err)
	assert.Equal(t, dateutil.DateKey("2026-02-28"), result.Yesterday)
	assert.Equal(t, today, result.Today)
	assert.Equal(t, int64(3), result.ModifiedCount)
	assert.Equal(t, 1, result.CreatedTodayCount)
}

func TestSyncDaysInactive(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	ramadanService := mocks.NewMockRamadanServiceI(ctrl)
	serv := scheduler.New(&captureSender{}, users, ramadanService, stubProvider{timings: rowTimings()}, noonClock(), specs)

	ramadanService.EXPECT().SweepMissed(gomock.Any(), dateutil.DateKey("2026-02-28")).Return(int64(0), nil)
	ramadanService.EXPECT().StateFor(today).Return(ramadan.State{DayNumber: 31, IsFinished: true})

	result, err := serv.SyncDays(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, result.CreatedTodayCount)
}

func TestSyncDaysSweepError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	ramadanService := mocks.NewMockRamadanServiceI(ctrl)
	serv := scheduler.New(&captureSender{}, users, ramadanService, stubProvider{timings: rowTimings()}, noonClock(), specs)

	ramadanService.EXPECT().SweepMissed(gomock.Any(), dateutil.DateKey("2026-02-28")).Return(int64(0), errors.New("db error"))

	_, err := serv.SyncDays(context.Background())
	assert.Error(t, err)
}

func TestSendReminder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	ramadanService := mocks.NewMockRamadanServiceI(ctrl)
	sender := &captureSender{failFor: map[int64]bool{2: true}}
	serv := scheduler.New(sender, users, ramadanService, stubProvider{timings: rowTimings()}, noonClock(), specs)

	first := &entity.User{ID: uuid.New(), TelegramID: 1}
	second := &entity.User{ID: uuid.New(), TelegramID: 2}
	third := &entity.User{ID: uuid.New(), TelegramID: 3}

	ramadanService.EXPECT().StateFor(today).Return(activeState(12))
	users.EXPECT().ListReminderUsers(gomock.Any()).Return([]*entity.User{first, second, third}, nil)
	ramadanService.EXPECT().EnsureDay(gomock.Any(), first.ID, today).Return(&entity.RamadanDay{}, nil)
	ramadanService.EXPECT().EnsureDay(gomock.Any(), second.ID, today).Return(&entity.RamadanDay{}, nil)
	ramadanService.EXPECT().EnsureDay(gomock.Any(), third.ID, today).Return(&entity.RamadanDay{}, nil)

	err := serv.SendReminder(context.Background(), scheduler.ReminderFajr)
	assert.NoError(t, err)
	// Chat 2 failed; the rest still got the broadcast.
	assert.Equal(t, []int64{1, 3}, sender.sent)
}

func TestSendReminderBeforeThreshold(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	ramadanService := mocks.NewMockRamadanServiceI(ctrl)
	sender := &captureSender{}
	// Maghrib is after noon: the evening broadcast must hold.
	serv := scheduler.New(sender, users, ramadanService, stubProvider{timings: rowTimings()}, noonClock(), specs)

	ramadanService.EXPECT().StateFor(today).Return(activeState(12))

	err := serv.SendReminder(context.Background(), scheduler.ReminderMaghrib)
	assert.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestSendReminderUnknownTimings(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	ramadanService := mocks.NewMockRamadanServiceI(ctrl)
	sender := &captureSender{}
	serv := scheduler.New(sender, users, ramadanService, stubProvider{timings: prayertimes.Unavailable(today)}, noonClock(), specs)

	ramadanService.EXPECT().StateFor(today).Return(activeState(12))

	err := serv.SendReminder(context.Background(), scheduler.ReminderFajr)
	assert.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestSendReminderInactive(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceI(ctrl)
	ramadanService := mocks.NewMockRamadanServiceI(ctrl)
	sender := &captureSender{}
	serv := scheduler.New(sender, users, ramadanService, stubProvider{timings: rowTimings()}, noonClock(), specs)

	ramadanService.EXPECT().StateFor(today).Return(ramadan.State{DayNumber: 0, IsNotStarted: true})

	err := serv.SendReminder(context.Background(), scheduler.ReminderFajr)
	assert.NoError(t, err)
	assert.Empty(t, sender.sent)
}
