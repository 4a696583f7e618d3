package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ramadanuz/taqvo/internal/prayertimes"
	"github.com/ramadanuz/taqvo/internal/service"
	"github.com/ramadanuz/taqvo/internal/telegram"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
)

// BotSender is the slice of the telegram client the scheduler needs.
type BotSender interface {
	SendMessage(ctx context.Context, chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) error
}

type ReminderKind string

const (
	ReminderFajr    ReminderKind = "fajr"
	ReminderMaghrib ReminderKind = "maghrib"
)

type CronSpecs struct {
	Fajr    string
	Maghrib string
	Missed  string
}

// SyncResult summarizes one sweep-and-provision cycle for logging.
type SyncResult struct {
	Yesterday         dateutil.DateKey
	Today             dateutil.DateKey
	ModifiedCount     int64
	CreatedTodayCount int
}

const jobTimeout = 2 * time.Minute

// Service drives the three recurring jobs: fajr and maghrib reminder
// broadcasts and the missed-day sweep. Every job is also safe to run
// concurrently with user-triggered actions; the store-level upsert carries
// the idempotency.
type Service struct {
	bot     BotSender
	users   service.UserServiceI
	ramadan service.RamadanServiceI
	timings prayertimes.ProviderI
	clock   *dateutil.Clock
	specs   CronSpecs
	logger  *slog.Logger
}

func New(bot BotSender, users service.UserServiceI, ramadanService service.RamadanServiceI, timings prayertimes.ProviderI, clock *dateutil.Clock, specs CronSpecs) *Service {
	return &Service{
		bot:     bot,
		users:   users,
		ramadan: ramadanService,
		timings: timings,
		clock:   clock,
		specs:   specs,
		logger:  slog.Default().With(slog.String("component", "scheduler")),
	}
}

// Start runs one eager sync to repair any gap from downtime, then registers
// the recurring jobs. Cron expressions are evaluated in the configured
// timezone, not the host's.
func (s *Service) Start() (*cron.Cron, error) {
	go s.runSync()

	c := cron.New(cron.WithLocation(s.clock.Location()))
	if _, err := c.AddFunc(s.specs.Fajr, func() { s.runReminder(ReminderFajr) }); err != nil {
		return nil, errors.New("registering fajr reminder error: " + err.Error())
	}
	if _, err := c.AddFunc(s.specs.Maghrib, func() { s.runReminder(ReminderMaghrib) }); err != nil {
		return nil, errors.New("registering maghrib reminder error: " + err.Error())
	}
	if _, err := c.AddFunc(s.specs.Missed, s.runSync); err != nil {
		return nil, errors.New("registering missed sweep error: " + err.Error())
	}
	c.Start()
	s.logger.Info("scheduler started",
		slog.String("fajr_cron", s.specs.Fajr),
		slog.String("maghrib_cron", s.specs.Maghrib),
		slog.String("missed_cron", s.specs.Missed),
	)
	return c, nil
}

func (s *Service) runSync() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	result, err := s.SyncDays(ctx)
	if err != nil {
		s.logger.Error("day sync failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("day sync completed",
		slog.String("yesterday", string(result.Yesterday)),
		slog.String("today", string(result.Today)),
		slog.Int64("modified", result.ModifiedCount),
		slog.Int("created_today", result.CreatedTodayCount),
	)
}

func (s *Service) runReminder(kind ReminderKind) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	if err := s.SendReminder(ctx, kind); err != nil {
		s.logger.Error("reminder broadcast failed", slog.String("kind", string(kind)), slog.String("error", err.Error()))
	}
}

// SyncDays marks yesterday's stragglers missed and provisions today's record
// for every known user. Both halves no-op outside the active window, so the
// job can stay scheduled all year.
func (s *Service) SyncDays(ctx context.Context) (SyncResult, error) {
	today := s.clock.Today()
	yesterday := dateutil.AddDays(today, -1)
	result := SyncResult{Yesterday: yesterday, Today: today}

	modified, err := s.ramadan.SweepMissed(ctx, yesterday)
	if err != nil {
		return result, errors.New("sweeping yesterday error: " + err.Error())
	}
	result.ModifiedCount = modified

	if !s.ramadan.StateFor(today).IsActive {
		return result, nil
	}
	users, err := s.users.ListAllUsers(ctx)
	if err != nil {
		return result, errors.New("listing users error: " + err.Error())
	}
	for _, user := range users {
		day, err := s.ramadan.EnsureDay(ctx, user.ID, today)
		if err != nil {
			// One broken user must not abort provisioning for the rest.
			s.logger.Error("provisioning day failed",
				slog.Int64("telegram_id", user.TelegramID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if day != nil {
			result.CreatedTodayCount++
		}
	}
	return result, nil
}

// SendReminder broadcasts the fasting question of the day to opted-in users,
// but only once the relevant prayer-time threshold has passed. Unknown
// timings suppress the broadcast entirely.
func (s *Service) SendReminder(ctx context.Context, kind ReminderKind) error {
	today := s.clock.Today()
	state := s.ramadan.StateFor(today)
	if !state.IsActive {
		s.logger.Info("ramadan inactive, reminder skipped", slog.String("kind", string(kind)))
		return nil
	}

	timings := s.timings.FetchTimings(ctx, today)
	threshold := timings.Fajr
	if kind == ReminderMaghrib {
		threshold = timings.Maghrib
	}
	thresholdMinutes, ok := dateutil.ParseClock(threshold)
	nowMinutes := s.clock.NowMinutes()
	if !ok || nowMinutes < thresholdMinutes {
		s.logger.Info("reminder skipped: prayer time not reached yet",
			slog.String("kind", string(kind)),
			slog.Int("now_minutes", nowMinutes),
		)
		return nil
	}

	users, err := s.users.ListReminderUsers(ctx)
	if err != nil {
		return errors.New("listing reminder users error: " + err.Error())
	}

	text := "Bugungi ro‘zaga niyat qildingizmi?"
	keyboard := telegram.FastingIntentKeyboard(today)
	if kind == ReminderMaghrib {
		text = "Bugungi ro‘zani to‘liq tutdingizmi?"
		keyboard = telegram.FastingResultKeyboard(today)
	}

	sent := 0
	for _, user := range users {
		if _, err := s.ramadan.EnsureDay(ctx, user.ID, today); err != nil {
			s.logger.Error("provisioning day failed",
				slog.Int64("telegram_id", user.TelegramID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if err := s.bot.SendMessage(ctx, user.TelegramID, text, keyboard); err != nil {
			// Per-user delivery failure: log and keep going.
			s.logger.Error("sending reminder failed",
				slog.Int64("telegram_id", user.TelegramID),
				slog.String("kind", string(kind)),
				slog.String("error", err.Error()),
			)
			continue
		}
		sent++
	}
	s.logger.Info("reminder broadcast finished",
		slog.String("kind", string(kind)),
		slog.Int("total", len(users)),
		slog.Int("sent", sent),
	)
	return nil
}
