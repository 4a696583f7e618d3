package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ramadanuz/taqvo/internal/ramadan"
	"github.com/ramadanuz/taqvo/internal/repository"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

type RegisterRequest struct {
	Name       string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password   string `validate:"required,min=8,max=72"`
	TelegramID int64  `validate:"required"`
}

type UserServiceI interface {
	// Creates the bot user on first contact or refreshes the username
	UpsertTelegram(ctx context.Context, identity *repository.TelegramIdentity) (*entity.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error)
	// Lists users who opted into reminder broadcasts
	ListReminderUsers(ctx context.Context) ([]*entity.User, error)
	ListAllUsers(ctx context.Context) ([]*entity.User, error)
	SetReminders(ctx context.Context, uid uuid.UUID, enabled bool) error
}

type WebUserServiceI interface {
	// Validates credentials, creates a dashboard account linked to a bot user
	Register(ctx context.Context, req *RegisterRequest) (*entity.WebUser, error)
	// Compares given credentials. If ok, gives back the account with ID
	Login(ctx context.Context, name, password string) (*entity.WebUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WebUser, error)
}

type RamadanServiceI interface {
	// State of "today" as observed in the configured timezone
	TodayState() ramadan.State
	StateFor(date dateutil.DateKey) ramadan.State
	// Idempotent provision of the fasting record. Nil outside the window.
	EnsureDay(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) (*entity.RamadanDay, error)
	// Terminal pending->completed/missed transition for today's record
	UpdateTodayStatus(ctx context.Context, userID uuid.UUID, status entity.FastingStatus) (*entity.RamadanDay, error)
	// Toggle-back flow: reverts today's record to pending
	ResetTodayStatus(ctx context.Context, userID uuid.UUID) (*entity.RamadanDay, error)
	// Bulk pending->missed transition for one date
	SweepMissed(ctx context.Context, date dateutil.DateKey) (int64, error)
	Calendar(ctx context.Context, userID uuid.UUID) (*CalendarView, error)
	Stats(ctx context.Context, userID uuid.UUID) (*entity.FastingStats, error)
}

type PrayerServiceI interface {
	// Lazily provisions and returns today's prayer log
	TodayLog(ctx context.Context, userID uuid.UUID) (*entity.PrayerLog, error)
	// Marks one prayer complete, guarded by the prayer-time window
	MarkPrayer(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, key string) (*entity.PrayerLog, error)
	// Toggle-back flow: clears a previously marked prayer
	UnmarkPrayer(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, key string) (*entity.PrayerLog, error)
	// Locks the day once all five prayers are marked
	CloseDay(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) (*entity.PrayerLog, error)
}
