package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

// TelegramIdentity is what the chat platform tells us about a user on every
// update. Upserts refresh the username and never touch preferences.
type TelegramIdentity struct {
	TelegramID int64
	Username   string
}

type UsersRepositoryI interface {
	// Creates the user on first contact or refreshes the username. Atomic
	// upsert keyed by telegram id.
	UpsertTelegram(ctx context.Context, identity *TelegramIdentity) (*entity.User, error)
	// Looks up user by telegram id
	FindByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error)
	// Lists users who opted into reminders
	ListReminderUsers(ctx context.Context) ([]*entity.User, error)
	// Lists every known user
	ListAllUsers(ctx context.Context) ([]*entity.User, error)
	// Flips the reminder opt-in flag
	SetRemindersEnabled(ctx context.Context, uid uuid.UUID, enabled bool) error
}

type WebUsersRepositoryI interface {
	// Creates new dashboard account
	Create(ctx context.Context, user *entity.WebUser) error
	// Looks up account by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.WebUser, error)
	// Looks up account by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.WebUser, error)
}

type PrayerLogsRepositoryI interface {
	// Returns the log for (user, date), creating an empty one if absent.
	// Atomic: concurrent calls never produce duplicates.
	GetOrCreate(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) (*entity.PrayerLog, error)
	// Sets a single prayer flag
	SetPrayer(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, key string, done bool) error
	// Locks the day's log from further edits. Transitions only open->closed.
	CloseDay(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) error
	// Counts closed days for stats
	CountClosedDays(ctx context.Context, userID uuid.UUID) (int, error)
}

type RamadanDaysRepositoryI interface {
	// Creates-if-absent the fasting record with pending status, refreshing
	// the derived day number on conflict but never stomping the status.
	Upsert(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, dayNumber int) (*entity.RamadanDay, error)
	// Looks up the record for (user, date)
	Get(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) (*entity.RamadanDay, error)
	// Overwrites the fasting status for (user, date)
	UpdateStatus(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, status entity.FastingStatus) error
	// Transitions every still-pending record of the date to missed in one
	// bulk statement. Zero matches is not an error.
	SweepMissed(ctx context.Context, date dateutil.DateKey) (int64, error)
	// Lists all records owned by the user
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RamadanDay, error)
	// Counts records of the user in a given status
	CountByStatus(ctx context.Context, userID uuid.UUID, status entity.FastingStatus) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
