package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/pkg/cleanup"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

// prayerColumns whitelists the flag columns a SetPrayer call may touch.
var prayerColumns = map[string]string{
	entity.PrayerFajr:    "fajr",
	entity.PrayerDhuhr:   "dhuhr",
	entity.PrayerAsr:     "asr",
	entity.PrayerMaghrib: "maghrib",
	entity.PrayerIsha:    "isha",
}

type PrayerLogsRepository struct {
	conn PgConnection
}

func NewPrayerLogsRepo(cfg DBConfig) *PrayerLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for prayerLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for prayerLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PrayerLogsRepository{
		conn: pool,
	}
}

func NewPrayerLogsRepoWithConn(conn PgConnection) *PrayerLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for prayerLogsRepo: " + err.Error())
	}
	return &PrayerLogsRepository{
		conn: conn,
	}
}

// GetOrCreate lazily provisions the day's log. The no-op DO UPDATE keeps the
// statement a single round trip that returns the row whether it was inserted
// or already present; the (user_id, date) uniqueness constraint rules out
// duplicates under concurrent calls.
func (lr *PrayerLogsRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) (*entity.PrayerLog, error) {
	var plog entity.PrayerLog
	row := lr.conn.QueryRow(ctx, `INSERT INTO prayer_logs (user_id, date)
		VALUES ($1, $2)
		ON CONFLICT (user_id, date) DO UPDATE SET user_id = excluded.user_id
		RETURNING id, user_id, date, fajr, dhuhr, asr, maghrib, isha, is_closed;`,
		userID,
		date,
	)
	if err := row.Scan(&plog.ID, &plog.UserID, &plog.Date, &plog.Fajr, &plog.Dhuhr, &plog.Asr, &plog.Maghrib, &plog.Isha, &plog.IsClosed); err != nil {
		return nil, errors.New("getting or creating prayer log error: " + err.Error())
	}
	return &plog, nil
}

func (lr *PrayerLogsRepository) SetPrayer(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, key string, done bool) error {
	column, ok := prayerColumns[key]
	if !ok {
		return errorvalues.ErrInvalidPrayerKey
	}
	ct, err := lr.conn.Exec(ctx, `UPDATE prayer_logs SET `+column+` = $1 WHERE user_id = $2 AND date = $3;`,
		done,
		userID,
		date,
	)
	if err != nil {
		return errors.New("setting prayer flag error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLogNotFound
	}
	return nil
}

func (lr *PrayerLogsRepository) CloseDay(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) error {
	ct, err := lr.conn.Exec(ctx, `UPDATE prayer_logs SET is_closed = TRUE WHERE user_id = $1 AND date = $2 AND is_closed = FALSE;`,
		userID,
		date,
	)
	if err != nil {
		return errors.New("closing day error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDayClosed
	}
	return nil
}

func (lr *PrayerLogsRepository) CountClosedDays(ctx context.Context, userID uuid.UUID) (int, error) {
	row := lr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM prayer_logs WHERE user_id = $1 AND is_closed = TRUE;`, userID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting closed days: " + err.Error())
	}
	return count, nil
}
