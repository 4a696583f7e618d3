package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/pkg/cleanup"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

type RamadanDaysRepository struct {
	conn PgConnection
}

func NewRamadanDaysRepo(cfg DBConfig) *RamadanDaysRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for ramadanDaysRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for ramadanDaysRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RamadanDaysRepository{
		conn: pool,
	}
}

func NewRamadanDaysRepoWithConn(conn PgConnection) *RamadanDaysRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for ramadanDaysRepo: " + err.Error())
	}
	return &RamadanDaysRepository{
		conn: conn,
	}
}

// Upsert creates the record with pending status or returns the existing one.
// The day number is a pure function of the date, so refreshing it on conflict
// is always safe; status is deliberately left untouched so a concurrent
// completed/missed transition is never stomped.
func (dr *RamadanDaysRepository) Upsert(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, dayNumber int) (*entity.RamadanDay, error) {
	var day entity.RamadanDay
	row := dr.conn.QueryRow(ctx, `INSERT INTO ramadan_days (user_id, date, day_number)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE SET day_number = excluded.day_number
		RETURNING id, user_id, date, day_number, status;`,
		userID,
		date,
		dayNumber,
	)
	if err := row.Scan(&day.ID, &day.UserID, &day.Date, &day.DayNumber, &day.Status); err != nil {
		return nil, errors.New("upserting ramadan day error: " + err.Error())
	}
	return &day, nil
}

func (dr *RamadanDaysRepository) Get(ctx context.Context, userID uuid.UUID, date dateutil.DateKey) (*entity.RamadanDay, error) {
	var day entity.RamadanDay
	row := dr.conn.QueryRow(ctx, `SELECT id, user_id, date, day_number, status FROM ramadan_days WHERE user_id = $1 AND date = $2;`, userID, date)
	if err := row.Scan(&day.ID, &day.UserID, &day.Date, &day.DayNumber, &day.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDayNotFound
		}
		return nil, errors.New("searching ramadan day error: " + err.Error())
	}
	return &day, nil
}

func (dr *RamadanDaysRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, date dateutil.DateKey, status entity.FastingStatus) error {
	if !status.Valid() {
		return errorvalues.ErrInvalidStatus
	}
	ct, err := dr.conn.Exec(ctx, `UPDATE ramadan_days SET status = $1 WHERE user_id = $2 AND date = $3;`,
		status,
		userID,
		date,
	)
	if err != nil {
		return errors.New("updating fasting status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDayNotFound
	}
	return nil
}

func (dr *RamadanDaysRepository) SweepMissed(ctx context.Context, date dateutil.DateKey) (int64, error) {
	ct, err := dr.conn.Exec(ctx, `UPDATE ramadan_days SET status = 'missed' WHERE date = $1 AND status = 'pending';`, date)
	if err != nil {
		return 0, errors.New("sweeping pending days error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

func (dr *RamadanDaysRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RamadanDay, error) {
	rows, err := dr.conn.Query(ctx, `SELECT id, user_id, date, day_number, status FROM ramadan_days WHERE user_id = $1 ORDER BY date;`, userID)
	if err != nil {
		return nil, errors.New("listing ramadan days error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.RamadanDay, 0, 30)
	for rows.Next() {
		day := entity.RamadanDay{}
		err = rows.Scan(&day.ID, &day.UserID, &day.Date, &day.DayNumber, &day.Status)
		if err != nil {
			return nil, errors.New("ramadan day row parsing error: " + err.Error())
		}
		result = append(result, &day)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected ramadan day rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (dr *RamadanDaysRepository) CountByStatus(ctx context.Context, userID uuid.UUID, status entity.FastingStatus) (int, error) {
	row := dr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM ramadan_days WHERE user_id = $1 AND status = $2;`, userID, status)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting ramadan days: " + err.Error())
	}
	return count, nil
}
