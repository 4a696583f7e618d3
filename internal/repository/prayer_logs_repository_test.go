package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/internal/repository"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
	"github.com/stretchr/testify/assert"
)

var logColumns = []string{"id", "user_id", "date", "fajr", "dhuhr", "asr", "maghrib", "isha", "is_closed"}

func TestGetOrCreatePrayerLog(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPrayerLogsRepoWithConn(conn)
	uid := uuid.New()
	date := dateutil.DateKey("2026-03-01")
	query := regexp.QuoteMeta(`INSERT INTO prayer_logs (user_id, date)`)
	t.Run("created empty", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, date).
			WillReturnRows(pgxmock.NewRows(logColumns).
				AddRow(int64(1), uid, date, false, false, false, false, false, false))
		plog, err := repo.GetOrCreate(ctx, uid, date)
		assert.NoError(t, err)
		assert.Equal(t, uid, plog.UserID)
		assert.Equal(t, 0, plog.CompletedCount())
	})
	t.Run("existing returned", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, date).
			WillReturnRows(pgxmock.NewRows(logColumns).
				AddRow(int64(1), uid, date, true, true, false, false, false, false))
		plog, err := repo.GetOrCreate(ctx, uid, date)
		assert.NoError(t, err)
		assert.True(t, plog.Done(entity.PrayerFajr))
		assert.Equal(t, 2, plog.CompletedCount())
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, date).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetOrCreate(ctx, uid, date)
		assert.Error(t, err)
	})
}

func TestSetPrayer(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPrayerLogsRepoWithConn(conn)
	uid := uuid.New()
	date := dateutil.DateKey("2026-03-01")
	query := regexp.QuoteMeta(`UPDATE prayer_logs SET maghrib = $1 WHERE user_id = $2 AND date = $3;`)
	t.Run("flag set", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(true, uid, date).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.SetPrayer(ctx, uid, date, entity.PrayerMaghrib, true)
		assert.NoError(t, err)
	})
	t.Run("unknown prayer key", func(t *testing.T) {
		err := repo.SetPrayer(ctx, uid, date, "tahajjud", true)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidPrayerKey)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(true, uid, date).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.SetPrayer(ctx, uid, date, entity.PrayerMaghrib, true)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(true, uid, date).
			WillReturnError(errors.New("db error"))
		err := repo.SetPrayer(ctx, uid, date, entity.PrayerMaghrib, true)
		assert.Error(t, err)
	})
}

func TestCloseDay(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPrayerLogsRepoWithConn(conn)
	uid := uuid.New()
	date := dateutil.DateKey("2026-03-01")
	query := regexp.QuoteMeta(`UPDATE prayer_logs SET is_closed = TRUE WHERE user_id = $1 AND date = $2 AND is_closed = FALSE;`)
	t.Run("closed", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, date).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.CloseDay(ctx, uid, date)
		assert.NoError(t, err)
	})
	t.Run("already closed", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, date).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.CloseDay(ctx, uid, date)
		assert.ErrorIs(t, err, errorvalues.ErrDayClosed)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, date).
			WillReturnError(errors.New("db error"))
		err := repo.CloseDay(ctx, uid, date)
		assert.Error(t, err)
	})
}

func TestCountClosedDays(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPrayerLogsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM prayer_logs WHERE user_id = $1 AND is_closed = TRUE;`)
	t.Run("counted", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
		count, err := repo.CountClosedDays(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 7, count)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		_, err := repo.CountClosedDays(ctx, uid)
		assert.Error(t, err)
	})
}
