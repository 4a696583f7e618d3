package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/internal/repository"
	"github.com/ramadanuz/taqvo/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCreateWebUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.WebUser{
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		TelegramID:   100500,
	}
	query := regexp.QuoteMeta(`INSERT INTO web_users (name, password_hash, telegram_id) VALUES ($1, $2, $3);`)
	ctx := context.Background()
	repo := repository.NewWebUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.PasswordHash, user.TelegramID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.PasswordHash, user.TelegramID).
			WillReturnError(&pgconn.PgError{
				Code: "23505",
			})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrWebUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.PasswordHash, user.TelegramID).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
}

func TestFindWebUserByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWebUsersRepoWithConn(conn)
	user := entity.WebUser{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		TelegramID:   100500,
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash, telegram_id FROM web_users WHERE name = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash", "telegram_id"}).
				AddRow(user.ID, user.Name, user.PasswordHash, user.TelegramID))
		result, err := repo.FindByName(ctx, user.Name)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, user.Name)
		assert.ErrorIs(t, err, errorvalues.ErrWebUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, user.Name)
		assert.Error(t, err)
	})
}

func TestFindWebUserByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWebUsersRepoWithConn(conn)
	user := entity.WebUser{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		TelegramID:   100500,
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash, telegram_id FROM web_users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash", "telegram_id"}).
				AddRow(user.ID, user.Name, user.PasswordHash, user.TelegramID))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWebUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
	})
}
