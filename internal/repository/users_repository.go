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
	"github.com/ramadanuz/taqvo/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) UpsertTelegram(ctx context.Context, identity *TelegramIdentity) (*entity.User, error) {
	if identity == nil {
		return nil, errors.New("identity is nil")
	}
	var user entity.User
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (telegram_id, username)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE SET username = excluded.username
		RETURNING id, telegram_id, username, city, reminders_enabled, created_at;`,
		identity.TelegramID,
		identity.Username,
	)
	if err := row.Scan(&user.ID, &user.TelegramID, &user.Username, &user.City, &user.RemindersEnabled, &user.CreatedAt); err != nil {
		return nil, errors.New("upserting telegram user error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, telegram_id, username, city, reminders_enabled, created_at FROM users WHERE telegram_id = $1;`, telegramID)
	if err := row.Scan(&user.ID, &user.TelegramID, &user.Username, &user.City, &user.RemindersEnabled, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by telegram id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) ListReminderUsers(ctx context.Context) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, telegram_id, username, city, reminders_enabled, created_at FROM users WHERE reminders_enabled = TRUE;`)
	if err != nil {
		return nil, errors.New("listing reminder users error: " + err.Error())
	}
	return scanUsers(rows)
}

func (ur *UsersRepository) ListAllUsers(ctx context.Context) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, telegram_id, username, city, reminders_enabled, created_at FROM users;`)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	return scanUsers(rows)
}

func (ur *UsersRepository) SetRemindersEnabled(ctx context.Context, uid uuid.UUID, enabled bool) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET reminders_enabled = $1 WHERE id = $2;`, enabled, uid)
	if err != nil {
		return errors.New("updating reminders flag error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUsers(rows pgx.Rows) ([]*entity.User, error) {
	defer rows.Close()
	result := make([]*entity.User, 0, 8)
	for rows.Next() {
		user := entity.User{}
		err := rows.Scan(&user.ID, &user.TelegramID, &user.Username, &user.City, &user.RemindersEnabled, &user.CreatedAt)
		if err != nil {
			return nil, errors.New("user row parsing error: " + err.Error())
		}
		result = append(result, &user)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected user rows error: " + rows.Err().Error())
	}
	return result, nil
}
