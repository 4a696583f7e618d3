package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/pkg/cleanup"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

type WebUsersRepository struct {
	conn PgConnection
}

func NewWebUsersRepo(cfg DBConfig) *WebUsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for webUsersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for webUsersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WebUsersRepository{
		conn: pool,
	}
}

func NewWebUsersRepoWithConn(conn PgConnection) *WebUsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for webUsersRepo: " + err.Error())
	}
	return &WebUsersRepository{
		conn: conn,
	}
}

func (wr *WebUsersRepository) Create(ctx context.Context, user *entity.WebUser) error {
	if user == nil {
		return errors.New("web user is nil")
	}
	_, err := wr.conn.Exec(ctx, `INSERT INTO web_users (name, password_hash, telegram_id) VALUES ($1, $2, $3);`,
		user.Name,
		user.PasswordHash,
		user.TelegramID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrWebUserExists
			}
		}
		return errors.New("creating web user db error: " + err.Error())
	}
	return nil
}

func (wr *WebUsersRepository) FindByName(ctx context.Context, name string) (*entity.WebUser, error) {
	var user entity.WebUser
	row := wr.conn.QueryRow(ctx, `SELECT id, name, password_hash, telegram_id FROM web_users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.TelegramID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWebUserNotFound
		}
		return nil, errors.New("searching web user by name error: " + err.Error())
	}
	return &user, nil
}

func (wr *WebUsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.WebUser, error) {
	var user entity.WebUser
	row := wr.conn.QueryRow(ctx, `SELECT id, name, password_hash, telegram_id FROM web_users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.TelegramID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWebUserNotFound
		}
		return nil, errors.New("searching web user by id error: " + err.Error())
	}
	return &user, nil
}
