package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/internal/repository"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) UpsertTelegram(ctx context.Context, identity *repository.TelegramIdentity) (*entity.User, error) {
	if identity == nil {
		return nil, errors.New("telegram identity is nil")
	}
	user, err := us.repo.UpsertTelegram(ctx, identity)
	if err != nil {
		return nil, errors.New("repository upserting error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error) {
	user, err := us.repo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) ListReminderUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := us.repo.ListReminderUsers(ctx)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	return users, nil
}

func (us *UserService) ListAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := us.repo.ListAllUsers(ctx)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	return users, nil
}

func (us *UserService) SetReminders(ctx context.Context, uid uuid.UUID, enabled bool) error {
	err := us.repo.SetRemindersEnabled(ctx, uid, enabled)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}
