package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/internal/repository"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

type WebUserService struct {
	repo      repository.WebUsersRepositoryI
	usersRepo repository.UsersRepositoryI
}

func NewWebUserService(webUsersRepo repository.WebUsersRepositoryI, usersRepo repository.UsersRepositoryI) *WebUserService {
	return &WebUserService{
		repo:      webUsersRepo,
		usersRepo: usersRepo,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register links a dashboard account to an existing bot user by telegram id,
// so the dashboard always renders records the bot created.
func (ws *WebUserService) Register(ctx context.Context, req *RegisterRequest) (*entity.WebUser, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	_, err = ws.usersRepo.FindByTelegramID(ctx, req.TelegramID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = ws.repo.Create(ctx, &entity.WebUser{
		Name:         req.Name,
		PasswordHash: passwordHash,
		TelegramID:   req.TelegramID,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrWebUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := ws.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (ws *WebUserService) Login(ctx context.Context, name, password string) (*entity.WebUser, error) {
	user, err := ws.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWebUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (ws *WebUserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.WebUser, error) {
	user, err := ws.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWebUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}
