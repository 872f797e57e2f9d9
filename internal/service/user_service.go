package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"alerting-platform/internal/model"
	"alerting-platform/internal/repository"
)

// UserRepository описывает контракт репозитория пользователей для бизнес-слоя.
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByID(ctx context.Context, userID string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// UserService содержит бизнес-логику, связанную с пользователями.
type UserService struct {
	repo UserRepository
}

// NewUserService создаёт новый сервис для операций над пользователями.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create валидирует входные данные и создаёт нового пользователя.
// В случае занятого email возвращает доменную ошибку EMAIL_EXISTS.
func (s *UserService) Create(ctx context.Context, u model.User) (model.User, error) {
	if u.Name == "" {
		return model.User{}, ErrBadRequest("name is required")
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return model.User{}, ErrBadRequest("a valid email is required")
	}

	u.ID = uuid.New().String()
	u.IsActive = true

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return model.User{}, ErrDomain("EMAIL_EXISTS", "email already exists")
		}
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.User{}, ErrNotFound("team not found")
		}
		return model.User{}, &AppError{Code: "INTERNAL", Message: "failed to create user", Status: 500, Err: err}
	}
	return created, nil
}

// List возвращает всех пользователей платформы.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, &AppError{Code: "INTERNAL", Message: "failed to list users", Status: 500, Err: err}
	}
	return users, nil
}
