package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"alerting-platform/internal/model"
	"alerting-platform/internal/repository"
)

// TeamRepository описывает контракт репозитория команд для бизнес-слоя.
type TeamRepository interface {
	Create(ctx context.Context, t model.Team) (model.Team, error)
	GetByID(ctx context.Context, teamID string) (model.Team, error)
	List(ctx context.Context) ([]model.Team, error)
}

// TeamService содержит бизнес-логику по созданию и получению команд.
type TeamService struct {
	repo TeamRepository
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(repo TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

// Create валидирует входные данные и создаёт команду.
// В случае конфликта по имени возвращает доменную ошибку TEAM_EXISTS.
func (s *TeamService) Create(ctx context.Context, t model.Team) (model.Team, error) {
	if t.Name == "" {
		return model.Team{}, ErrBadRequest("name must not be empty")
	}

	t.ID = uuid.New().String()

	team, err := s.repo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, repository.ErrTeamExists) {
			return model.Team{}, ErrDomain("TEAM_EXISTS", "team name already exists")
		}
		return model.Team{}, &AppError{Code: "INTERNAL", Message: "failed to create team", Status: 500, Err: err}
	}
	return team, nil
}

// List возвращает все команды с числом участников.
func (s *TeamService) List(ctx context.Context) ([]model.Team, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, &AppError{Code: "INTERNAL", Message: "failed to list teams", Status: 500, Err: err}
	}
	return teams, nil
}
