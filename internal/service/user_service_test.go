package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alerting-platform/internal/model"
	"alerting-platform/internal/repository"
	"alerting-platform/internal/service"
	"alerting-platform/internal/service/mocks"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name       string
		input      model.User
		setupMocks func(repo *mocks.UserRepository)
		wantErr    bool
		wantCode   string
		wantEmail  string
	}{
		{
			name:  "Success: email is normalized",
			input: model.User{Name: "Dave", Email: "  Dave@Example.COM "},
			setupMocks: func(repo *mocks.UserRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
					return u.Email == "dave@example.com" && u.ID != "" && u.IsActive
				})).Return(func(ctx context.Context, u model.User) model.User {
					return u
				}, nil)
			},
			wantEmail: "dave@example.com",
		},
		{
			name:       "Fail: empty name",
			input:      model.User{Email: "dave@example.com"},
			setupMocks: func(repo *mocks.UserRepository) {},
			wantErr:    true,
		},
		{
			name:       "Fail: malformed email",
			input:      model.User{Name: "Dave", Email: "not-an-email"},
			setupMocks: func(repo *mocks.UserRepository) {},
			wantErr:    true,
		},
		{
			name:  "Fail: duplicate email",
			input: model.User{Name: "Dave", Email: "dave@example.com"},
			setupMocks: func(repo *mocks.UserRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
					Return(model.User{}, repository.ErrEmailExists)
			},
			wantErr:  true,
			wantCode: "EMAIL_EXISTS",
		},
		{
			name: "Fail: unknown team",
			input: model.User{Name: "Dave", Email: "dave@example.com", TeamID: func() *string {
				id := "6f1f9a1a-0000-4000-8000-00000000dead"
				return &id
			}()},
			setupMocks: func(repo *mocks.UserRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
					Return(model.User{}, repository.ErrTeamNotFound)
			},
			wantErr:  true,
			wantCode: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.UserRepository)
			tt.setupMocks(repo)

			svc := service.NewUserService(repo)
			got, err := svc.Create(context.Background(), tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != "" {
					appErr, ok := err.(*service.AppError)
					assert.True(t, ok)
					assert.Equal(t, tt.wantCode, appErr.Code)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantEmail, got.Email)
				assert.NotEmpty(t, got.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestTeamService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.TeamRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(tm model.Team) bool {
			return tm.Name == "platform" && tm.ID != ""
		})).Return(func(ctx context.Context, tm model.Team) model.Team {
			return tm
		}, nil)

		svc := service.NewTeamService(repo)
		got, err := svc.Create(context.Background(), model.Team{Name: "platform"})

		assert.NoError(t, err)
		assert.Equal(t, "platform", got.Name)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: duplicate name", func(t *testing.T) {
		repo := new(mocks.TeamRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("model.Team")).
			Return(model.Team{}, repository.ErrTeamExists)

		svc := service.NewTeamService(repo)
		_, err := svc.Create(context.Background(), model.Team{Name: "platform"})

		assert.Error(t, err)
		appErr, ok := err.(*service.AppError)
		assert.True(t, ok)
		assert.Equal(t, "TEAM_EXISTS", appErr.Code)
	})

	t.Run("Fail: empty name", func(t *testing.T) {
		svc := service.NewTeamService(new(mocks.TeamRepository))
		_, err := svc.Create(context.Background(), model.Team{})
		assert.Error(t, err)
	})
}
