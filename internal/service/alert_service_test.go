package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alerting-platform/internal/model"
	"alerting-platform/internal/repository"
	"alerting-platform/internal/service"
	"alerting-platform/internal/service/mocks"
)

func newAlertService(
	ar *mocks.AlertRepository,
	dr *mocks.DeliveryRepository,
	ur *mocks.UserRepository,
	tr *mocks.TeamRepository,
	tm *mocks.TransactionManager,
) *service.AlertService {
	return service.NewAlertService(ar, dr, ur, tr, tm)
}

func TestAlertService_Create(t *testing.T) {
	admin := model.User{ID: "6f1f9a1a-0000-4000-8000-000000000001", Name: "Admin", Email: "admin@example.com", IsAdmin: true, IsActive: true}
	teamID := "6f1f9a1a-0000-4000-8000-0000000000aa"
	expiry := time.Now().UTC().Add(24 * time.Hour)

	tests := []struct {
		name       string
		input      model.Alert
		setupMocks func(ar *mocks.AlertRepository, ur *mocks.UserRepository, tr *mocks.TeamRepository)
		wantErr    bool
	}{
		{
			name: "Success: organization visibility",
			input: model.Alert{
				Title:          "DB maintenance",
				Message:        "Primary failover at 02:00 UTC",
				Severity:       model.SeverityWarning,
				VisibilityType: model.VisibilityOrganization,
				CreatedBy:      admin.ID,
				ExpiryTime:     expiry,
			},
			setupMocks: func(ar *mocks.AlertRepository, ur *mocks.UserRepository, tr *mocks.TeamRepository) {
				ur.On("GetByID", mock.Anything, admin.ID).Return(admin, nil)
				ar.On("Create", mock.Anything, mock.AnythingOfType("model.Alert")).
					Return(func(ctx context.Context, a model.Alert) model.Alert {
						return a
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "Fail: invalid severity",
			input: model.Alert{
				Title:          "Broken",
				Message:        "msg",
				Severity:       "urgent",
				VisibilityType: model.VisibilityOrganization,
				CreatedBy:      admin.ID,
				ExpiryTime:     expiry,
			},
			setupMocks: func(ar *mocks.AlertRepository, ur *mocks.UserRepository, tr *mocks.TeamRepository) {},
			wantErr:    true,
		},
		{
			name: "Fail: expiry in the past",
			input: model.Alert{
				Title:          "Stale",
				Message:        "msg",
				Severity:       model.SeverityInfo,
				VisibilityType: model.VisibilityOrganization,
				CreatedBy:      admin.ID,
				ExpiryTime:     time.Now().UTC().Add(-time.Hour),
			},
			setupMocks: func(ar *mocks.AlertRepository, ur *mocks.UserRepository, tr *mocks.TeamRepository) {},
			wantErr:    true,
		},
		{
			name: "Fail: creator not found",
			input: model.Alert{
				Title:          "Orphan",
				Message:        "msg",
				Severity:       model.SeverityInfo,
				VisibilityType: model.VisibilityOrganization,
				CreatedBy:      "6f1f9a1a-0000-4000-8000-00000000dead",
				ExpiryTime:     expiry,
			},
			setupMocks: func(ar *mocks.AlertRepository, ur *mocks.UserRepository, tr *mocks.TeamRepository) {
				ur.On("GetByID", mock.Anything, "6f1f9a1a-0000-4000-8000-00000000dead").
					Return(model.User{}, repository.ErrUserNotFound)
			},
			wantErr: true,
		},
		{
			name: "Fail: team visibility without existing team",
			input: model.Alert{
				Title:          "Team only",
				Message:        "msg",
				Severity:       model.SeverityInfo,
				VisibilityType: model.VisibilityTeam,
				TeamID:         &teamID,
				CreatedBy:      admin.ID,
				ExpiryTime:     expiry,
			},
			setupMocks: func(ar *mocks.AlertRepository, ur *mocks.UserRepository, tr *mocks.TeamRepository) {
				tr.On("GetByID", mock.Anything, teamID).
					Return(model.Team{}, repository.ErrTeamNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ar := new(mocks.AlertRepository)
			dr := new(mocks.DeliveryRepository)
			ur := new(mocks.UserRepository)
			tr := new(mocks.TeamRepository)
			tm := new(mocks.TransactionManager)

			tt.setupMocks(ar, ur, tr)

			svc := newAlertService(ar, dr, ur, tr, tm)
			got, err := svc.Create(context.Background(), tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, got.ID)
				assert.True(t, got.IsActive)
				assert.True(t, got.RemindersEnabled)
				assert.Equal(t, service.DefaultReminderFrequency, got.ReminderFrequency)
				// Для organization цель видимости должна быть сброшена
				assert.Nil(t, got.TeamID)
				assert.Nil(t, got.TargetUserID)
			}

			ar.AssertExpectations(t)
			ur.AssertExpectations(t)
			tr.AssertExpectations(t)
		})
	}
}

func TestAlertService_Update(t *testing.T) {
	alertID := "6f1f9a1a-0000-4000-8000-0000000000f1"
	newMsg := "Updated test message"
	warning := model.SeverityWarning

	t.Run("Success: severity and message", func(t *testing.T) {
		ar := new(mocks.AlertRepository)
		svc := newAlertService(ar, new(mocks.DeliveryRepository), new(mocks.UserRepository), new(mocks.TeamRepository), new(mocks.TransactionManager))

		ar.On("GetByID", mock.Anything, alertID).Return(model.Alert{
			ID: alertID, Title: "t", Message: "m", Severity: model.SeverityInfo,
			IsActive: true, ExpiryTime: time.Now().UTC().Add(time.Hour),
		}, nil)
		ar.On("Update", mock.Anything, mock.MatchedBy(func(a model.Alert) bool {
			return a.Severity == model.SeverityWarning && a.Message == newMsg
		})).Return(func(ctx context.Context, a model.Alert) model.Alert {
			return a
		}, nil)

		got, err := svc.Update(context.Background(), alertID, service.AlertUpdate{
			Message:  &newMsg,
			Severity: &warning,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.SeverityWarning, got.Severity)
		ar.AssertExpectations(t)
	})

	t.Run("Fail: archived alert is immutable", func(t *testing.T) {
		ar := new(mocks.AlertRepository)
		svc := newAlertService(ar, new(mocks.DeliveryRepository), new(mocks.UserRepository), new(mocks.TeamRepository), new(mocks.TransactionManager))

		ar.On("GetByID", mock.Anything, alertID).Return(model.Alert{
			ID: alertID, IsActive: false, ExpiryTime: time.Now().UTC().Add(time.Hour),
		}, nil)

		_, err := svc.Update(context.Background(), alertID, service.AlertUpdate{Message: &newMsg})

		assert.Error(t, err)
		appErr, ok := err.(*service.AppError)
		assert.True(t, ok)
		assert.Equal(t, "ALERT_ARCHIVED", appErr.Code)
		ar.AssertExpectations(t)
	})
}

func TestAlertService_SendReminder(t *testing.T) {
	alertID := "6f1f9a1a-0000-4000-8000-0000000000f2"

	activeAlert := model.Alert{
		ID:         alertID,
		IsActive:   true,
		ExpiryTime: time.Now().UTC().Add(time.Hour),
	}

	tests := []struct {
		name       string
		setupMocks func(ar *mocks.AlertRepository, dr *mocks.DeliveryRepository, tm *mocks.TransactionManager)
		wantSent   int
		wantErr    bool
		wantCode   string
	}{
		{
			name: "Success: reminders sent",
			setupMocks: func(ar *mocks.AlertRepository, dr *mocks.DeliveryRepository, tm *mocks.TransactionManager) {
				ar.On("GetByID", mock.Anything, alertID).Return(activeAlert, nil)
				tm.On("RunInTransaction", mock.Anything, mock.Anything).
					Return(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				dr.On("EnsureForAlert", mock.Anything, alertID).Return(nil)
				dr.On("RemindEligible", mock.Anything, alertID, (*time.Time)(nil)).Return(3, nil)
			},
			wantSent: 3,
		},
		{
			name: "Success: zero eligible users is not an error",
			setupMocks: func(ar *mocks.AlertRepository, dr *mocks.DeliveryRepository, tm *mocks.TransactionManager) {
				ar.On("GetByID", mock.Anything, alertID).Return(activeAlert, nil)
				tm.On("RunInTransaction", mock.Anything, mock.Anything).
					Return(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				dr.On("EnsureForAlert", mock.Anything, alertID).Return(nil)
				dr.On("RemindEligible", mock.Anything, alertID, (*time.Time)(nil)).Return(0, nil)
			},
			wantSent: 0,
		},
		{
			name: "Fail: archived alert",
			setupMocks: func(ar *mocks.AlertRepository, dr *mocks.DeliveryRepository, tm *mocks.TransactionManager) {
				archived := activeAlert
				archived.IsActive = false
				ar.On("GetByID", mock.Anything, alertID).Return(archived, nil)
			},
			wantErr:  true,
			wantCode: "ALERT_ARCHIVED",
		},
		{
			name: "Fail: expired alert",
			setupMocks: func(ar *mocks.AlertRepository, dr *mocks.DeliveryRepository, tm *mocks.TransactionManager) {
				expired := activeAlert
				expired.ExpiryTime = time.Now().UTC().Add(-time.Minute)
				ar.On("GetByID", mock.Anything, alertID).Return(expired, nil)
			},
			wantErr:  true,
			wantCode: "ALERT_EXPIRED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ar := new(mocks.AlertRepository)
			dr := new(mocks.DeliveryRepository)
			tm := new(mocks.TransactionManager)

			tt.setupMocks(ar, dr, tm)

			svc := newAlertService(ar, dr, new(mocks.UserRepository), new(mocks.TeamRepository), tm)
			sent, err := svc.SendReminder(context.Background(), alertID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != "" {
					appErr, ok := err.(*service.AppError)
					assert.True(t, ok)
					assert.Equal(t, tt.wantCode, appErr.Code)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantSent, sent)
			}

			ar.AssertExpectations(t)
			dr.AssertExpectations(t)
			tm.AssertExpectations(t)
		})
	}
}

func TestAlertService_DispatchDueReminders(t *testing.T) {
	a1 := model.Alert{ID: "6f1f9a1a-0000-4000-8000-0000000000e1", IsActive: true, ReminderFrequency: 120, ExpiryTime: time.Now().UTC().Add(time.Hour)}
	a2 := model.Alert{ID: "6f1f9a1a-0000-4000-8000-0000000000e2", IsActive: true, ReminderFrequency: 60, ExpiryTime: time.Now().UTC().Add(time.Hour)}

	ar := new(mocks.AlertRepository)
	dr := new(mocks.DeliveryRepository)
	tm := new(mocks.TransactionManager)

	ar.On("ListRemindable", mock.Anything).Return([]model.Alert{a1, a2}, nil)
	tm.On("RunInTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	dr.On("EnsureForAlert", mock.Anything, a1.ID).Return(nil)
	dr.On("EnsureForAlert", mock.Anything, a2.ID).Return(nil)
	dr.On("RemindEligible", mock.Anything, a1.ID, mock.AnythingOfType("*time.Time")).Return(2, nil)
	dr.On("RemindEligible", mock.Anything, a2.ID, mock.AnythingOfType("*time.Time")).Return(1, nil)

	svc := newAlertService(ar, dr, new(mocks.UserRepository), new(mocks.TeamRepository), tm)
	sent, err := svc.DispatchDueReminders(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, sent)
	ar.AssertExpectations(t)
	dr.AssertExpectations(t)
}
