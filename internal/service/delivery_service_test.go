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

const (
	testAlertID = "6f1f9a1a-0000-4000-8000-0000000000c1"
	testUserID  = "6f1f9a1a-0000-4000-8000-0000000000c2"
)

func activeTestAlert() model.Alert {
	return model.Alert{
		ID:         testAlertID,
		Title:      "Disk pressure",
		IsActive:   true,
		ExpiryTime: time.Now().UTC().Add(time.Hour),
	}
}

func TestDeliveryService_MarkReadUnread(t *testing.T) {
	dr := new(mocks.DeliveryRepository)
	ar := new(mocks.AlertRepository)
	ur := new(mocks.UserRepository)
	svc := service.NewDeliveryService(dr, ar, ur)

	ur.On("GetByID", mock.Anything, testUserID).Return(model.User{ID: testUserID, IsActive: true}, nil)
	ar.On("GetByID", mock.Anything, testAlertID).Return(activeTestAlert(), nil)
	dr.On("EnsureForUser", mock.Anything, testUserID).Return(nil)

	dr.On("SetStatus", mock.Anything, testAlertID, testUserID, model.DeliveryRead,
		mock.AnythingOfType("*time.Time"), (*time.Time)(nil)).
		Return(model.Delivery{AlertID: testAlertID, UserID: testUserID, Status: model.DeliveryRead}, nil).Once()

	got, err := svc.MarkRead(context.Background(), testAlertID, testUserID)
	assert.NoError(t, err)
	assert.Equal(t, model.DeliveryRead, got.Status)

	// Возврат в unread сбрасывает и read_at, и snoozed_until
	dr.On("SetStatus", mock.Anything, testAlertID, testUserID, model.DeliveryUnread,
		(*time.Time)(nil), (*time.Time)(nil)).
		Return(model.Delivery{AlertID: testAlertID, UserID: testUserID, Status: model.DeliveryUnread}, nil).Once()

	got, err = svc.MarkUnread(context.Background(), testAlertID, testUserID)
	assert.NoError(t, err)
	assert.Equal(t, model.DeliveryUnread, got.Status)

	dr.AssertExpectations(t)
	ar.AssertExpectations(t)
	ur.AssertExpectations(t)
}

func TestDeliveryService_Snooze(t *testing.T) {
	dr := new(mocks.DeliveryRepository)
	ar := new(mocks.AlertRepository)
	ur := new(mocks.UserRepository)
	svc := service.NewDeliveryService(dr, ar, ur)

	ur.On("GetByID", mock.Anything, testUserID).Return(model.User{ID: testUserID, IsActive: true}, nil)
	ar.On("GetByID", mock.Anything, testAlertID).Return(activeTestAlert(), nil)
	dr.On("EnsureForUser", mock.Anything, testUserID).Return(nil)

	var captured *time.Time
	dr.On("SetStatus", mock.Anything, testAlertID, testUserID, model.DeliverySnoozed,
		(*time.Time)(nil), mock.MatchedBy(func(until *time.Time) bool {
			captured = until
			return until != nil
		})).
		Return(model.Delivery{AlertID: testAlertID, UserID: testUserID, Status: model.DeliverySnoozed}, nil)

	got, err := svc.Snooze(context.Background(), testAlertID, testUserID)

	assert.NoError(t, err)
	assert.Equal(t, model.DeliverySnoozed, got.Status)
	// Снуз действует до конца текущих суток UTC
	if assert.NotNil(t, captured) {
		assert.Equal(t, 23, captured.Hour())
		assert.Equal(t, 59, captured.Minute())
		assert.Equal(t, time.Now().UTC().Day(), captured.Day())
	}
	dr.AssertExpectations(t)
}

func TestDeliveryService_SetStatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(dr *mocks.DeliveryRepository, ar *mocks.AlertRepository, ur *mocks.UserRepository)
		wantStatus int
	}{
		{
			name: "Fail: user not found",
			setupMocks: func(dr *mocks.DeliveryRepository, ar *mocks.AlertRepository, ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, testUserID).Return(model.User{}, repository.ErrUserNotFound)
			},
			wantStatus: 404,
		},
		{
			name: "Fail: alert not found",
			setupMocks: func(dr *mocks.DeliveryRepository, ar *mocks.AlertRepository, ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, testUserID).Return(model.User{ID: testUserID}, nil)
				ar.On("GetByID", mock.Anything, testAlertID).Return(model.Alert{}, repository.ErrAlertNotFound)
			},
			wantStatus: 404,
		},
		{
			name: "Fail: archived alert",
			setupMocks: func(dr *mocks.DeliveryRepository, ar *mocks.AlertRepository, ur *mocks.UserRepository) {
				archived := activeTestAlert()
				archived.IsActive = false
				ur.On("GetByID", mock.Anything, testUserID).Return(model.User{ID: testUserID}, nil)
				ar.On("GetByID", mock.Anything, testAlertID).Return(archived, nil)
			},
			wantStatus: 409,
		},
		{
			name: "Fail: alert not visible to user",
			setupMocks: func(dr *mocks.DeliveryRepository, ar *mocks.AlertRepository, ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, testUserID).Return(model.User{ID: testUserID}, nil)
				ar.On("GetByID", mock.Anything, testAlertID).Return(activeTestAlert(), nil)
				dr.On("EnsureForUser", mock.Anything, testUserID).Return(nil)
				dr.On("SetStatus", mock.Anything, testAlertID, testUserID, model.DeliveryRead,
					mock.AnythingOfType("*time.Time"), (*time.Time)(nil)).
					Return(model.Delivery{}, repository.ErrDeliveryNotFound)
			},
			wantStatus: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr := new(mocks.DeliveryRepository)
			ar := new(mocks.AlertRepository)
			ur := new(mocks.UserRepository)
			tt.setupMocks(dr, ar, ur)

			svc := service.NewDeliveryService(dr, ar, ur)
			_, err := svc.MarkRead(context.Background(), testAlertID, testUserID)

			assert.Error(t, err)
			appErr, ok := err.(*service.AppError)
			assert.True(t, ok)
			assert.Equal(t, tt.wantStatus, appErr.Status)

			dr.AssertExpectations(t)
			ar.AssertExpectations(t)
			ur.AssertExpectations(t)
		})
	}
}

func TestDeliveryService_Dashboard(t *testing.T) {
	dr := new(mocks.DeliveryRepository)
	ar := new(mocks.AlertRepository)
	ur := new(mocks.UserRepository)
	svc := service.NewDeliveryService(dr, ar, ur)

	ur.On("GetByID", mock.Anything, testUserID).Return(model.User{ID: testUserID}, nil)
	dr.On("EnsureForUser", mock.Anything, testUserID).Return(nil)
	dr.On("DashboardCounts", mock.Anything, testUserID).Return(model.DashboardSummary{
		TotalAlerts: 5, UnreadCount: 2, ReadCount: 2, SnoozedCount: 1,
	}, nil)

	summary, err := svc.Dashboard(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Equal(t, summary.TotalAlerts, summary.UnreadCount+summary.ReadCount+summary.SnoozedCount)
	dr.AssertExpectations(t)
}

func TestDeliveryService_History(t *testing.T) {
	dr := new(mocks.DeliveryRepository)
	ar := new(mocks.AlertRepository)
	ur := new(mocks.UserRepository)
	svc := service.NewDeliveryService(dr, ar, ur)

	ur.On("GetByID", mock.Anything, testUserID).Return(model.User{ID: testUserID}, nil)
	// page=3, perPage=20 транслируется в limit=20, offset=40
	dr.On("History", mock.Anything, testUserID, 20, 40).
		Return([]model.Delivery{{AlertID: testAlertID, UserID: testUserID}}, 41, nil)

	deliveries, total, err := svc.History(context.Background(), testUserID, 3, 20)

	assert.NoError(t, err)
	assert.Len(t, deliveries, 1)
	assert.Equal(t, 41, total)
	dr.AssertExpectations(t)
}
