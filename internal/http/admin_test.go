package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apphttp "alerting-platform/internal/http"
	"alerting-platform/internal/http/mocks"
	"alerting-platform/internal/model"
	"alerting-platform/internal/service"
)

const (
	adminID = "00000000-0000-0000-0000-0000000000b1"
	alertID = "00000000-0000-0000-0000-0000000000f1"
)

type handlerMocks struct {
	alerts     *mocks.AlertService
	users      *mocks.UserService
	teams      *mocks.TeamService
	deliveries *mocks.DeliveryService
	analytics  *mocks.AnalyticsService
}

func newTestHandler() (*apphttp.Handler, handlerMocks) {
	m := handlerMocks{
		alerts:     new(mocks.AlertService),
		users:      new(mocks.UserService),
		teams:      new(mocks.TeamService),
		deliveries: new(mocks.DeliveryService),
		analytics:  new(mocks.AnalyticsService),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := apphttp.NewHandler(m.alerts, m.users, m.teams, m.deliveries, m.analytics, logger)
	return h, m
}

func doRequest(h *apphttp.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleAdminCreateAlert(t *testing.T) {
	expiry := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

	validBody := map[string]any{
		"title":           "Service degradation",
		"message":         "API latency above threshold",
		"severity":        "critical",
		"visibility_type": "organization",
		"created_by":      adminID,
		"expiry_time":     expiry.Format(time.RFC3339),
	}

	tests := []struct {
		name       string
		body       any
		setupMocks func(m handlerMocks)
		wantStatus int
	}{
		{
			name: "Success",
			body: validBody,
			setupMocks: func(m handlerMocks) {
				m.alerts.On("Create", mock.Anything, mock.AnythingOfType("model.Alert")).
					Return(model.Alert{ID: alertID, Title: "Service degradation", IsActive: true}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Fail: missing title",
			body:       map[string]any{"message": "m", "created_by": adminID, "expiry_time": expiry.Format(time.RFC3339)},
			setupMocks: func(m handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Fail: created_by is not a UUID",
			body:       map[string]any{"title": "t", "message": "m", "created_by": "admin", "expiry_time": expiry.Format(time.RFC3339)},
			setupMocks: func(m handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Fail: missing expiry_time",
			body:       map[string]any{"title": "t", "message": "m", "created_by": adminID},
			setupMocks: func(m handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Fail: domain error maps to conflict",
			body: validBody,
			setupMocks: func(m handlerMocks) {
				m.alerts.On("Create", mock.Anything, mock.AnythingOfType("model.Alert")).
					Return(model.Alert{}, service.ErrDomain("ALERT_ARCHIVED", "cannot update archived alert"))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			tt.setupMocks(m)

			rec := doRequest(h, http.MethodPost, "/api/admin/alerts", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var resp struct {
					Success bool        `json:"success"`
					Alert   model.Alert `json:"alert"`
				}
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Equal(t, alertID, resp.Alert.ID)
			} else {
				var resp struct {
					Error struct {
						Code    string `json:"code"`
						Message string `json:"message"`
					} `json:"error"`
				}
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.NotEmpty(t, resp.Error.Code)
			}
			m.alerts.AssertExpectations(t)
		})
	}
}

func TestHandleAdminCreateAlert_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/alerts", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAdminListAlerts(t *testing.T) {
	h, m := newTestHandler()

	m.alerts.On("List", mock.Anything, "active", "critical").
		Return([]model.Alert{{ID: alertID, Severity: model.SeverityCritical}}, nil)

	rec := doRequest(h, http.MethodGet, "/api/admin/alerts?status=active&severity=critical", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Alerts []model.Alert `json:"alerts"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Alerts, 1)
	m.alerts.AssertExpectations(t)
}

func TestHandleAdminSendReminder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, m := newTestHandler()
		m.alerts.On("SendReminder", mock.Anything, alertID).Return(4, nil)

		rec := doRequest(h, http.MethodPost, "/api/admin/alerts/"+alertID+"/send-reminder", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Success       bool `json:"success"`
			RemindersSent int  `json:"reminders_sent"`
		}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 4, resp.RemindersSent)
		m.alerts.AssertExpectations(t)
	})

	t.Run("Fail: unknown alert", func(t *testing.T) {
		h, m := newTestHandler()
		m.alerts.On("SendReminder", mock.Anything, alertID).
			Return(0, service.ErrNotFound("alert not found"))

		rec := doRequest(h, http.MethodPost, "/api/admin/alerts/"+alertID+"/send-reminder", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Fail: malformed alert id", func(t *testing.T) {
		h, _ := newTestHandler()

		rec := doRequest(h, http.MethodPost, "/api/admin/alerts/not-a-uuid/send-reminder", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleAdminCreateUser(t *testing.T) {
	h, m := newTestHandler()

	m.users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Name == "Eve" && u.Email == "eve@example.com"
	})).Return(model.User{ID: adminID, Name: "Eve", Email: "eve@example.com"}, nil)

	rec := doRequest(h, http.MethodPost, "/api/admin/users", map[string]any{
		"name":  "Eve",
		"email": "eve@example.com",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Success bool       `json:"success"`
		User    model.User `json:"user"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "eve@example.com", resp.User.Email)
	m.users.AssertExpectations(t)
}

func TestHandleAdminSystemStats(t *testing.T) {
	h, m := newTestHandler()

	m.analytics.On("SystemStats", mock.Anything).Return(model.SystemStats{
		TotalAlerts: 3, TotalUsers: 5, TotalDeliveries: 12, RemindersSent: 7,
	}, nil)

	rec := doRequest(h, http.MethodGet, "/api/admin/stats/system", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Stats model.SystemStats `json:"stats"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 3, resp.Stats.TotalAlerts)
	m.analytics.AssertExpectations(t)
}
