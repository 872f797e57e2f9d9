// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"time"

	"alerting-platform/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Admin: alerts

type createAlertRequest struct {
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	Severity          string     `json:"severity"`
	VisibilityType    string     `json:"visibility_type"`
	TeamID            *string    `json:"team_id"`
	TargetUserID      *string    `json:"target_user_id"`
	CreatedBy         string     `json:"created_by"`
	ExpiryTime        *time.Time `json:"expiry_time"`
	ReminderFrequency int        `json:"reminder_frequency_minutes"`
}

type updateAlertRequest struct {
	Title             *string    `json:"title"`
	Message           *string    `json:"message"`
	Severity          *string    `json:"severity"`
	ExpiryTime        *time.Time `json:"expiry_time"`
	ReminderFrequency *int       `json:"reminder_frequency_minutes"`
	RemindersEnabled  *bool      `json:"reminders_enabled"`
}

type alertResponse struct {
	Success bool        `json:"success"`
	Alert   model.Alert `json:"alert"`
}

type getAlertResponse struct {
	Alert model.Alert `json:"alert"`
}

type listAlertsResponse struct {
	Alerts []model.Alert `json:"alerts"`
}

type sendReminderResponse struct {
	Success       bool `json:"success"`
	RemindersSent int  `json:"reminders_sent"`
}

// Admin: users, teams, stats

type createUserRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	IsAdmin bool    `json:"is_admin"`
	TeamID  *string `json:"team_id"`
}

type userResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
}

type listUsersResponse struct {
	Users []model.User `json:"users"`
}

type createTeamRequest struct {
	Name string `json:"name"`
}

type teamResponse struct {
	Success bool       `json:"success"`
	Team    model.Team `json:"team"`
}

type listTeamsResponse struct {
	Teams []model.Team `json:"teams"`
}

type systemStatsResponse struct {
	Stats model.SystemStats `json:"stats"`
}

// User

type listUserAlertsResponse struct {
	Alerts []model.UserAlert `json:"alerts"`
}

type dashboardResponse struct {
	Summary model.DashboardSummary `json:"summary"`
}

type alertActionRequest struct {
	UserID string `json:"user_id"`
}

type alertActionResponse struct {
	Success      bool       `json:"success"`
	Status       string     `json:"status"`
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`
}

type pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type historyResponse struct {
	Deliveries []model.Delivery `json:"deliveries"`
	Pagination pagination       `json:"pagination"`
}

// Analytics

type overviewResponse struct {
	Overview model.Overview `json:"overview"`
}

type alertPerformanceResponse struct {
	Performance []model.AlertPerformance `json:"performance"`
}

type dailyTrendsResponse struct {
	Trends []model.DailyTrend `json:"trends"`
}

type userEngagementResponse struct {
	Engagement []model.UserEngagement `json:"engagement"`
}

type systemHealthResponse struct {
	SystemHealth model.SystemHealth `json:"system_health"`
}
