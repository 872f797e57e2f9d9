package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"alerting-platform/internal/model"
	"alerting-platform/internal/service"
)

func (h *Handler) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_users_list"

	users, err := h.Users.List(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listUsersResponse{Users: users})
}

func (h *Handler) handleAdminCreateUser(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_users_create"

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCreateUserRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Users.Create(r.Context(), model.User{
		Name:    req.Name,
		Email:   req.Email,
		IsAdmin: req.IsAdmin,
		TeamID:  req.TeamID,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, userResponse{Success: true, User: user})
}

func (h *Handler) handleAdminListTeams(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_teams_list"

	teams, err := h.Teams.List(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listTeamsResponse{Teams: teams})
}

func (h *Handler) handleAdminCreateTeam(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_teams_create"

	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}
	if req.Name == "" {
		h.writeError(w, handlerName, service.ErrBadRequest("name is required"))
		return
	}

	team, err := h.Teams.Create(r.Context(), model.Team{Name: req.Name})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, teamResponse{Success: true, Team: team})
}

func (h *Handler) handleAdminListAlerts(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_alerts_list"

	status := r.URL.Query().Get("status")
	severity := r.URL.Query().Get("severity")

	alerts, err := h.Alerts.List(r.Context(), status, severity)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listAlertsResponse{Alerts: alerts})
}

func (h *Handler) handleAdminCreateAlert(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_alerts_create"

	var req createAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCreateAlertRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	input := model.Alert{
		Title:             req.Title,
		Message:           req.Message,
		Severity:          model.Severity(req.Severity),
		VisibilityType:    model.VisibilityType(req.VisibilityType),
		TeamID:            req.TeamID,
		TargetUserID:      req.TargetUserID,
		CreatedBy:         req.CreatedBy,
		ExpiryTime:        *req.ExpiryTime,
		ReminderFrequency: req.ReminderFrequency,
	}

	alert, err := h.Alerts.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, alertResponse{Success: true, Alert: alert})
}

func (h *Handler) handleAdminGetAlert(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_alerts_get"

	alertID := chi.URLParam(r, "alertID")
	if err := ValidateAlertIDParam(alertID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	alert, err := h.Alerts.Get(r.Context(), alertID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, getAlertResponse{Alert: alert})
}

func (h *Handler) handleAdminUpdateAlert(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_alerts_update"

	alertID := chi.URLParam(r, "alertID")
	if err := ValidateAlertIDParam(alertID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req updateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	upd := service.AlertUpdate{
		Title:             req.Title,
		Message:           req.Message,
		ExpiryTime:        req.ExpiryTime,
		ReminderFrequency: req.ReminderFrequency,
		RemindersEnabled:  req.RemindersEnabled,
	}
	if req.Severity != nil {
		severity := model.Severity(*req.Severity)
		upd.Severity = &severity
	}

	alert, err := h.Alerts.Update(r.Context(), alertID, upd)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alertResponse{Success: true, Alert: alert})
}

func (h *Handler) handleAdminArchiveAlert(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_alerts_archive"

	alertID := chi.URLParam(r, "alertID")
	if err := ValidateAlertIDParam(alertID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	alert, err := h.Alerts.Archive(r.Context(), alertID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alertResponse{Success: true, Alert: alert})
}

func (h *Handler) handleAdminSendReminder(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_alerts_send_reminder"

	alertID := chi.URLParam(r, "alertID")
	if err := ValidateAlertIDParam(alertID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	sent, err := h.Alerts.SendReminder(r.Context(), alertID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sendReminderResponse{Success: true, RemindersSent: sent})
}

func (h *Handler) handleAdminSystemStats(w http.ResponseWriter, r *http.Request) {
	const handlerName = "admin_stats_system"

	stats, err := h.Analytics.SystemStats(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, systemStatsResponse{Stats: stats})
}
