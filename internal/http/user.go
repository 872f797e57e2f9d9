package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"alerting-platform/internal/model"
	"alerting-platform/internal/service"
)

func (h *Handler) handleUserListAlerts(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_alerts_list"

	userID := r.URL.Query().Get("user_id")
	if err := ValidateUserIDQuery(userID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	alerts, err := h.Deliveries.ListUserAlerts(r.Context(), userID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listUserAlertsResponse{Alerts: alerts})
}

func (h *Handler) handleUserDashboard(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_dashboard"

	userID := r.URL.Query().Get("user_id")
	if err := ValidateUserIDQuery(userID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	summary, err := h.Deliveries.Dashboard(r.Context(), userID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dashboardResponse{Summary: summary})
}

func (h *Handler) handleUserMarkRead(w http.ResponseWriter, r *http.Request) {
	h.handleAlertAction(w, r, "user_alerts_read", h.Deliveries.MarkRead)
}

func (h *Handler) handleUserMarkUnread(w http.ResponseWriter, r *http.Request) {
	h.handleAlertAction(w, r, "user_alerts_unread", h.Deliveries.MarkUnread)
}

func (h *Handler) handleUserSnooze(w http.ResponseWriter, r *http.Request) {
	h.handleAlertAction(w, r, "user_alerts_snooze", h.Deliveries.Snooze)
}

// handleAlertAction — общий код для read/unread/snooze: разбор запроса,
// валидация и выдача нового состояния доставки.
func (h *Handler) handleAlertAction(
	w http.ResponseWriter,
	r *http.Request,
	handlerName string,
	action func(ctx context.Context, alertID, userID string) (model.Delivery, error),
) {
	alertID := chi.URLParam(r, "alertID")
	if err := ValidateAlertIDParam(alertID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req alertActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}
	if err := ValidateUserIDQuery(req.UserID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	delivery, err := action(r.Context(), alertID, req.UserID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alertActionResponse{
		Success:      true,
		Status:       string(delivery.Status),
		SnoozedUntil: delivery.SnoozedUntil,
	})
}

func (h *Handler) handleUserHistory(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_notifications_history"

	query := r.URL.Query()

	userID := query.Get("user_id")
	if err := ValidateUserIDQuery(userID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	page, err := ParseIntQuery(query, "page", 1)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	perPage, err := ParseIntQuery(query, "per_page", 20)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if perPage > 100 {
		perPage = 100
	}

	deliveries, total, err := h.Deliveries.History(r.Context(), userID, page, perPage)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}

	h.writeJSON(w, http.StatusOK, historyResponse{
		Deliveries: deliveries,
		Pagination: pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
