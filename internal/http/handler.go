package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"alerting-platform/internal/model"
	"alerting-platform/internal/service"
)

// AlertService описывает административные операции над алертами.
type AlertService interface {
	Create(ctx context.Context, input model.Alert) (model.Alert, error)
	Get(ctx context.Context, alertID string) (model.Alert, error)
	Update(ctx context.Context, alertID string, upd service.AlertUpdate) (model.Alert, error)
	Archive(ctx context.Context, alertID string) (model.Alert, error)
	List(ctx context.Context, status, severity string) ([]model.Alert, error)
	SendReminder(ctx context.Context, alertID string) (int, error)
}

// UserService описывает операции над пользователями.
type UserService interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// TeamService описывает операции над командами.
type TeamService interface {
	Create(ctx context.Context, t model.Team) (model.Team, error)
	List(ctx context.Context) ([]model.Team, error)
}

// DeliveryService описывает пользовательские операции над доставками.
type DeliveryService interface {
	ListUserAlerts(ctx context.Context, userID string) ([]model.UserAlert, error)
	Dashboard(ctx context.Context, userID string) (model.DashboardSummary, error)
	MarkRead(ctx context.Context, alertID, userID string) (model.Delivery, error)
	MarkUnread(ctx context.Context, alertID, userID string) (model.Delivery, error)
	Snooze(ctx context.Context, alertID, userID string) (model.Delivery, error)
	History(ctx context.Context, userID string, page, perPage int) ([]model.Delivery, int, error)
}

// AnalyticsService описывает аналитические отчёты и проверку здоровья.
type AnalyticsService interface {
	Overview(ctx context.Context) (model.Overview, error)
	AlertPerformance(ctx context.Context, limit int) ([]model.AlertPerformance, error)
	DailyTrends(ctx context.Context, days int) ([]model.DailyTrend, error)
	UserEngagement(ctx context.Context, limit int) ([]model.UserEngagement, error)
	SystemStats(ctx context.Context) (model.SystemStats, error)
	SystemHealth(ctx context.Context) model.SystemHealth
}

// Handler связывает HTTP-маршруты с доменными сервисами.
type Handler struct {
	Alerts     AlertService
	Users      UserService
	Teams      TeamService
	Deliveries DeliveryService
	Analytics  AnalyticsService
	Log        *slog.Logger
}

// NewHandler создаёт HTTP-обработчик поверх доменных сервисов.
func NewHandler(
	alerts AlertService,
	users UserService,
	teams TeamService,
	deliveries DeliveryService,
	analytics AnalyticsService,
	log *slog.Logger,
) *Handler {
	return &Handler{
		Alerts:     alerts,
		Users:      users,
		Teams:      teams,
		Deliveries: deliveries,
		Analytics:  analytics,
		Log:        log,
	}
}

// Router собирает маршруты admin/user/analytics API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", h.handleAdminListUsers)
			r.Post("/users", h.handleAdminCreateUser)
			r.Get("/teams", h.handleAdminListTeams)
			r.Post("/teams", h.handleAdminCreateTeam)

			r.Get("/alerts", h.handleAdminListAlerts)
			r.Post("/alerts", h.handleAdminCreateAlert)
			r.Get("/alerts/{alertID}", h.handleAdminGetAlert)
			r.Put("/alerts/{alertID}", h.handleAdminUpdateAlert)
			r.Post("/alerts/{alertID}/archive", h.handleAdminArchiveAlert)
			r.Post("/alerts/{alertID}/send-reminder", h.handleAdminSendReminder)

			r.Get("/stats/system", h.handleAdminSystemStats)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/alerts", h.handleUserListAlerts)
			r.Get("/dashboard", h.handleUserDashboard)
			r.Post("/alerts/{alertID}/read", h.handleUserMarkRead)
			r.Post("/alerts/{alertID}/unread", h.handleUserMarkUnread)
			r.Post("/alerts/{alertID}/snooze", h.handleUserSnooze)
			r.Get("/notifications/history", h.handleUserHistory)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/overview", h.handleAnalyticsOverview)
			r.Get("/alerts/performance", h.handleAnalyticsAlertPerformance)
			r.Get("/trends/daily", h.handleAnalyticsDailyTrends)
			r.Get("/users/engagement", h.handleAnalyticsUserEngagement)
			r.Get("/system/health", h.handleAnalyticsSystemHealth)
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
