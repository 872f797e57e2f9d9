package service

import (
	"context"
	"time"

	"alerting-platform/internal/model"
)

// AnalyticsRepository описывает контракт аналитического репозитория для бизнес-слоя.
type AnalyticsRepository interface {
	Overview(ctx context.Context) (model.Overview, error)
	AlertPerformance(ctx context.Context, limit int) ([]model.AlertPerformance, error)
	DailyTrends(ctx context.Context, days int) ([]model.DailyTrend, error)
	UserEngagement(ctx context.Context, limit int) ([]model.UserEngagement, error)
	SystemStats(ctx context.Context) (model.SystemStats, error)
	Ping(ctx context.Context) error
}

// Ограничения на параметры аналитических выборок.
const (
	defaultLimit = 10
	maxLimit     = 100
	defaultDays  = 7
	maxDays      = 90
)

// AnalyticsService отдаёт аналитические отчёты и проверку работоспособности системы.
type AnalyticsService struct {
	repo AnalyticsRepository

	// schedulerRunning сообщает, работает ли планировщик напоминаний.
	schedulerRunning func() bool
}

// NewAnalyticsService создаёт новый аналитический сервис.
// schedulerRunning может быть nil, тогда планировщик считается выключенным.
func NewAnalyticsService(repo AnalyticsRepository, schedulerRunning func() bool) *AnalyticsService {
	return &AnalyticsService{
		repo:             repo,
		schedulerRunning: schedulerRunning,
	}
}

// Overview возвращает общую сводку по системе.
func (s *AnalyticsService) Overview(ctx context.Context) (model.Overview, error) {
	ov, err := s.repo.Overview(ctx)
	if err != nil {
		return model.Overview{}, &AppError{Code: "INTERNAL", Message: "failed to build overview", Status: 500, Err: err}
	}
	return ov, nil
}

// AlertPerformance возвращает топ алертов по вовлечённости.
func (s *AnalyticsService) AlertPerformance(ctx context.Context, limit int) ([]model.AlertPerformance, error) {
	perf, err := s.repo.AlertPerformance(ctx, clamp(limit, defaultLimit, maxLimit))
	if err != nil {
		return nil, &AppError{Code: "INTERNAL", Message: "failed to query alert performance", Status: 500, Err: err}
	}
	return perf, nil
}

// DailyTrends возвращает дневные срезы активности за последние days дней.
func (s *AnalyticsService) DailyTrends(ctx context.Context, days int) ([]model.DailyTrend, error) {
	trends, err := s.repo.DailyTrends(ctx, clamp(days, defaultDays, maxDays))
	if err != nil {
		return nil, &AppError{Code: "INTERNAL", Message: "failed to query daily trends", Status: 500, Err: err}
	}
	return trends, nil
}

// UserEngagement возвращает топ пользователей по вовлечённости.
func (s *AnalyticsService) UserEngagement(ctx context.Context, limit int) ([]model.UserEngagement, error) {
	eng, err := s.repo.UserEngagement(ctx, clamp(limit, defaultLimit, maxLimit))
	if err != nil {
		return nil, &AppError{Code: "INTERNAL", Message: "failed to query user engagement", Status: 500, Err: err}
	}
	return eng, nil
}

// SystemStats возвращает системные счётчики для административной статистики.
func (s *AnalyticsService) SystemStats(ctx context.Context) (model.SystemStats, error) {
	stats, err := s.repo.SystemStats(ctx)
	if err != nil {
		return model.SystemStats{}, &AppError{Code: "INTERNAL", Message: "failed to query system stats", Status: 500, Err: err}
	}
	return stats, nil
}

// SystemHealth проверяет доступность БД и состояние планировщика напоминаний.
// Система считается healthy при живой БД и работающем планировщике,
// degraded — при остановленном планировщике, unhealthy — при недоступной БД.
func (s *AnalyticsService) SystemHealth(ctx context.Context) model.SystemHealth {
	health := model.SystemHealth{
		Database:          "up",
		ReminderScheduler: "stopped",
		CheckedAt:         time.Now().UTC(),
	}

	if err := s.repo.Ping(ctx); err != nil {
		health.Database = "down"
		health.OverallStatus = "unhealthy"
		return health
	}

	if s.schedulerRunning != nil && s.schedulerRunning() {
		health.ReminderScheduler = "running"
		health.OverallStatus = "healthy"
	} else {
		health.OverallStatus = "degraded"
	}

	return health
}

// clamp нормализует параметр выборки: значения вне (0, max] заменяются на def/max.
func clamp(v, def, max int) int {
	if v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}
