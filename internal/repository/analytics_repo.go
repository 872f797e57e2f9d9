package repository

import (
	"context"
	"fmt"

	"alerting-platform/internal/model"
)

// AnalyticsRepo выполняет агрегирующие запросы для аналитических отчётов.
type AnalyticsRepo struct {
	db *Postgres
}

// NewAnalyticsRepo создаёт новый экземпляр AnalyticsRepo c переданным подключением к PostgreSQL.
func NewAnalyticsRepo(db *Postgres) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// Overview собирает общую сводку по алертам, пользователям и доставкам.
func (r *AnalyticsRepo) Overview(ctx context.Context) (model.Overview, error) {
	var ov model.Overview

	row := r.db.Pool.QueryRow(ctx, `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE is_active = TRUE AND expiry_time > now()),
       COUNT(*) FILTER (WHERE is_active = TRUE AND expiry_time <= now()),
       COUNT(*) FILTER (WHERE is_active = FALSE)
FROM alerts
`)
	if err := row.Scan(&ov.Alerts.Total, &ov.Alerts.Active, &ov.Alerts.Expired, &ov.Alerts.Archived); err != nil {
		return model.Overview{}, fmt.Errorf("count alerts: %w", err)
	}

	ov.Alerts.BySeverity = make(map[string]int)
	rows, err := r.db.Pool.Query(ctx, `SELECT severity, COUNT(*) FROM alerts GROUP BY severity`)
	if err != nil {
		return model.Overview{}, fmt.Errorf("count alerts by severity: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var severity string
		var n int
		if err := rows.Scan(&severity, &n); err != nil {
			return model.Overview{}, fmt.Errorf("scan severity count: %w", err)
		}
		ov.Alerts.BySeverity[severity] = n
	}
	if err := rows.Err(); err != nil {
		return model.Overview{}, fmt.Errorf("rows error: %w", err)
	}

	row = r.db.Pool.QueryRow(ctx, `
SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active = TRUE)
FROM users
`)
	if err := row.Scan(&ov.Users.TotalUsers, &ov.Users.ActiveUsers); err != nil {
		return model.Overview{}, fmt.Errorf("count users: %w", err)
	}

	row = r.db.Pool.QueryRow(ctx, `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE status = 'read'),
       COUNT(*) FILTER (WHERE status = 'unread'),
       COUNT(*) FILTER (WHERE status = 'snoozed')
FROM deliveries
`)
	if err := row.Scan(&ov.Deliveries.Total, &ov.Deliveries.Read, &ov.Deliveries.Unread, &ov.Deliveries.Snoozed); err != nil {
		return model.Overview{}, fmt.Errorf("count deliveries: %w", err)
	}
	if ov.Deliveries.Total > 0 {
		ov.Deliveries.ReadRate = float64(ov.Deliveries.Read) / float64(ov.Deliveries.Total)
	}

	return ov, nil
}

// AlertPerformance возвращает топ алертов по числу доставок с разбивкой
// на прочитанные и отложенные.
func (r *AnalyticsRepo) AlertPerformance(ctx context.Context, limit int) ([]model.AlertPerformance, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT a.id, a.title, a.severity,
       COUNT(d.id),
       COUNT(d.id) FILTER (WHERE d.status = 'read'),
       COUNT(d.id) FILTER (WHERE d.status = 'snoozed')
FROM alerts a
LEFT JOIN deliveries d ON d.alert_id = a.id
GROUP BY a.id
ORDER BY COUNT(d.id) DESC, a.created_at DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query alert performance: %w", err)
	}
	defer rows.Close()

	res := make([]model.AlertPerformance, 0)
	for rows.Next() {
		var p model.AlertPerformance
		var severity string
		if err := rows.Scan(&p.AlertID, &p.Title, &severity, &p.Delivered, &p.Read, &p.Snoozed); err != nil {
			return nil, fmt.Errorf("scan alert performance: %w", err)
		}
		p.Severity = model.Severity(severity)
		if p.Delivered > 0 {
			p.ReadRate = float64(p.Read) / float64(p.Delivered)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// DailyTrends возвращает дневные срезы активности за последние days дней,
// включая дни без событий.
func (r *AnalyticsRepo) DailyTrends(ctx context.Context, days int) ([]model.DailyTrend, error) {
	rows, err := r.db.Pool.Query(ctx, `
WITH series AS (
    SELECT generate_series(
        (now() AT TIME ZONE 'UTC')::date - ($1::int - 1),
        (now() AT TIME ZONE 'UTC')::date,
        '1 day'
    )::date AS day
)
SELECT s.day::text,
       (SELECT COUNT(*) FROM alerts a WHERE (a.created_at AT TIME ZONE 'UTC')::date = s.day),
       (SELECT COUNT(*) FROM deliveries d WHERE (d.created_at AT TIME ZONE 'UTC')::date = s.day),
       (SELECT COUNT(*) FROM deliveries d WHERE d.read_at IS NOT NULL AND (d.read_at AT TIME ZONE 'UTC')::date = s.day),
       (SELECT COUNT(*) FROM deliveries d WHERE d.last_reminded_at IS NOT NULL AND (d.last_reminded_at AT TIME ZONE 'UTC')::date = s.day)
FROM series s
ORDER BY s.day
`, days)
	if err != nil {
		return nil, fmt.Errorf("query daily trends: %w", err)
	}
	defer rows.Close()

	res := make([]model.DailyTrend, 0, days)
	for rows.Next() {
		var t model.DailyTrend
		if err := rows.Scan(&t.Date, &t.AlertsCreated, &t.DeliveriesCreated, &t.DeliveriesRead, &t.RemindersDelivered); err != nil {
			return nil, fmt.Errorf("scan daily trend: %w", err)
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// UserEngagement возвращает топ пользователей по числу полученных доставок.
func (r *AnalyticsRepo) UserEngagement(ctx context.Context, limit int) ([]model.UserEngagement, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT u.id, u.name,
       COUNT(d.id),
       COUNT(d.id) FILTER (WHERE d.status = 'read')
FROM users u
LEFT JOIN deliveries d ON d.user_id = u.id
GROUP BY u.id
ORDER BY COUNT(d.id) DESC, u.name
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query user engagement: %w", err)
	}
	defer rows.Close()

	res := make([]model.UserEngagement, 0)
	for rows.Next() {
		var e model.UserEngagement
		if err := rows.Scan(&e.UserID, &e.Name, &e.Received, &e.Read); err != nil {
			return nil, fmt.Errorf("scan user engagement: %w", err)
		}
		if e.Received > 0 {
			e.ReadRate = float64(e.Read) / float64(e.Received)
		}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// SystemStats возвращает системные счётчики для административной статистики.
func (r *AnalyticsRepo) SystemStats(ctx context.Context) (model.SystemStats, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT (SELECT COUNT(*) FROM users),
       (SELECT COUNT(*) FROM teams),
       (SELECT COUNT(*) FROM alerts),
       (SELECT COUNT(*) FROM alerts WHERE is_active = TRUE AND expiry_time > now()),
       (SELECT COUNT(*) FROM deliveries),
       (SELECT COALESCE(SUM(reminder_count), 0) FROM deliveries)
`)

	var s model.SystemStats
	if err := row.Scan(&s.TotalUsers, &s.TotalTeams, &s.TotalAlerts,
		&s.ActiveAlerts, &s.TotalDeliveries, &s.RemindersSent); err != nil {
		return model.SystemStats{}, fmt.Errorf("count system stats: %w", err)
	}
	return s, nil
}

// Ping проверяет доступность базы данных.
func (r *AnalyticsRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
