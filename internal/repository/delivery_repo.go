package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alerting-platform/internal/model"

	"github.com/jackc/pgx/v5"
)

// DeliveryRepo реализует репозиторий доставок (связка алерт—пользователь) на базе PostgreSQL.
type DeliveryRepo struct {
	db *Postgres
}

// NewDeliveryRepo создаёт новый экземпляр DeliveryRepo c переданным подключением к PostgreSQL.
func NewDeliveryRepo(db *Postgres) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

// visibleUsersCondition — условие видимости алерта a для пользователя u.
// Используется во всех запросах материализации доставок.
const visibleUsersCondition = `
u.is_active = TRUE AND (
    a.visibility_type = 'organization'
    OR (a.visibility_type = 'team' AND u.team_id = a.team_id)
    OR (a.visibility_type = 'user' AND u.id = a.target_user_id)
)`

// EnsureForAlert создаёт недостающие доставки алерта для всех видящих его пользователей.
// Вставка идемпотентна: существующие доставки не затрагиваются.
func (r *DeliveryRepo) EnsureForAlert(ctx context.Context, alertID string) error {
	q := r.db.GetQueryExecutor(ctx)

	_, err := q.Exec(ctx, `
INSERT INTO deliveries (alert_id, user_id)
SELECT a.id, u.id
FROM alerts a
CROSS JOIN users u
WHERE a.id = $1
  AND a.is_active = TRUE
  AND a.expiry_time > now()
  AND `+visibleUsersCondition+`
ON CONFLICT (alert_id, user_id) DO NOTHING
`, alertID)
	if err != nil {
		return fmt.Errorf("ensure deliveries for alert: %w", err)
	}
	return nil
}

// EnsureForUser создаёт недостающие доставки всех активных видимых алертов для пользователя.
func (r *DeliveryRepo) EnsureForUser(ctx context.Context, userID string) error {
	q := r.db.GetQueryExecutor(ctx)

	_, err := q.Exec(ctx, `
INSERT INTO deliveries (alert_id, user_id)
SELECT a.id, u.id
FROM alerts a
CROSS JOIN users u
WHERE u.id = $1
  AND a.is_active = TRUE
  AND a.expiry_time > now()
  AND `+visibleUsersCondition+`
ON CONFLICT (alert_id, user_id) DO NOTHING
`, userID)
	if err != nil {
		return fmt.Errorf("ensure deliveries for user: %w", err)
	}
	return nil
}

// ListUserAlerts возвращает активные неистёкшие алерты, видимые пользователю,
// вместе с состоянием их доставки. Новые алерты первыми.
func (r *DeliveryRepo) ListUserAlerts(ctx context.Context, userID string) ([]model.UserAlert, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT a.id, a.title, a.message, a.severity, a.visibility_type, a.team_id, a.target_user_id,
       a.created_by, a.expiry_time, a.reminder_frequency_minutes, a.reminders_enabled,
       a.is_active, a.created_at, a.updated_at,
       d.status, d.snoozed_until
FROM deliveries d
JOIN alerts a ON a.id = d.alert_id
WHERE d.user_id = $1
  AND a.is_active = TRUE
  AND a.expiry_time > now()
ORDER BY a.created_at DESC, a.id
`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]model.UserAlert, 0)
	for rows.Next() {
		var ua model.UserAlert
		var severity, visibility, status string
		var createdAt, updatedAt time.Time

		if err := rows.Scan(&ua.ID, &ua.Title, &ua.Message, &severity, &visibility,
			&ua.TeamID, &ua.TargetUserID, &ua.CreatedBy, &ua.ExpiryTime,
			&ua.ReminderFrequency, &ua.RemindersEnabled, &ua.IsActive,
			&createdAt, &updatedAt, &status, &ua.SnoozedUntil); err != nil {
			return nil, fmt.Errorf("scan user alert: %w", err)
		}

		ua.Severity = model.Severity(severity)
		ua.VisibilityType = model.VisibilityType(visibility)
		ua.CreatedAt = &createdAt
		ua.UpdatedAt = &updatedAt
		ua.ReadStatus = model.DeliveryStatus(status)
		alerts = append(alerts, ua)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return alerts, nil
}

// DashboardCounts возвращает разбивку доставок пользователя по статусам
// для активных неистёкших алертов.
func (r *DeliveryRepo) DashboardCounts(ctx context.Context, userID string) (model.DashboardSummary, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT COUNT(*) FILTER (WHERE d.status = 'unread'),
       COUNT(*) FILTER (WHERE d.status = 'read'),
       COUNT(*) FILTER (WHERE d.status = 'snoozed'),
       COUNT(*)
FROM deliveries d
JOIN alerts a ON a.id = d.alert_id
WHERE d.user_id = $1
  AND a.is_active = TRUE
  AND a.expiry_time > now()
`, userID)

	var s model.DashboardSummary
	if err := row.Scan(&s.UnreadCount, &s.ReadCount, &s.SnoozedCount, &s.TotalAlerts); err != nil {
		return model.DashboardSummary{}, fmt.Errorf("count deliveries: %w", err)
	}
	return s, nil
}

// SetStatus обновляет состояние доставки и возвращает её новое содержимое.
// readAt и snoozedUntil перезаписываются переданными значениями (nil сбрасывает).
// Если доставка не найдена, возвращает ErrDeliveryNotFound.
func (r *DeliveryRepo) SetStatus(
	ctx context.Context,
	alertID, userID string,
	status model.DeliveryStatus,
	readAt, snoozedUntil *time.Time,
) (model.Delivery, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
UPDATE deliveries
SET status = $3,
    read_at = $4,
    snoozed_until = $5,
    updated_at = now()
WHERE alert_id = $1 AND user_id = $2
RETURNING id, alert_id, user_id, status, snoozed_until, read_at,
          reminder_count, last_reminded_at, created_at, updated_at
`, alertID, userID, string(status), readAt, snoozedUntil)

	var d model.Delivery
	var st string
	if err := row.Scan(&d.ID, &d.AlertID, &d.UserID, &st, &d.SnoozedUntil, &d.ReadAt,
		&d.ReminderCount, &d.LastRemindedAt, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Delivery{}, ErrDeliveryNotFound
		}
		return model.Delivery{}, fmt.Errorf("update delivery: %w", err)
	}
	d.Status = model.DeliveryStatus(st)
	return d, nil
}

// History возвращает страницу истории доставок пользователя (включая архивные
// и истёкшие алерты) и общее число записей. Новые доставки первыми.
func (r *DeliveryRepo) History(ctx context.Context, userID string, limit, offset int) ([]model.Delivery, int, error) {
	var total int
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM deliveries WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count history: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, `
SELECT d.id, d.alert_id, d.user_id, d.status, d.snoozed_until, d.read_at,
       d.reminder_count, d.last_reminded_at, d.created_at, d.updated_at,
       a.title, a.severity
FROM deliveries d
JOIN alerts a ON a.id = d.alert_id
WHERE d.user_id = $1
ORDER BY d.created_at DESC, d.id
LIMIT $2 OFFSET $3
`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	deliveries := make([]model.Delivery, 0)
	for rows.Next() {
		var d model.Delivery
		var st, severity string
		if err := rows.Scan(&d.ID, &d.AlertID, &d.UserID, &st, &d.SnoozedUntil, &d.ReadAt,
			&d.ReminderCount, &d.LastRemindedAt, &d.CreatedAt, &d.UpdatedAt,
			&d.AlertTitle, &severity); err != nil {
			return nil, 0, fmt.Errorf("scan delivery: %w", err)
		}
		d.Status = model.DeliveryStatus(st)
		d.AlertSeverity = model.Severity(severity)
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return deliveries, total, nil
}

// RemindEligible отправляет напоминания по доставкам алерта: непрочитанным
// и отложенным с истёкшим сроком снуза. Отложенные возвращаются в unread.
// olderThan == nil означает принудительную отправку без учёта частоты напоминаний.
// Возвращает число затронутых доставок.
func (r *DeliveryRepo) RemindEligible(ctx context.Context, alertID string, olderThan *time.Time) (int, error) {
	q := r.db.GetQueryExecutor(ctx)

	query := `
UPDATE deliveries
SET reminder_count = reminder_count + 1,
    last_reminded_at = now(),
    status = 'unread',
    snoozed_until = NULL,
    updated_at = now()
WHERE alert_id = $1
  AND (status = 'unread' OR (status = 'snoozed' AND snoozed_until <= now()))`
	args := []any{alertID}

	if olderThan != nil {
		args = append(args, *olderThan)
		query += ` AND (last_reminded_at IS NULL OR last_reminded_at <= $2)`
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("remind deliveries: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
