// Package repository реализует хранение алертов, пользователей, команд и доставок в PostgreSQL.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alerting-platform/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AlertRepo реализует репозиторий алертов на базе PostgreSQL.
type AlertRepo struct {
	db *Postgres
}

// NewAlertRepo создаёт новый экземпляр AlertRepo c переданным подключением к PostgreSQL.
func NewAlertRepo(db *Postgres) *AlertRepo {
	return &AlertRepo{db: db}
}

const alertColumns = `
id, title, message, severity, visibility_type, team_id, target_user_id,
created_by, expiry_time, reminder_frequency_minutes, reminders_enabled,
is_active, created_at, updated_at`

// Create сохраняет новый алерт. При ссылке на несуществующего пользователя
// или команду возвращает ErrUserNotFound / ErrTeamNotFound.
func (r *AlertRepo) Create(ctx context.Context, a model.Alert) (model.Alert, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO alerts (id, title, message, severity, visibility_type, team_id, target_user_id,
                    created_by, expiry_time, reminder_frequency_minutes, reminders_enabled)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING `+alertColumns, a.ID, a.Title, a.Message, string(a.Severity), string(a.VisibilityType),
		a.TeamID, a.TargetUserID, a.CreatedBy, a.ExpiryTime, a.ReminderFrequency, a.RemindersEnabled)

	created, err := scanAlert(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			switch pgErr.ConstraintName {
			case "alerts_team_id_fkey":
				return model.Alert{}, ErrTeamNotFound
			default:
				return model.Alert{}, ErrUserNotFound
			}
		}
		return model.Alert{}, fmt.Errorf("insert alert: %w", err)
	}
	return created, nil
}

// GetByID возвращает алерт по идентификатору.
// Если алерт не найден, возвращает ErrAlertNotFound.
func (r *AlertRepo) GetByID(ctx context.Context, alertID string) (model.Alert, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, alertID)

	a, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Alert{}, ErrAlertNotFound
		}
		return model.Alert{}, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// Update перезаписывает изменяемые поля алерта и возвращает его новое состояние.
// Если алерт не найден, возвращает ErrAlertNotFound.
func (r *AlertRepo) Update(ctx context.Context, a model.Alert) (model.Alert, error) {
	row := r.db.Pool.QueryRow(ctx, `
UPDATE alerts
SET title = $2,
    message = $3,
    severity = $4,
    expiry_time = $5,
    reminder_frequency_minutes = $6,
    reminders_enabled = $7,
    updated_at = now()
WHERE id = $1
RETURNING `+alertColumns, a.ID, a.Title, a.Message, string(a.Severity),
		a.ExpiryTime, a.ReminderFrequency, a.RemindersEnabled)

	updated, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Alert{}, ErrAlertNotFound
		}
		return model.Alert{}, fmt.Errorf("update alert: %w", err)
	}
	return updated, nil
}

// Archive переводит алерт в неактивное состояние (is_active = FALSE) и возвращает его.
// Повторный вызов безопасен. Если алерт не найден, возвращает ErrAlertNotFound.
func (r *AlertRepo) Archive(ctx context.Context, alertID string) (model.Alert, error) {
	row := r.db.Pool.QueryRow(ctx, `
UPDATE alerts
SET is_active = FALSE,
    updated_at = now()
WHERE id = $1
RETURNING `+alertColumns, alertID)

	a, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Alert{}, ErrAlertNotFound
		}
		return model.Alert{}, fmt.Errorf("archive alert: %w", err)
	}
	return a, nil
}

// ListFilter задаёт фильтры для выборки алертов.
type ListFilter struct {
	// Status: "", "active", "archived" или "expired".
	Status string
	// Severity: "", "info", "warning" или "critical".
	Severity string
}

// List возвращает алерты по фильтру, новые первыми.
func (r *AlertRepo) List(ctx context.Context, f ListFilter) ([]model.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts`
	args := make([]any, 0, 1)

	switch f.Status {
	case "active":
		query += ` WHERE is_active = TRUE AND expiry_time > now()`
	case "archived":
		query += ` WHERE is_active = FALSE`
	case "expired":
		query += ` WHERE is_active = TRUE AND expiry_time <= now()`
	default:
		query += ` WHERE TRUE`
	}

	if f.Severity != "" {
		args = append(args, f.Severity)
		query += fmt.Sprintf(` AND severity = $%d`, len(args))
	}

	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]model.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return alerts, nil
}

// ListRemindable возвращает активные неистёкшие алерты с включёнными напоминаниями.
// Используется планировщиком напоминаний.
func (r *AlertRepo) ListRemindable(ctx context.Context) ([]model.Alert, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT `+alertColumns+`
FROM alerts
WHERE is_active = TRUE AND reminders_enabled = TRUE AND expiry_time > now()
ORDER BY created_at
`)
	if err != nil {
		return nil, fmt.Errorf("query remindable alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]model.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return alerts, nil
}

// scanAlert читает строку результата в model.Alert.
func scanAlert(row pgx.Row) (model.Alert, error) {
	var a model.Alert
	var severity, visibility string
	var createdAt, updatedAt time.Time

	if err := row.Scan(&a.ID, &a.Title, &a.Message, &severity, &visibility,
		&a.TeamID, &a.TargetUserID, &a.CreatedBy, &a.ExpiryTime,
		&a.ReminderFrequency, &a.RemindersEnabled, &a.IsActive,
		&createdAt, &updatedAt); err != nil {
		return model.Alert{}, err
	}

	a.Severity = model.Severity(severity)
	a.VisibilityType = model.VisibilityType(visibility)
	a.CreatedAt = &createdAt
	a.UpdatedAt = &updatedAt
	return a, nil
}
