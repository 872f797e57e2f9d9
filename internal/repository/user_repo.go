package repository

import (
	"context"
	"errors"
	"fmt"

	"alerting-platform/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UserRepo реализует репозиторий пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// Create сохраняет нового пользователя. При занятом email возвращает ErrEmailExists,
// при ссылке на несуществующую команду — ErrTeamNotFound.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO users (id, name, email, is_admin, team_id, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, email, is_admin, team_id, is_active, created_at
`, u.ID, u.Name, u.Email, u.IsAdmin, u.TeamID, u.IsActive)

	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return model.User{}, ErrEmailExists
			}
			if pgErr.Code == "23503" {
				return model.User{}, ErrTeamNotFound
			}
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// GetByID возвращает пользователя по идентификатору.
// Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT id, name, email, is_admin, team_id, is_active, created_at
FROM users
WHERE id = $1
`, userID)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List возвращает всех пользователей, отсортированных по времени создания.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, name, email, is_admin, team_id, is_active, created_at
FROM users
ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// scanUser читает строку результата в model.User.
func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin, &u.TeamID, &u.IsActive, &u.CreatedAt); err != nil {
		return model.User{}, err
	}
	return u, nil
}
