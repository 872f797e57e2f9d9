package repository

import (
	"context"
	"errors"
	"fmt"

	"alerting-platform/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TeamRepo реализует репозиторий команд на базе PostgreSQL.
type TeamRepo struct {
	db *Postgres
}

// NewTeamRepo создаёт новый экземпляр TeamRepo c переданным подключением к PostgreSQL.
func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// Create сохраняет новую команду. При конфликте по имени возвращает ErrTeamExists.
func (r *TeamRepo) Create(ctx context.Context, t model.Team) (model.Team, error) {
	row := r.db.Pool.QueryRow(ctx, `
INSERT INTO teams (id, name)
VALUES ($1, $2)
RETURNING id, name, created_at
`, t.ID, t.Name)

	var created model.Team
	if err := row.Scan(&created.ID, &created.Name, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.Team{}, ErrTeamExists
		}
		return model.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return created, nil
}

// GetByID возвращает команду по идентификатору вместе с числом участников.
// Если команда не найдена, возвращает ErrTeamNotFound.
func (r *TeamRepo) GetByID(ctx context.Context, teamID string) (model.Team, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT t.id, t.name, COUNT(u.id), t.created_at
FROM teams t
LEFT JOIN users u ON u.team_id = t.id
WHERE t.id = $1
GROUP BY t.id
`, teamID)

	var t model.Team
	if err := row.Scan(&t.ID, &t.Name, &t.MemberCount, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

// List возвращает все команды с числом участников, отсортированные по имени.
func (r *TeamRepo) List(ctx context.Context) ([]model.Team, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT t.id, t.name, COUNT(u.id), t.created_at
FROM teams t
LEFT JOIN users u ON u.team_id = t.id
GROUP BY t.id
ORDER BY t.name
`)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]model.Team, 0)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.MemberCount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return teams, nil
}
