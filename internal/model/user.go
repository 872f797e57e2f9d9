package model

import "time"

// User описывает пользователя платформы: имя, email, признак администратора,
// команду (опционально) и статус активности.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	IsAdmin   bool       `json:"is_admin"`
	TeamID    *string    `json:"team_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
