package model

import "time"

// Team описывает команду. Участники команды — пользователи с соответствующим team_id.
type Team struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	MemberCount int        `json:"member_count"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
