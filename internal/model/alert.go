// Package model содержит доменные структуры для алертов, пользователей, команд и доставок.
package model

import "time"

// Severity представляет уровень важности алерта.
type Severity string

const (
	// SeverityInfo — информационный алерт.
	SeverityInfo Severity = "info"
	// SeverityWarning — предупреждение.
	SeverityWarning Severity = "warning"
	// SeverityCritical — критический алерт.
	SeverityCritical Severity = "critical"
)

// VisibilityType определяет область видимости алерта.
type VisibilityType string

const (
	// VisibilityOrganization — алерт виден всем активным пользователям.
	VisibilityOrganization VisibilityType = "organization"
	// VisibilityTeam — алерт виден участникам указанной команды.
	VisibilityTeam VisibilityType = "team"
	// VisibilityUser — алерт виден только указанному пользователю.
	VisibilityUser VisibilityType = "user"
)

// Alert описывает полный объект алерта: содержимое, область видимости,
// настройки напоминаний, срок действия и статус.
type Alert struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Message           string         `json:"message"`
	Severity          Severity       `json:"severity"`
	VisibilityType    VisibilityType `json:"visibility_type"`
	TeamID            *string        `json:"team_id,omitempty"`
	TargetUserID      *string        `json:"target_user_id,omitempty"`
	CreatedBy         string         `json:"created_by"`
	ExpiryTime        time.Time      `json:"expiry_time"`
	ReminderFrequency int            `json:"reminder_frequency_minutes"`
	RemindersEnabled  bool           `json:"reminders_enabled"`
	IsActive          bool           `json:"is_active"`
	CreatedAt         *time.Time     `json:"created_at,omitempty"`
	UpdatedAt         *time.Time     `json:"updated_at,omitempty"`
}

// Expired сообщает, истёк ли срок действия алерта на момент now.
func (a Alert) Expired(now time.Time) bool {
	return !a.ExpiryTime.After(now)
}

// UserAlert описывает алерт в пользовательской выдаче:
// сам алерт плюс состояние доставки для конкретного пользователя.
type UserAlert struct {
	Alert
	ReadStatus   DeliveryStatus `json:"read_status"`
	SnoozedUntil *time.Time     `json:"snoozed_until,omitempty"`
}
