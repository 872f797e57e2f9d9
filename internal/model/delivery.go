package model

import "time"

// DeliveryStatus представляет состояние доставки алерта пользователю.
type DeliveryStatus string

const (
	// DeliveryUnread — доставка не прочитана.
	DeliveryUnread DeliveryStatus = "unread"
	// DeliveryRead — доставка прочитана.
	DeliveryRead DeliveryStatus = "read"
	// DeliverySnoozed — доставка отложена до конца текущего дня.
	DeliverySnoozed DeliveryStatus = "snoozed"
)

// Delivery связывает алерт с пользователем и хранит состояние
// прочитано/не прочитано/отложено вместе с историей напоминаний.
type Delivery struct {
	ID             string         `json:"id"`
	AlertID        string         `json:"alert_id"`
	UserID         string         `json:"user_id"`
	Status         DeliveryStatus `json:"status"`
	SnoozedUntil   *time.Time     `json:"snoozed_until,omitempty"`
	ReadAt         *time.Time     `json:"read_at,omitempty"`
	ReminderCount  int            `json:"reminder_count"`
	LastRemindedAt *time.Time     `json:"last_reminded_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Поля алерта для выдачи истории уведомлений.
	AlertTitle    string   `json:"alert_title,omitempty"`
	AlertSeverity Severity `json:"alert_severity,omitempty"`
}

// DashboardSummary описывает сводку по доставкам пользователя.
type DashboardSummary struct {
	UnreadCount  int `json:"unread_count"`
	ReadCount    int `json:"read_count"`
	SnoozedCount int `json:"snoozed_count"`
	TotalAlerts  int `json:"total_alerts"`
}
