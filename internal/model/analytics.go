package model

import "time"

// AlertsOverview — агрегаты по алертам для сводки.
type AlertsOverview struct {
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	Expired    int            `json:"expired"`
	Archived   int            `json:"archived"`
	BySeverity map[string]int `json:"by_severity"`
}

// UsersOverview — агрегаты по пользователям для сводки.
type UsersOverview struct {
	TotalUsers  int `json:"total_users"`
	ActiveUsers int `json:"active_users"`
}

// DeliveriesOverview — агрегаты по доставкам для сводки.
type DeliveriesOverview struct {
	Total    int     `json:"total"`
	Read     int     `json:"read"`
	Unread   int     `json:"unread"`
	Snoozed  int     `json:"snoozed"`
	ReadRate float64 `json:"read_rate"`
}

// Overview — общая сводка по системе.
type Overview struct {
	Alerts     AlertsOverview     `json:"alerts"`
	Users      UsersOverview      `json:"users"`
	Deliveries DeliveriesOverview `json:"deliveries"`
}

// AlertPerformance — статистика вовлечённости по одному алерту.
type AlertPerformance struct {
	AlertID   string   `json:"alert_id"`
	Title     string   `json:"title"`
	Severity  Severity `json:"severity"`
	Delivered int      `json:"delivered"`
	Read      int      `json:"read"`
	Snoozed   int      `json:"snoozed"`
	ReadRate  float64  `json:"read_rate"`
}

// DailyTrend — дневной срез активности.
type DailyTrend struct {
	Date               string `json:"date"`
	AlertsCreated      int    `json:"alerts_created"`
	DeliveriesCreated  int    `json:"deliveries_created"`
	DeliveriesRead     int    `json:"deliveries_read"`
	RemindersDelivered int    `json:"reminders_delivered"`
}

// UserEngagement — статистика вовлечённости по одному пользователю.
type UserEngagement struct {
	UserID   string  `json:"user_id"`
	Name     string  `json:"name"`
	Received int     `json:"received"`
	Read     int     `json:"read"`
	ReadRate float64 `json:"read_rate"`
}

// SystemStats — системные счётчики для административной статистики.
type SystemStats struct {
	TotalUsers      int `json:"total_users"`
	TotalTeams      int `json:"total_teams"`
	TotalAlerts     int `json:"total_alerts"`
	ActiveAlerts    int `json:"active_alerts"`
	TotalDeliveries int `json:"total_deliveries"`
	RemindersSent   int `json:"reminders_sent"`
}

// SystemHealth — результат проверки работоспособности системы.
type SystemHealth struct {
	OverallStatus     string    `json:"overall_status"`
	Database          string    `json:"database"`
	ReminderScheduler string    `json:"reminder_scheduler"`
	CheckedAt         time.Time `json:"checked_at"`
}
