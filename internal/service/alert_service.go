// Package service содержит бизнес-логику жизненного цикла алертов,
// доставок и напоминаний.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"alerting-platform/internal/model"
	"alerting-platform/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AlertRepository описывает контракт репозитория алертов для бизнес-слоя.
type AlertRepository interface {
	Create(ctx context.Context, a model.Alert) (model.Alert, error)
	GetByID(ctx context.Context, alertID string) (model.Alert, error)
	Update(ctx context.Context, a model.Alert) (model.Alert, error)
	Archive(ctx context.Context, alertID string) (model.Alert, error)
	List(ctx context.Context, f repository.ListFilter) ([]model.Alert, error)
	ListRemindable(ctx context.Context) ([]model.Alert, error)
}

// DeliveryRepository описывает контракт репозитория доставок для бизнес-слоя.
type DeliveryRepository interface {
	EnsureForAlert(ctx context.Context, alertID string) error
	EnsureForUser(ctx context.Context, userID string) error
	ListUserAlerts(ctx context.Context, userID string) ([]model.UserAlert, error)
	DashboardCounts(ctx context.Context, userID string) (model.DashboardSummary, error)
	SetStatus(ctx context.Context, alertID, userID string, status model.DeliveryStatus, readAt, snoozedUntil *time.Time) (model.Delivery, error)
	History(ctx context.Context, userID string, limit, offset int) ([]model.Delivery, int, error)
	RemindEligible(ctx context.Context, alertID string, olderThan *time.Time) (int, error)
}

// AlertUpdate описывает частичное обновление алерта: nil-поля не изменяются.
type AlertUpdate struct {
	Title             *string
	Message           *string
	Severity          *model.Severity
	ExpiryTime        *time.Time
	ReminderFrequency *int
	RemindersEnabled  *bool
}

// DefaultReminderFrequency — частота напоминаний по умолчанию, минуты ("каждые 2 часа").
const DefaultReminderFrequency = 120

// AlertService инкапсулирует бизнес-логику создания, обновления, архивации
// алертов и отправки напоминаний по ним.
type AlertService struct {
	alertRepo    AlertRepository
	deliveryRepo DeliveryRepository
	userRepo     UserRepository
	teamRepo     TeamRepository
	txManager    TransactionManager
}

// NewAlertService создаёт новый сервис для работы с алертами.
func NewAlertService(
	alertRepo AlertRepository,
	deliveryRepo DeliveryRepository,
	userRepo UserRepository,
	teamRepo TeamRepository,
	txManager TransactionManager,
) *AlertService {
	return &AlertService{
		alertRepo:    alertRepo,
		deliveryRepo: deliveryRepo,
		userRepo:     userRepo,
		teamRepo:     teamRepo,
		txManager:    txManager,
	}
}

// Create валидирует входные данные и создаёт новый алерт.
// Проверяет существование автора и цели видимости (команды или пользователя).
func (s *AlertService) Create(ctx context.Context, input model.Alert) (model.Alert, error) {
	if input.Title == "" || input.Message == "" || input.CreatedBy == "" {
		return model.Alert{}, ErrBadRequest("title, message and created_by are required")
	}
	if !validSeverity(input.Severity) {
		return model.Alert{}, ErrBadRequest("severity must be one of: info, warning, critical")
	}
	if input.ExpiryTime.IsZero() {
		return model.Alert{}, ErrBadRequest("expiry_time is required")
	}
	if !input.ExpiryTime.After(time.Now().UTC()) {
		return model.Alert{}, ErrBadRequest("expiry_time must be in the future")
	}

	switch input.VisibilityType {
	case model.VisibilityOrganization:
		input.TeamID = nil
		input.TargetUserID = nil
	case model.VisibilityTeam:
		if input.TeamID == nil {
			return model.Alert{}, ErrBadRequest("team_id is required for team visibility")
		}
		if _, err := s.teamRepo.GetByID(ctx, *input.TeamID); err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				return model.Alert{}, ErrNotFound("team not found")
			}
			return model.Alert{}, &AppError{Code: "INTERNAL", Message: "failed to get team", Status: 500, Err: err}
		}
		input.TargetUserID = nil
	case model.VisibilityUser:
		if input.TargetUserID == nil {
			return model.Alert{}, ErrBadRequest("target_user_id is required for user visibility")
		}
		if _, err := s.userRepo.GetByID(ctx, *input.TargetUserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return model.Alert{}, ErrNotFound("target user not found")
			}
			return model.Alert{}, &AppError{Code: "INTERNAL", Message: "failed to get target user", Status: 500, Err: err}
		}
		input.TeamID = nil
	default:
		return model.Alert{}, ErrBadRequest("visibility_type must be one of: organization, team, user")
	}

	if _, err := s.userRepo.GetByID(ctx, input.CreatedBy); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Alert{}, ErrNotFound("creator not found")
		}
		return model.Alert{}, &AppError{Code: "INTERNAL", Message: "failed to get creator", Status: 500, Err: err}
	}

	input.ID = uuid.New().String()
	if input.ReminderFrequency <= 0 {
		input.ReminderFrequency = DefaultReminderFrequency
	}
	input.RemindersEnabled = true
	input.IsActive = true

	created, err := s.alertRepo.Create(ctx, input)
	if err != nil {
		return model.Alert{}, &AppError{Code: "INTERNAL", Message: "failed to create alert", Status: 500, Err: err}
	}
	return created, nil
}

// Get возвращает алерт по идентификатору.
func (s *AlertService) Get(ctx context.Context, alertID string) (model.Alert, error) {
	if alertID == "" {
		return model.Alert{}, ErrBadRequest("alert id is required")
	}
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return model.Alert{}, ErrNotFound("alert not found")
		}
		return model.Alert{}, &AppError{Code: "INTERNAL", Message: "failed to get alert", Status: 500, Err: err}
	}
	return alert, nil
}

// Update применяет частичное обновление к алерту.
// Архивный алерт изменять нельзя (ALERT_ARCHIVED).
func (s *AlertService) Update(ctx context.Context, alertID string, upd AlertUpdate) (model.Alert, error) {
	alert, err := s.Get(ctx, alertID)
	if err != nil {
		return model.Alert{}, err
	}
	if !alert.IsActive {
		return model.Alert{}, ErrDomain("ALERT_ARCHIVED", "cannot update archived alert")
	}

	if upd.Title != nil {
		if *upd.Title == "" {
			return model.Alert{}, ErrBadRequest("title must not be empty")
		}
		alert.Title = *upd.Title
	}
	if upd.Message != nil {
		if *upd.Message == "" {
			return model.Alert{}, ErrBadRequest("message must not be empty")
		}
		alert.Message = *upd.Message
	}
	if upd.Severity != nil {
		if !validSeverity(*upd.Severity) {
			return model.Alert{}, ErrBadRequest("severity must be one of: info, warning, critical")
		}
		alert.Severity = *upd.Severity
	}
	if upd.ExpiryTime != nil {
		alert.ExpiryTime = *upd.ExpiryTime
	}
	if upd.ReminderFrequency != nil {
		if *upd.ReminderFrequency <= 0 {
			return model.Alert{}, ErrBadRequest("reminder_frequency_minutes must be positive")
		}
		alert.ReminderFrequency = *upd.ReminderFrequency
	}
	if upd.RemindersEnabled != nil {
		alert.RemindersEnabled = *upd.RemindersEnabled
	}

	updated, err := s.alertRepo.Update(ctx, alert)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return model.Alert{}, ErrNotFound("alert not found")
		}
		return model.Alert{}, &AppError{Code: "INTERNAL", Message: "failed to update alert", Status: 500, Err: err}
	}
	return updated, nil
}

// Archive переводит алерт в архив (терминальное состояние). Повторный вызов идемпотентен.
func (s *AlertService) Archive(ctx context.Context, alertID string) (model.Alert, error) {
	if alertID == "" {
		return model.Alert{}, ErrBadRequest("alert id is required")
	}
	alert, err := s.alertRepo.Archive(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return model.Alert{}, ErrNotFound("alert not found")
		}
		return model.Alert{}, &AppError{Code: "INTERNAL", Message: "failed to archive alert", Status: 500, Err: err}
	}
	return alert, nil
}

// List возвращает алерты по фильтру статуса и важности.
func (s *AlertService) List(ctx context.Context, status, severity string) ([]model.Alert, error) {
	alerts, err := s.alertRepo.List(ctx, repository.ListFilter{Status: status, Severity: severity})
	if err != nil {
		return nil, &AppError{Code: "INTERNAL", Message: "failed to list alerts", Status: 500, Err: err}
	}
	return alerts, nil
}

// SendReminder принудительно отправляет напоминания по алерту всем пользователям
// с непрочитанной или отснуженной доставкой. Ноль подходящих пользователей — не ошибка.
// Материализация доставок и отправка проходят в одной транзакции.
func (s *AlertService) SendReminder(ctx context.Context, alertID string) (int, error) {
	alert, err := s.Get(ctx, alertID)
	if err != nil {
		return 0, err
	}
	if !alert.IsActive {
		return 0, ErrDomain("ALERT_ARCHIVED", "cannot send reminders for archived alert")
	}
	if alert.Expired(time.Now().UTC()) {
		return 0, ErrDomain("ALERT_EXPIRED", "cannot send reminders for expired alert")
	}

	var sent int
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.deliveryRepo.EnsureForAlert(ctx, alert.ID); err != nil {
			return err
		}
		var errTx error
		sent, errTx = s.deliveryRepo.RemindEligible(ctx, alert.ID, nil)
		return errTx
	})
	if err != nil {
		return 0, &AppError{Code: "INTERNAL", Message: "failed to send reminders", Status: 500, Err: err}
	}

	return sent, nil
}

// DispatchDueReminders отправляет плановые напоминания по всем активным алертам,
// у которых с последнего напоминания прошло не меньше их частоты напоминаний.
// Возвращает суммарное число отправленных напоминаний; ошибки по отдельным
// алертам накапливаются и не прерывают обход.
func (s *AlertService) DispatchDueReminders(ctx context.Context) (int, error) {
	alerts, err := s.alertRepo.ListRemindable(ctx)
	if err != nil {
		return 0, err
	}

	var total int
	var dispatchErrs []error
	now := time.Now().UTC()

	for _, alert := range alerts {
		cutoff := now.Add(-time.Duration(alert.ReminderFrequency) * time.Minute)

		var sent int
		err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			if err := s.deliveryRepo.EnsureForAlert(ctx, alert.ID); err != nil {
				return err
			}
			var errTx error
			sent, errTx = s.deliveryRepo.RemindEligible(ctx, alert.ID, &cutoff)
			return errTx
		})
		if err != nil {
			dispatchErrs = append(dispatchErrs, err)
			continue
		}
		total += sent
	}

	return total, errors.Join(dispatchErrs...)
}

// validSeverity проверяет допустимость уровня важности.
func validSeverity(s model.Severity) bool {
	switch s {
	case model.SeverityInfo, model.SeverityWarning, model.SeverityCritical:
		return true
	}
	return false
}
