package service

import (
	"context"
	"errors"
	"time"

	"alerting-platform/internal/model"
	"alerting-platform/internal/repository"
)

// DeliveryService содержит пользовательскую бизнес-логику доставок:
// видимые алерты, дашборд, отметки прочитано/не прочитано/отложено и история.
type DeliveryService struct {
	deliveryRepo DeliveryRepository
	alertRepo    AlertRepository
	userRepo     UserRepository
}

// NewDeliveryService создаёт новый сервис для работы с доставками.
func NewDeliveryService(deliveryRepo DeliveryRepository, alertRepo AlertRepository, userRepo UserRepository) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		alertRepo:    alertRepo,
		userRepo:     userRepo,
	}
}

// ListUserAlerts возвращает активные алерты, видимые пользователю, с состоянием доставки.
// Недостающие доставки материализуются перед выборкой.
func (s *DeliveryService) ListUserAlerts(ctx context.Context, userID string) ([]model.UserAlert, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.deliveryRepo.EnsureForUser(ctx, userID); err != nil {
		return nil, &AppError{Code: "INTERNAL", Message: "failed to materialize deliveries", Status: 500, Err: err}
	}
	alerts, err := s.deliveryRepo.ListUserAlerts(ctx, userID)
	if err != nil {
		return nil, &AppError{Code: "INTERNAL", Message: "failed to list user alerts", Status: 500, Err: err}
	}
	return alerts, nil
}

// Dashboard возвращает сводку доставок пользователя по статусам.
// Инвариант: unread + read + snoozed = total.
func (s *DeliveryService) Dashboard(ctx context.Context, userID string) (model.DashboardSummary, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return model.DashboardSummary{}, err
	}
	if err := s.deliveryRepo.EnsureForUser(ctx, userID); err != nil {
		return model.DashboardSummary{}, &AppError{Code: "INTERNAL", Message: "failed to materialize deliveries", Status: 500, Err: err}
	}
	summary, err := s.deliveryRepo.DashboardCounts(ctx, userID)
	if err != nil {
		return model.DashboardSummary{}, &AppError{Code: "INTERNAL", Message: "failed to count deliveries", Status: 500, Err: err}
	}
	return summary, nil
}

// MarkRead отмечает доставку алерта пользователю как прочитанную.
func (s *DeliveryService) MarkRead(ctx context.Context, alertID, userID string) (model.Delivery, error) {
	now := time.Now().UTC()
	return s.setStatus(ctx, alertID, userID, model.DeliveryRead, &now, nil)
}

// MarkUnread возвращает доставку в непрочитанное состояние,
// сбрасывая отметку о прочтении и снуз.
func (s *DeliveryService) MarkUnread(ctx context.Context, alertID, userID string) (model.Delivery, error) {
	return s.setStatus(ctx, alertID, userID, model.DeliveryUnread, nil, nil)
}

// Snooze откладывает доставку до конца текущего дня (UTC).
// После истечения снуза доставка снова участвует в напоминаниях.
func (s *DeliveryService) Snooze(ctx context.Context, alertID, userID string) (model.Delivery, error) {
	until := endOfDay(time.Now().UTC())
	return s.setStatus(ctx, alertID, userID, model.DeliverySnoozed, nil, &until)
}

// History возвращает страницу истории доставок пользователя и общее число записей.
func (s *DeliveryService) History(ctx context.Context, userID string, page, perPage int) ([]model.Delivery, int, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}

	deliveries, total, err := s.deliveryRepo.History(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, &AppError{Code: "INTERNAL", Message: "failed to query history", Status: 500, Err: err}
	}
	return deliveries, total, nil
}

// setStatus проверяет пользователя и алерт, материализует недостающие доставки
// и выставляет новое состояние. Для невидимого пользователю алерта доставки
// не существует, и операция завершается NOT_FOUND.
func (s *DeliveryService) setStatus(
	ctx context.Context,
	alertID, userID string,
	status model.DeliveryStatus,
	readAt, snoozedUntil *time.Time,
) (model.Delivery, error) {
	if alertID == "" || userID == "" {
		return model.Delivery{}, ErrBadRequest("alert id and user_id are required")
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return model.Delivery{}, err
	}

	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return model.Delivery{}, ErrNotFound("alert not found")
		}
		return model.Delivery{}, &AppError{Code: "INTERNAL", Message: "failed to get alert", Status: 500, Err: err}
	}
	if !alert.IsActive {
		return model.Delivery{}, ErrDomain("ALERT_ARCHIVED", "cannot change state of archived alert")
	}

	if err := s.deliveryRepo.EnsureForUser(ctx, userID); err != nil {
		return model.Delivery{}, &AppError{Code: "INTERNAL", Message: "failed to materialize deliveries", Status: 500, Err: err}
	}

	delivery, err := s.deliveryRepo.SetStatus(ctx, alertID, userID, status, readAt, snoozedUntil)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return model.Delivery{}, ErrNotFound("alert is not visible to this user")
		}
		return model.Delivery{}, &AppError{Code: "INTERNAL", Message: "failed to update delivery", Status: 500, Err: err}
	}
	return delivery, nil
}

// checkUser убеждается, что пользователь существует.
func (s *DeliveryService) checkUser(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrBadRequest("user_id is required")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrNotFound("user not found")
		}
		return &AppError{Code: "INTERNAL", Message: "failed to get user", Status: 500, Err: err}
	}
	return nil
}

// endOfDay возвращает последнюю секунду суток, в которые попадает t.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
