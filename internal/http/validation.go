package http

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"alerting-platform/internal/service"
)

// Alerts

// ValidateCreateAlertRequest проверяет тело POST /api/admin/alerts.
// Допустимость severity/visibility и согласованность цели видимости
// проверяет бизнес-слой.
func ValidateCreateAlertRequest(req createAlertRequest) error {
	if req.Title == "" {
		return service.ErrBadRequest("title is required")
	}
	if req.Message == "" {
		return service.ErrBadRequest("message is required")
	}
	if req.CreatedBy == "" {
		return service.ErrBadRequest("created_by is required")
	}
	if err := validateID("created_by", req.CreatedBy); err != nil {
		return err
	}
	if req.TeamID != nil {
		if err := validateID("team_id", *req.TeamID); err != nil {
			return err
		}
	}
	if req.TargetUserID != nil {
		if err := validateID("target_user_id", *req.TargetUserID); err != nil {
			return err
		}
	}
	if req.ExpiryTime == nil {
		return service.ErrBadRequest("expiry_time is required")
	}
	return nil
}

// ValidateAlertIDParam проверяет path-параметр с идентификатором алерта.
func ValidateAlertIDParam(alertID string) error {
	if alertID == "" {
		return service.ErrBadRequest("alert id is required")
	}
	return validateID("alert id", alertID)
}

// Users

// ValidateCreateUserRequest проверяет тело POST /api/admin/users.
func ValidateCreateUserRequest(req createUserRequest) error {
	if req.Name == "" {
		return service.ErrBadRequest("name is required")
	}
	if req.Email == "" {
		return service.ErrBadRequest("email is required")
	}
	if req.TeamID != nil {
		if err := validateID("team_id", *req.TeamID); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUserIDQuery проверяет query-параметр user_id.
func ValidateUserIDQuery(userID string) error {
	if userID == "" {
		return service.ErrBadRequest("user_id is required")
	}
	return validateID("user_id", userID)
}

// Query-параметры с числами

// ParseIntQuery читает числовой query-параметр; пустое значение даёт def,
// нечисловое или неположительное — ошибку валидации.
func ParseIntQuery(values url.Values, name string, def int) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, service.ErrBadRequest(fmt.Sprintf("%s must be a positive integer", name))
	}
	return v, nil
}

// validateID проверяет, что значение — корректный UUID.
func validateID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return service.ErrBadRequest(fmt.Sprintf("%s must be a valid UUID", field))
	}
	return nil
}
