package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден в БД.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists возвращается при попытке создать пользователя с занятым email.
	ErrEmailExists = errors.New("email already exists")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamExists возвращается при попытке создать дубликат команды.
	ErrTeamExists = errors.New("team already exists")

	// ErrAlertNotFound возвращается, если алерт не найден.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrDeliveryNotFound возвращается, если доставка для пары алерт/пользователь отсутствует.
	ErrDeliveryNotFound = errors.New("delivery not found")
)
