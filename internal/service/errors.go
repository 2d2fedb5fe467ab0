package service

import (
	"errors"
)

// Ошибки бизнес-логики. Хэндлер сопоставляет их с HTTP-кодами через errors.Is.
// Отсутствие группы или пустой список хелперов ошибками не являются.
var (
	// Не найдено
	ErrCaseNotFound       = errors.New("case not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrGroupNotFound      = errors.New("case group not found")

	// Недопустимое состояние
	ErrCaseNotOpen             = errors.New("case is not open")
	ErrCaseAlreadyGrouped      = errors.New("case already belongs to a group")
	ErrCaseUnavailable         = errors.New("case is not available for assignment")
	ErrAlreadyAssigned         = errors.New("helper already assigned to this case")
	ErrInvalidStatusTransition = errors.New("invalid case status transition")

	// Некорректные аргументы
	ErrInvalidRadius      = errors.New("search radius must be positive")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)
