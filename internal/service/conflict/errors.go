package conflict

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("conflict: professional not found")

	// ErrInvalidInterval возвращается при некорректном интервале (end <= start
	// или интервал пересекает границу календарного дня)
	ErrInvalidInterval = errors.New("conflict: invalid time interval")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("conflict: internal error")
)
