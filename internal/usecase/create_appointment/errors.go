package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrProfessionalInactive возвращается, когда мастер деактивирован
	ErrProfessionalInactive = errors.New("create_appointment: professional is inactive")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrUnitClosed возвращается, когда юнит закрыт в указанную дату
	// (выходной по недельному расписанию или праздничное исключение)
	ErrUnitClosed = errors.New("create_appointment: unit is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда слот выходит за рабочие часы
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// ConflictError возвращается, когда слот занят перерывом или другой записью
// Несёт метку блокирующей сущности - её достаточно для показа пользователю
// без дополнительных запросов
type ConflictError struct {
	Conflict *domain.Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("create_appointment: slot conflict with %s (%s)", e.Conflict.Label, e.Conflict.Kind)
}
