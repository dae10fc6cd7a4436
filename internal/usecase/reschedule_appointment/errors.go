package reschedule_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrNotEditable возвращается при попытке редактировать запись
	// в терминальном статусе (completed или cancelled)
	ErrNotEditable = errors.New("reschedule_appointment: appointment is not editable")

	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("reschedule_appointment: professional not found")

	// ErrProfessionalInactive возвращается, когда мастер деактивирован
	ErrProfessionalInactive = errors.New("reschedule_appointment: professional is inactive")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("reschedule_appointment: service not found")

	// ErrUnitClosed возвращается, когда юнит закрыт в новую дату
	ErrUnitClosed = errors.New("reschedule_appointment: unit is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда новый слот выходит за рабочие часы
	ErrOutsideWorkingHours = errors.New("reschedule_appointment: slot is outside working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)

// ConflictError возвращается, когда новый слот занят перерывом или другой записью
type ConflictError struct {
	Conflict *domain.Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("reschedule_appointment: slot conflict with %s (%s)", e.Conflict.Label, e.Conflict.Kind)
}
