package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// CancellationSource источник отмены записи
type CancellationSource string

const (
	SourceManual    CancellationSource = "manual"
	SourceAutomated CancellationSource = "automated"
	SourceNoShow    CancellationSource = "no_show"
)

// Appointment represents a scheduled appointment against a professional
type Appointment struct {
	ID             int64
	UnitID         int64
	ProfessionalID int64
	ServiceID      int64

	// Denormalized client fields, not owned by this core
	ClientName      string
	ClientPhone     *string
	ClientBirthDate *time.Time

	StartAt time.Time
	EndAt   time.Time // always StartAt + service duration, never edited independently
	Status  AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	PaymentMethod *string // set only on completion
	Notes         *string

	// Cancellation detail, present only when Status == StatusCancelled
	IsNoShow           *bool
	CancellationSource *CancellationSource
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the appointment can be confirmed
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending
}

// CanBeCompleted returns true if the appointment can be completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if scheduling fields can still be edited
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// RequiresDeletionAudit returns true if hard deletion must leave an audit record
func (a *Appointment) RequiresDeletionAudit() bool {
	return a.Status == StatusConfirmed || a.Status == StatusCompleted
}

// CanTransitionTo проверяет допустимость перехода статуса
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	switch target {
	case StatusConfirmed:
		return a.CanBeConfirmed()
	case StatusCompleted:
		return a.CanBeCompleted()
	case StatusCancelled:
		return a.CanBeCancelled()
	default:
		return false
	}
}

// UnitAppointmentsFilter фильтр для получения записей юнита
type UnitAppointmentsFilter struct {
	UnitID           int64              // Обязательный параметр
	ProfessionalID   *int64             // Фильтр по мастеру (опционально)
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые записи
}
