package domain

import (
	"time"

	"github.com/google/uuid"
)

// CancellationHistoryRecord неизменяемый снимок, записываемый в момент отмены
// Денормализованные поля позволяют записи пережить удаление оригиналов
// Никогда не обновляется; может быть удалена административной чисткой
// независимо от самой записи на приём
type CancellationHistoryRecord struct {
	ID            uuid.UUID
	AppointmentID int64
	UnitID        int64

	ScheduledAt   time.Time
	CancelledAt   time.Time
	MinutesBefore int // со знаком: отрицательное значение - отмена после начала
	IsLate        bool
	IsNoShow      bool
	Source        CancellationSource

	// Денормализованные метки
	ProfessionalName string
	ServiceName      string
	ClientName       string

	FeeAmount float64

	CreatedAt time.Time
}

// DeletionAuditRecord неизменяемый снимок, записываемый при жёстком удалении
// подтверждённой или завершённой записи. Write-once, append-only
type DeletionAuditRecord struct {
	ID            uuid.UUID
	AppointmentID int64
	UnitID        int64

	// Состояние записи до удаления
	OriginalStatus AppointmentStatus
	ServicePrice   float64
	PaymentMethod  *string

	ActorID int64
	Reason  string

	CreatedAt time.Time
}
