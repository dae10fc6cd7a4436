package delete_appointment

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// AuditRecorder интерфейс записи аудита удалений
type AuditRecorder interface {
	RecordDeletion(ctx context.Context, appt *domain.Appointment, actorID int64, reason string) (*domain.DeletionAuditRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
