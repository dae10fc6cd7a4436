package conflict

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListActiveOverlapping(ctx context.Context, professionalID int64, start, end time.Time, excludeID *int64) ([]*domain.Appointment, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetProfessional(ctx context.Context, unitID, professionalID int64) (*staffservice.Professional, error)
}

// BreakResolver интерфейс разрешения окна перерыва мастера
// Реализуется сервисом доступности
type BreakResolver interface {
	ResolveBreak(professional *staffservice.Professional) *domain.BreakWindow
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
