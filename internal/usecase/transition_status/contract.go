package transition_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Complete(ctx context.Context, id int64, paymentMethod string, price float64, notes *string) error
	Cancel(ctx context.Context, id int64, isNoShow bool, source domain.CancellationSource, cancelledAt time.Time) error
}

// PolicyRepository интерфейс репозитория политик отмены
type PolicyRepository interface {
	GetByUnit(ctx context.Context, unitID int64) (*domain.CancellationPolicy, error)
}

// AuditRecorder интерфейс записи истории отмен
type AuditRecorder interface {
	RecordCancellation(
		ctx context.Context,
		appt *domain.Appointment,
		professionalName string,
		cancelledAt time.Time,
		timing domain.CancellationTiming,
		fee float64,
		isNoShow bool,
		source domain.CancellationSource,
	) (*domain.CancellationHistoryRecord, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetProfessional(ctx context.Context, unitID, professionalID int64) (*staffservice.Professional, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
