package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// HistoryRepository интерфейс репозитория append-only записей аудита
type HistoryRepository interface {
	CreateCancellation(ctx context.Context, rec *domain.CancellationHistoryRecord) (*domain.CancellationHistoryRecord, error)
	CreateDeletionAudit(ctx context.Context, rec *domain.DeletionAuditRecord) (*domain.DeletionAuditRecord, error)
	ListCancellationsByUnit(ctx context.Context, unitID int64, from, to time.Time) ([]*domain.CancellationHistoryRecord, error)
	DeleteCancellation(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
