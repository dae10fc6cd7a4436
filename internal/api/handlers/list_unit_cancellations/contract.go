package list_unit_cancellations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type AuditService interface {
	Cancellations(ctx context.Context, unitID int64, from, to time.Time) ([]*domain.CancellationHistoryRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
