package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	historyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/history"
)

// Recorder пишет неизменяемые снимки разрушительных переходов жизненного цикла
//
// Записи денормализованы и никогда не читают запись на приём обратно:
// к моменту чтения аудита оригинал может быть уже удалён.
// Асимметрия надёжности намеренная (см. вызывающий код):
// запись истории отмены выполняется в одной транзакции с отменой,
// запись аудита удаления - best-effort
type Recorder struct {
	historyRepo HistoryRepository
	logger      Logger
}

// NewRecorder создает новый экземпляр audit recorder
func NewRecorder(historyRepo HistoryRepository, logger Logger) *Recorder {
	return &Recorder{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// RecordCancellation записывает снимок отмены
// Синхронно: ошибка здесь обязана провалить всю отмену - запись истории
// единственное долговечное свидетельство опоздания и комиссии для биллинга
func (r *Recorder) RecordCancellation(
	ctx context.Context,
	appt *domain.Appointment,
	professionalName string,
	cancelledAt time.Time,
	timing domain.CancellationTiming,
	fee float64,
	isNoShow bool,
	source domain.CancellationSource,
) (*domain.CancellationHistoryRecord, error) {
	rec := &domain.CancellationHistoryRecord{
		AppointmentID:    appt.ID,
		UnitID:           appt.UnitID,
		ScheduledAt:      appt.StartAt,
		CancelledAt:      cancelledAt,
		MinutesBefore:    timing.MinutesBefore,
		IsLate:           timing.IsLate,
		IsNoShow:         isNoShow,
		Source:           source,
		ProfessionalName: professionalName,
		ServiceName:      appt.ServiceName,
		ClientName:       appt.ClientName,
		FeeAmount:        fee,
	}

	created, err := r.historyRepo.CreateCancellation(ctx, rec)
	if err != nil {
		r.logger.Error("RecordCancellation: failed for appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: cancellation history: %v", ErrRecordFailed, err)
	}

	r.logger.Info("RecordCancellation: recorded id=%s for appointment id=%d (minutes_before=%d, late=%t, no_show=%t, fee=%.2f)",
		created.ID, appt.ID, timing.MinutesBefore, timing.IsLate, isNoShow, fee)

	return created, nil
}

// RecordDeletion записывает снимок состояния записи перед жёстким удалением
// Вызывающий код трактует ошибку как некритичную: удаление - намеренный
// исход оператора и не должно блокироваться сбоем подсистемы аудита
func (r *Recorder) RecordDeletion(
	ctx context.Context,
	appt *domain.Appointment,
	actorID int64,
	reason string,
) (*domain.DeletionAuditRecord, error) {
	if reason == "" {
		reason = domain.DefaultDeletionReason
	}

	rec := &domain.DeletionAuditRecord{
		AppointmentID:  appt.ID,
		UnitID:         appt.UnitID,
		OriginalStatus: appt.Status,
		ServicePrice:   appt.ServicePrice,
		PaymentMethod:  appt.PaymentMethod,
		ActorID:        actorID,
		Reason:         reason,
	}

	created, err := r.historyRepo.CreateDeletionAudit(ctx, rec)
	if err != nil {
		r.logger.Error("RecordDeletion: failed for appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: deletion audit: %v", ErrRecordFailed, err)
	}

	r.logger.Info("RecordDeletion: recorded id=%s for appointment id=%d (original_status=%s, actor=%d)",
		created.ID, appt.ID, appt.Status, actorID)

	return created, nil
}

// Cancellations возвращает записи истории отмен юнита за период [from, to)
// Отчётная выборка для биллинга: читает только денормализованные снимки
func (r *Recorder) Cancellations(ctx context.Context, unitID int64, from, to time.Time) ([]*domain.CancellationHistoryRecord, error) {
	records, err := r.historyRepo.ListCancellationsByUnit(ctx, unitID, from, to)
	if err != nil {
		r.logger.Error("Cancellations: failed for unit id=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: list cancellations: %v", ErrRecordFailed, err)
	}

	return records, nil
}

// PurgeCancellation удаляет запись истории отмены по идентификатору
// Единственный санкционированный путь ретенции: записи истории
// неизменяемы и вычищаются только целиком, по одной
func (r *Recorder) PurgeCancellation(ctx context.Context, id uuid.UUID) error {
	err := r.historyRepo.DeleteCancellation(ctx, id)
	if errors.Is(err, historyRepo.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	if err != nil {
		r.logger.Error("PurgeCancellation: failed for record id=%s: %v", id, err)
		return fmt.Errorf("%w: purge cancellation: %v", ErrRecordFailed, err)
	}

	r.logger.Info("PurgeCancellation: purged record id=%s", id)

	return nil
}
