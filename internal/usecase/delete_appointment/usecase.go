package delete_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
)

// UseCase жёсткое удаление записи на приём
//
// Удаление намеренно не обёрнуто в транзакцию с аудитом: ошибка вставки
// аудита отравила бы транзакцию PostgreSQL и заблокировала удаление.
// Аудит пишется best-effort до удаления, его сбой только логируется
type UseCase struct {
	appointmentRepo AppointmentRepository
	auditRecorder   AuditRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр usecase удаления записи
func NewUseCase(
	appointmentRepo AppointmentRepository,
	auditRecorder AuditRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		auditRecorder:   auditRecorder,
		logger:          logger,
	}
}

// Execute выполняет удаление записи
//
// Флоу:
// 1. Валидация входных данных
// 2. Загрузка записи
// 3. Для confirmed/completed: запись аудита удаления (best-effort)
// 4. Удаление строки
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	// 1. Валидация входных данных
	if req == nil || req.AppointmentID <= 0 {
		uc.logger.Warn("DeleteAppointment: invalid request")
		return fmt.Errorf("%w: appointmentId must be positive", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	uc.logger.Info("DeleteAppointment: deleting appointment id=%d, actor=%d", req.AppointmentID, req.ActorID)

	// 2. Загружаем запись, чтобы знать её статус и снапшот для аудита
	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("DeleteAppointment: appointment id=%d not found", req.AppointmentID)
			return ErrAppointmentNotFound
		}
		uc.logger.Error("DeleteAppointment: failed to load appointment id=%d: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: failed to load appointment: %v", ErrInternal, err)
	}

	// 3. Confirmed и completed записи оставляют аудиторский след
	if appt.RequiresDeletionAudit() {
		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}

		if _, err := uc.auditRecorder.RecordDeletion(ctx, appt, req.ActorID, reason); err != nil {
			// Сбой аудита не блокирует удаление
			uc.logger.Error("DeleteAppointment: audit write failed for appointment id=%d, proceeding: %v", req.AppointmentID, err)
		}
	}

	// 4. Удаляем строку
	if err := uc.appointmentRepo.Delete(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		uc.logger.Error("DeleteAppointment: failed to delete appointment id=%d: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("DeleteAppointment: successfully deleted appointment id=%d", req.AppointmentID)
	return nil
}
