package transition_status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	policyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
)

// UseCase переходы жизненного цикла записи:
// подтверждение, завершение с оплатой, отмена с историей
type UseCase struct {
	appointmentRepo AppointmentRepository
	policyRepo      PolicyRepository
	auditRecorder   AuditRecorder
	staffClient     StaffServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр usecase переходов статуса
func NewUseCase(
	appointmentRepo AppointmentRepository,
	policyRepo PolicyRepository,
	auditRecorder AuditRecorder,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		policyRepo:      policyRepo,
		auditRecorder:   auditRecorder,
		staffClient:     staffClient,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет переход статуса записи
// Допустимые переходы: pending -> confirmed, pending/confirmed -> completed,
// pending/confirmed -> cancelled. Всё остальное - ErrInvalidTransition
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionStatus: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("TransitionStatus: appointment id=%d -> %s", req.AppointmentID, req.TargetStatus)

	switch domain.AppointmentStatus(req.TargetStatus) {
	case domain.StatusConfirmed:
		return uc.confirm(ctx, req)
	case domain.StatusCompleted:
		return uc.complete(ctx, req)
	case domain.StatusCancelled:
		return uc.cancel(ctx, req)
	default:
		return nil, fmt.Errorf("%w: unknown target status %q", ErrInvalidInput, req.TargetStatus)
	}
}

// confirm переводит запись pending -> confirmed
func (uc *UseCase) confirm(ctx context.Context, req *Request) (*Response, error) {
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := uc.loadForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			return err
		}

		if !appt.CanBeConfirmed() {
			return fmt.Errorf("%w: %s -> confirmed", ErrInvalidTransition, appt.Status)
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, appt.ID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logTransitionError("confirm", req.AppointmentID, err)
		return nil, err
	}

	uc.logger.Info("TransitionStatus: appointment id=%d confirmed", req.AppointmentID)
	return &Response{ID: req.AppointmentID, Status: string(domain.StatusConfirmed)}, nil
}

// complete переводит запись pending/confirmed -> completed
// Метод оплаты "courtesy" обнуляет цену и дописывает причину в заметки,
// остальные методы оставляют цену без изменений
func (uc *UseCase) complete(ctx context.Context, req *Request) (*Response, error) {
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := uc.loadForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			return err
		}

		if !appt.CanBeCompleted() {
			return fmt.Errorf("%w: %s -> completed", ErrInvalidTransition, appt.Status)
		}

		paymentMethod := strings.TrimSpace(*req.PaymentMethod)
		price := appt.ServicePrice
		notes := appt.Notes

		if paymentMethod == domain.PaymentMethodCourtesy {
			price = 0
			notes = appendNote(appt.Notes, req.Reason)
		}

		if err := uc.appointmentRepo.Complete(txCtx, appt.ID, paymentMethod, price, notes); err != nil {
			return fmt.Errorf("%w: failed to complete appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logTransitionError("complete", req.AppointmentID, err)
		return nil, err
	}

	uc.logger.Info("TransitionStatus: appointment id=%d completed", req.AppointmentID)
	return &Response{ID: req.AppointmentID, Status: string(domain.StatusCompleted)}, nil
}

// cancel переводит запись pending/confirmed -> cancelled
// Классификация по политике юнита, запись истории отмены и смена статуса
// выполняются в одной транзакции: провал записи истории откатывает отмену
func (uc *UseCase) cancel(ctx context.Context, req *Request) (*Response, error) {
	isNoShow := req.IsNoShow != nil && *req.IsNoShow

	source := domain.SourceManual
	if req.Source != nil {
		source, _ = toDomainSource(*req.Source)
	} else if isNoShow {
		source = domain.SourceNoShow
	}

	cancelledAt := uc.timeProvider.Now()

	var info *CancellationInfo

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := uc.loadForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			return err
		}

		if !appt.CanBeCancelled() {
			return fmt.Errorf("%w: %s -> cancelled", ErrInvalidTransition, appt.Status)
		}

		policy, err := uc.resolvePolicy(txCtx, appt.UnitID)
		if err != nil {
			return err
		}

		timing := domain.ClassifyCancellation(appt.StartAt, cancelledAt, *policy)
		fee := domain.CancellationFee(appt.ServicePrice, timing.IsLate, isNoShow, *policy)

		professionalName := uc.resolveProfessionalName(txCtx, appt)

		if _, err := uc.auditRecorder.RecordCancellation(txCtx, appt, professionalName, cancelledAt, timing, fee, isNoShow, source); err != nil {
			return fmt.Errorf("%w: cancellation history write failed: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.Cancel(txCtx, appt.ID, isNoShow, source, cancelledAt); err != nil {
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		info = cancellationInfo(timing, fee, isNoShow, source, cancelledAt)
		return nil
	})
	if err != nil {
		uc.logTransitionError("cancel", req.AppointmentID, err)
		return nil, err
	}

	uc.logger.Info("TransitionStatus: appointment id=%d cancelled (minutes_before=%d, late=%t, no_show=%t, fee=%.2f)",
		req.AppointmentID, info.MinutesBefore, info.IsLate, info.IsNoShow, info.FeeAmount)
	return &Response{ID: req.AppointmentID, Status: string(domain.StatusCancelled), Cancellation: info}, nil
}

// loadForUpdate загружает запись внутри транзакции (репозиторий добавит FOR UPDATE)
func (uc *UseCase) loadForUpdate(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: failed to load appointment: %v", ErrInternal, err)
	}
	return appt, nil
}

// resolvePolicy возвращает политику отмены юнита или дефолтную,
// если политика не настроена: отмена не должна блокироваться
// отсутствием конфигурации
func (uc *UseCase) resolvePolicy(ctx context.Context, unitID int64) (*domain.CancellationPolicy, error) {
	policy, err := uc.policyRepo.GetByUnit(ctx, unitID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return &domain.CancellationPolicy{
				UnitID:             unitID,
				GracePeriodMinutes: domain.DefaultGracePeriodMinutes,
				LateFeePercent:     domain.DefaultLateFeePercent,
				NoShowFeePercent:   domain.DefaultNoShowFeePercent,
			}, nil
		}
		return nil, fmt.Errorf("%w: failed to load cancellation policy: %v", ErrInternal, err)
	}
	return policy, nil
}

// resolveProfessionalName получает имя мастера для денормализации в историю
// Недоступность StaffService не блокирует отмену: имя заменяется заглушкой
func (uc *UseCase) resolveProfessionalName(ctx context.Context, appt *domain.Appointment) string {
	professional, err := uc.staffClient.GetProfessional(ctx, appt.UnitID, appt.ProfessionalID)
	if err != nil {
		if !errors.Is(err, staffservice.ErrProfessionalNotFound) {
			uc.logger.Warn("TransitionStatus: failed to resolve professional=%d name: %v", appt.ProfessionalID, err)
		}
		return fmt.Sprintf("professional #%d", appt.ProfessionalID)
	}
	return professional.Name
}

// logTransitionError логирует ошибку перехода с уровнем по её классу
func (uc *UseCase) logTransitionError(op string, appointmentID int64, err error) {
	if errors.Is(err, ErrInternal) {
		uc.logger.Error("TransitionStatus: %s failed for appointment=%d: %v", op, appointmentID, err)
		return
	}
	uc.logger.Warn("TransitionStatus: %s rejected for appointment=%d: %v", op, appointmentID, err)
}

// appendNote дописывает причину courtesy-завершения к существующим заметкам
func appendNote(notes *string, reason *string) *string {
	if reason == nil || strings.TrimSpace(*reason) == "" {
		return notes
	}

	text := strings.TrimSpace(*reason)
	if notes != nil && strings.TrimSpace(*notes) != "" {
		text = *notes + "\n" + text
	}

	return &text
}
