package transition_status

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentId must be positive", ErrInvalidInput)
	}

	switch domain.AppointmentStatus(req.TargetStatus) {
	case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
	case domain.StatusPending:
		// Возврат в pending не поддерживается
		return fmt.Errorf("%w: transition to pending is not allowed", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: unknown target status %q", ErrInvalidInput, req.TargetStatus)
	}

	if domain.AppointmentStatus(req.TargetStatus) == domain.StatusCompleted {
		if req.PaymentMethod == nil || strings.TrimSpace(*req.PaymentMethod) == "" {
			return ErrPaymentMethodRequired
		}
		if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
			return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
		}
	}

	if req.Source != nil {
		if _, err := toDomainSource(*req.Source); err != nil {
			return err
		}
	}

	return nil
}

// toDomainSource конвертирует строку в domain.CancellationSource с валидацией
func toDomainSource(source string) (domain.CancellationSource, error) {
	s := domain.CancellationSource(source)

	for _, valid := range domain.ValidCancellationSources {
		if s == valid {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: unknown cancellation source %q", ErrInvalidInput, source)
}
