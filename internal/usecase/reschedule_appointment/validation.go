package reschedule_appointment

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

	if req.ProfessionalID == nil && req.ServiceID == nil && req.StartAt == nil &&
		req.ClientName == nil && req.ClientPhone == nil && req.ClientBirthDate == nil && req.Notes == nil {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalId must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.StartAt != nil && req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt must not be zero", ErrInvalidInput)
	}

	if req.ClientName != nil && strings.TrimSpace(*req.ClientName) == "" {
		return fmt.Errorf("%w: clientName must not be empty", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
