package check_conflict

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ConflictResponse HTTP response model
// HasConflict=false означает свободный слот, Conflict тогда отсутствует
type ConflictResponse struct {
	HasConflict bool          `json:"hasConflict"`
	Conflict    *ConflictInfo `json:"conflict,omitempty"`
}

// ConflictInfo описание блокирующей сущности
type ConflictInfo struct {
	Kind          string `json:"kind"` // break | appointment
	AppointmentID *int64 `json:"appointmentId,omitempty"`
	Label         string `json:"label"`
	Start         string `json:"start"` // ISO 8601
	End           string `json:"end"`   // ISO 8601
}

// FromDomainConflict конвертирует domain конфликт в HTTP response
func FromDomainConflict(c *domain.Conflict) *ConflictResponse {
	if c == nil {
		return &ConflictResponse{HasConflict: false}
	}

	return &ConflictResponse{
		HasConflict: true,
		Conflict: &ConflictInfo{
			Kind:          string(c.Kind),
			AppointmentID: c.AppointmentID,
			Label:         c.Label,
			Start:         c.Start.Format(time.RFC3339),
			End:           c.End.Format(time.RFC3339),
		},
	}
}
