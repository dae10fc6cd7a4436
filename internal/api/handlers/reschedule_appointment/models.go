package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
)

// RescheduleAppointmentRequest HTTP request model
// Все поля опциональны: отсутствующее поле не меняется
type RescheduleAppointmentRequest struct {
	ProfessionalID  *int64  `json:"professionalId,omitempty"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	StartAt         *string `json:"startAt,omitempty"` // ISO 8601
	ClientName      *string `json:"clientName,omitempty"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	ClientBirthDate *string `json:"clientBirthDate,omitempty"` // "1990-04-21"
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	UnitID         int64   `json:"unitId"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	ClientName     string  `json:"clientName"`
	ClientPhone    *string `json:"clientPhone,omitempty"`
	StartAt        string  `json:"startAt"`
	EndAt          string  `json:"endAt"`
	Status         string  `json:"status"`
	ServiceName    string  `json:"serviceName"`
	ServicePrice   float64 `json:"servicePrice"`
	Notes          *string `json:"notes,omitempty"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*rescheduleAppointment.Request, error) {
	req := &rescheduleAppointment.Request{
		AppointmentID:  appointmentID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		Notes:          r.Notes,
	}

	if r.StartAt != nil {
		startAt, err := time.Parse(time.RFC3339, *r.StartAt)
		if err != nil {
			return nil, err
		}
		req.StartAt = &startAt
	}

	if r.ClientBirthDate != nil {
		birthDate, err := time.Parse(domain.DateFormat, *r.ClientBirthDate)
		if err != nil {
			return nil, err
		}
		req.ClientBirthDate = &birthDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		UnitID:         resp.UnitID,
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		ClientName:     resp.ClientName,
		ClientPhone:    resp.ClientPhone,
		StartAt:        resp.StartAt.Format(time.RFC3339),
		EndAt:          resp.EndAt.Format(time.RFC3339),
		Status:         resp.Status,
		ServiceName:    resp.ServiceName,
		ServicePrice:   resp.ServicePrice,
		Notes:          resp.Notes,
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
