package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	UnitID          int64   `json:"unitId"`
	ProfessionalID  int64   `json:"professionalId"`
	ServiceID       int64   `json:"serviceId"`
	StartAt         string  `json:"startAt"` // ISO 8601
	ClientName      string  `json:"clientName"`
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
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		UnitID:         r.UnitID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		StartAt:        startAt,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		Notes:          r.Notes,
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
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
