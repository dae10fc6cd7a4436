package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetUnitAppointmentsRequest запрос на получение записей юнита
type GetUnitAppointmentsRequest struct {
	UnitID           int64      `json:"unitId"`
	ProfessionalID   *int64     `json:"professionalId,omitempty"`   // Фильтр по мастеру (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetUnitAppointmentsRequest) ToDomainFilter() (domain.UnitAppointmentsFilter, error) {
	filter := domain.UnitAppointmentsFilter{
		UnitID:           r.UnitID,
		ProfessionalID:   r.ProfessionalID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID             int64  `json:"id"`
	UnitID         int64  `json:"unitId"`
	ProfessionalID int64  `json:"professionalId"`
	ServiceID      int64  `json:"serviceId"`
	ClientName     string `json:"clientName"`

	ClientPhone     *string `json:"clientPhone,omitempty"`
	ClientBirthDate *string `json:"clientBirthDate,omitempty"` // "1990-04-21"

	StartAt string `json:"startAt"` // ISO 8601
	EndAt   string `json:"endAt"`   // ISO 8601
	Status  string `json:"status"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`

	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	IsNoShow           *bool   `json:"isNoShow,omitempty"`
	CancellationSource *string `json:"cancellationSource,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:             a.ID,
		UnitID:         a.UnitID,
		ProfessionalID: a.ProfessionalID,
		ServiceID:      a.ServiceID,
		ClientName:     a.ClientName,
		ClientPhone:    a.ClientPhone,
		StartAt:        a.StartAt.Format(time.RFC3339),
		EndAt:          a.EndAt.Format(time.RFC3339),
		Status:         string(a.Status),
		ServiceName:    a.ServiceName,
		ServicePrice:   a.ServicePrice,
		PaymentMethod:  a.PaymentMethod,
		Notes:          a.Notes,
		IsNoShow:       a.IsNoShow,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	if a.ClientBirthDate != nil {
		birthDate := a.ClientBirthDate.Format(domain.DateFormat)
		resp.ClientBirthDate = &birthDate
	}

	if a.CancellationSource != nil {
		source := string(*a.CancellationSource)
		resp.CancellationSource = &source
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
