package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на перенос/редактирование записи
// Все поля, кроме AppointmentID, опциональны: nil означает "не менять"
type Request struct {
	AppointmentID int64

	ProfessionalID *int64     // Новый мастер
	ServiceID      *int64     // Новая услуга (пересчитывает длительность и цену)
	StartAt        *time.Time // Новое время начала

	ClientName      *string    // Новое имя клиента
	ClientPhone     *string    // Новый телефон клиента
	ClientBirthDate *time.Time // Новая дата рождения клиента
	Notes           *string    // Новые заметки
}

// hasTimingChange возвращает true, если меняется что-то, влияющее на слот:
// мастер, услуга (длительность) или время начала
func (r *Request) hasTimingChange() bool {
	return r.ProfessionalID != nil || r.ServiceID != nil || r.StartAt != nil
}

// Response модель ответа с обновлённой записью
type Response struct {
	ID             int64     `json:"id"`
	UnitID         int64     `json:"unitId"`
	ProfessionalID int64     `json:"professionalId"`
	ServiceID      int64     `json:"serviceId"`
	ClientName     string    `json:"clientName"`
	ClientPhone    *string   `json:"clientPhone,omitempty"`
	StartAt        time.Time `json:"startAt"`
	EndAt          time.Time `json:"endAt"`
	Status         string    `json:"status"`
	ServiceName    string    `json:"serviceName"`
	ServicePrice   float64   `json:"servicePrice"`
	Notes          *string   `json:"notes,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// fromDomain конвертирует доменную модель в response
func fromDomain(a *domain.Appointment) *Response {
	return &Response{
		ID:             a.ID,
		UnitID:         a.UnitID,
		ProfessionalID: a.ProfessionalID,
		ServiceID:      a.ServiceID,
		ClientName:     a.ClientName,
		ClientPhone:    a.ClientPhone,
		StartAt:        a.StartAt,
		EndAt:          a.EndAt,
		Status:         string(a.Status),
		ServiceName:    a.ServiceName,
		ServicePrice:   a.ServicePrice,
		Notes:          a.Notes,
		UpdatedAt:      a.UpdatedAt,
	}
}
