package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	UnitID          int64      // ID юнита
	ProfessionalID  int64      // ID мастера (всегда задаётся явно, подбора нет)
	ServiceID       int64      // ID услуги
	StartAt         time.Time  // Время начала
	ClientName      string     // Имя клиента (денормализуется в запись)
	ClientPhone     *string    // Телефон клиента (опционально)
	ClientBirthDate *time.Time // Дата рождения клиента (опционально)
	Notes           *string    // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64     // ID созданной записи
	UnitID         int64     // ID юнита
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги
	ClientName     string    // Имя клиента
	ClientPhone    *string   // Телефон клиента
	StartAt        time.Time // Время начала
	EndAt          time.Time // Время окончания (start + длительность услуги)
	Status         string    // Статус записи

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги (снапшот на момент бронирования)
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
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
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
