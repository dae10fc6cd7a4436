package transition_status

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на смену статуса записи
type Request struct {
	AppointmentID int64
	TargetStatus  string // confirmed | completed | cancelled

	// Поля завершения (TargetStatus == completed)
	PaymentMethod *string // Обязателен при завершении
	Reason        *string // Причина courtesy-завершения, дописывается в заметки

	// Поля отмены (TargetStatus == cancelled)
	IsNoShow *bool   // Флаг неявки клиента
	Source   *string // manual | automated | no_show, по умолчанию manual
}

// Response модель ответа после смены статуса
type Response struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`

	// Заполняется только при отмене
	Cancellation *CancellationInfo `json:"cancellation,omitempty"`
}

// CancellationInfo детали классификации отмены
type CancellationInfo struct {
	MinutesBefore int     `json:"minutesBefore"`
	IsLate        bool    `json:"isLate"`
	IsNoShow      bool    `json:"isNoShow"`
	Source        string  `json:"source"`
	FeeAmount     float64 `json:"feeAmount"`
	CancelledAt   string  `json:"cancelledAt"` // ISO 8601
}

// cancellationInfo собирает детали отмены для ответа
func cancellationInfo(timing domain.CancellationTiming, fee float64, isNoShow bool, source domain.CancellationSource, cancelledAt time.Time) *CancellationInfo {
	return &CancellationInfo{
		MinutesBefore: timing.MinutesBefore,
		IsLate:        timing.IsLate,
		IsNoShow:      isNoShow,
		Source:        string(source),
		FeeAmount:     fee,
		CancelledAt:   cancelledAt.Format(time.RFC3339),
	}
}
