package transition_status

import (
	transitionStatus "github.com/m04kA/SMC-SchedulingService/internal/usecase/transition_status"
)

// TransitionStatusRequest HTTP request model
type TransitionStatusRequest struct {
	Status string `json:"status"` // confirmed | completed | cancelled

	// Завершение
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Reason        *string `json:"reason,omitempty"`

	// Отмена
	IsNoShow *bool   `json:"isNoShow,omitempty"`
	Source   *string `json:"source,omitempty"` // manual | automated | no_show
}

// TransitionStatusResponse HTTP response model
type TransitionStatusResponse struct {
	ID           int64                              `json:"id"`
	Status       string                             `json:"status"`
	Cancellation *transitionStatus.CancellationInfo `json:"cancellation,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TransitionStatusRequest) ToUseCaseRequest(appointmentID int64) *transitionStatus.Request {
	return &transitionStatus.Request{
		AppointmentID: appointmentID,
		TargetStatus:  r.Status,
		PaymentMethod: r.PaymentMethod,
		Reason:        r.Reason,
		IsNoShow:      r.IsNoShow,
		Source:        r.Source,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionStatus.Response) *TransitionStatusResponse {
	return &TransitionStatusResponse{
		ID:           resp.ID,
		Status:       resp.Status,
		Cancellation: resp.Cancellation,
	}
}
