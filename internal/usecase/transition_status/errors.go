package transition_status

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("transition_status: appointment not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// (например, подтверждение завершённой записи)
	ErrInvalidTransition = errors.New("transition_status: invalid status transition")

	// ErrPaymentMethodRequired возвращается, когда завершение запрошено
	// без метода оплаты
	ErrPaymentMethodRequired = errors.New("transition_status: payment method is required for completion")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_status: internal error")
)
