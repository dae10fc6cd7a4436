package delete_appointment

// DeleteAppointmentRequest HTTP request model
// Тело опционально: пустое тело означает удаление без причины
type DeleteAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}
