package delete_appointment

// Request модель запроса на жёсткое удаление записи
type Request struct {
	AppointmentID int64
	ActorID       int64   // ID пользователя, выполняющего удаление (из X-User-ID)
	Reason        *string // Причина удаления, по умолчанию "unspecified"
}
