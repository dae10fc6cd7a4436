package catalogservice

// Service модель услуги из CatalogService
type Service struct {
	ID              int64    `json:"id"`
	UnitID          int64    `json:"unit_id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
