package history

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись истории не найдена
	ErrRecordNotFound = errors.New("history.repository: record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("history.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("history.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("history.repository: failed to scan row")
)
