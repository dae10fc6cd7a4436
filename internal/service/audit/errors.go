package audit

import "errors"

var (
	// ErrRecordFailed возвращается, когда запись аудита не удалась
	ErrRecordFailed = errors.New("audit: failed to write audit record")

	// ErrRecordNotFound возвращается, когда запись истории не найдена
	ErrRecordNotFound = errors.New("audit: history record not found")
)
