package get_advice

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("get_advice: activity not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_advice: internal error")
)
