package get_quote

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("get_quote: activity not found")

	// ErrGuestsOutOfRange возвращается, когда число гостей вне лимитов активности
	ErrGuestsOutOfRange = errors.New("get_quote: guests out of range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_quote: internal error")
)
