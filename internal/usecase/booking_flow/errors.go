package booking_flow

import "errors"

// MsgPickDate подсказка пользователю, когда дата не выбрана
const MsgPickDate = "Please select a date first"

var (
	// ErrDateRequired возвращается при попытке забронировать без выбранной даты.
	// Это подсказка пользователю, а не сбой: поток остается в idle.
	ErrDateRequired = errors.New("booking_flow: date is required")

	// ErrDateUnavailable возвращается, когда дата раньше минимально допустимой
	ErrDateUnavailable = errors.New("booking_flow: date is not available")

	// ErrGuestsOutOfRange возвращается, когда число гостей вне [min, max]
	ErrGuestsOutOfRange = errors.New("booking_flow: guests out of range")

	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("booking_flow: activity not found")

	// ErrInvalidState возвращается при переходе, недопустимом из текущего состояния
	ErrInvalidState = errors.New("booking_flow: invalid state transition")

	// ErrSubmitFailed возвращается, когда подтверждение оплаты отклонено или не пришло вовремя
	ErrSubmitFailed = errors.New("booking_flow: submission failed")

	// ErrRetryExhausted возвращается, когда попытки закончились
	ErrRetryExhausted = errors.New("booking_flow: no attempts left")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_flow: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_flow: internal error")
)
