package geoapify

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API ключ
	ErrNotConfigured = errors.New("geoapify client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geoapify client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geoapify client: invalid response")

	// ErrUnauthorized возвращается при неверном API ключе
	ErrUnauthorized = errors.New("geoapify client: unauthorized")
)
