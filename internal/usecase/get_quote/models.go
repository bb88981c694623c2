package get_quote

import "github.com/m04kA/SMC-AdventureBooking/internal/pricing"

// Request модель запроса расчета стоимости
type Request struct {
	ActivityID string
	Guests     int // 0 - значение по умолчанию (минимум)
}

// Response модель ответа
type Response struct {
	ActivityID string
	MinGuests  int
	MaxGuests  int
	Quote      pricing.Quote
}
