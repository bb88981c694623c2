package booking_flow

import (
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/pricing"
)

// State состояние потока бронирования
type State string

const (
	StateIdle                 State = "idle"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateSubmitting           State = "submitting"
	StateConfirmed            State = "confirmed"
	StateFailed               State = "failed"
)

// Исходы для метрик
const (
	outcomeConfirmed    = "confirmed"
	outcomeFailed       = "failed"
	outcomeDateRequired = "date_required"
)

// Config параметры потока
type Config struct {
	ServiceFee        int64
	TaxRate           float64
	SubmitTimeout     time.Duration // таймаут одной попытки подтверждения
	MaxAttempts       int           // всего попыток, включая первую
	ConfirmationDelay time.Duration // пауза перед показом экрана подтверждения
}

// Request модель запроса на бронирование
type Request struct {
	ActivityID string // ID активности
	Date       string // Дата в формате YYYY-MM-DD, пустая строка - дата не выбрана
	Guests     int    // Число гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking  domain.Booking
	Quote    pricing.Quote // Tax / TotalWithTax только для отображения
	Attempts int
}
