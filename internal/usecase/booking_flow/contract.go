package booking_flow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// BookingStore упорядоченный список бронирований (новые первыми)
type BookingStore interface {
	ReadAll(ctx context.Context) ([]domain.Booking, error)
	WriteAll(ctx context.Context, bookings []domain.Booking) error
}

// PaymentGateway внешний (мок) сервис подтверждения оплаты
type PaymentGateway interface {
	Confirm(ctx context.Context, req domain.BookingRequest) error
}

// EventPublisher публикация события о подтвержденном бронировании
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking domain.Booking) error
}

// ActivityCatalog источник активностей
type ActivityCatalog interface {
	GetByID(id string) (*domain.Activity, error)
}

// Metrics счетчик исходов бронирования
type Metrics interface {
	BookingOutcome(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
