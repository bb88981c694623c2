package bookings

import (
	"context"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// BookingStore хранилище списка бронирований
type BookingStore interface {
	ReadAll(ctx context.Context) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
