package create_booking

import (
	"context"

	bookingFlow "github.com/m04kA/SMC-AdventureBooking/internal/usecase/booking_flow"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *bookingFlow.Request) (*bookingFlow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
