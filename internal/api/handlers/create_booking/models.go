package create_booking

import (
	"github.com/m04kA/SMC-AdventureBooking/internal/service/bookings/models"
	bookingFlow "github.com/m04kA/SMC-AdventureBooking/internal/usecase/booking_flow"
)

// CreateBookingRequest HTTP request model.
// date пустая строка - дата не выбрана, ответ подскажет ее выбрать.
type CreateBookingRequest struct {
	ActivityID string `json:"activityId" validate:"required"`
	Date       string `json:"date"` // "2025-03-10"
	Guests     int    `json:"guests" validate:"gte=1"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking      *models.BookingResponse `json:"booking"`
	Tax          int64                   `json:"tax"`          // только для отображения
	TotalWithTax int64                   `json:"totalWithTax"` // только для отображения
	Attempts     int                     `json:"attempts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *bookingFlow.Request {
	return &bookingFlow.Request{
		ActivityID: r.ActivityID,
		Date:       r.Date,
		Guests:     r.Guests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookingFlow.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:      models.FromDomainBooking(&resp.Booking),
		Tax:          resp.Quote.Tax,
		TotalWithTax: resp.Quote.TotalWithTax,
		Attempts:     resp.Attempts,
	}
}
