package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	bookingFlow "github.com/m04kA/SMC-AdventureBooking/internal/usecase/booking_flow"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgActivityNotFound   = "activity not found"
	msgDateUnavailable    = "selected date is not available"
	msgGuestsOutOfRange   = "number of guests is outside the allowed range"
	msgInvalidInput       = "invalid booking request"
	msgSubmitFailed       = "booking could not be confirmed, please try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookingFlow.ErrDateRequired):
			h.logger.Warn("POST /bookings - Date not selected: activity_id=%s", req.ActivityID)
			handlers.RespondBadRequest(w, bookingFlow.MsgPickDate)

		case errors.Is(err, bookingFlow.ErrActivityNotFound):
			h.logger.Warn("POST /bookings - Activity not found: activity_id=%s", req.ActivityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, bookingFlow.ErrDateUnavailable):
			h.logger.Warn("POST /bookings - Date unavailable: activity_id=%s, date=%s", req.ActivityID, req.Date)
			handlers.RespondBadRequest(w, msgDateUnavailable)

		case errors.Is(err, bookingFlow.ErrGuestsOutOfRange):
			h.logger.Warn("POST /bookings - Guests out of range: activity_id=%s, guests=%d", req.ActivityID, req.Guests)
			handlers.RespondBadRequest(w, msgGuestsOutOfRange)

		case errors.Is(err, bookingFlow.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookingFlow.ErrSubmitFailed), errors.Is(err, bookingFlow.ErrRetryExhausted):
			h.logger.Warn("POST /bookings - Submission failed: activity_id=%s, error=%v", req.ActivityID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmitFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: activity_id=%s, error=%v", req.ActivityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, activity_id=%s, attempts=%d",
		result.Booking.ID, result.Booking.ActivityID, result.Attempts)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
