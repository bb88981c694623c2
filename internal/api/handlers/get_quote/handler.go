package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	getQuote "github.com/m04kA/SMC-AdventureBooking/internal/usecase/get_quote"
)

const (
	msgInvalidGuests    = "guests must be an integer"
	msgNotFound         = "activity not found"
	msgGuestsOutOfRange = "number of guests is outside the allowed range"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/quote?guests=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	// guests опционален, по умолчанию минимум
	var guests int
	if raw := r.URL.Query().Get("guests"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /activities/{id}/quote - Invalid guests: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidGuests)
			return
		}
		guests = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getQuote.Request{ActivityID: activityID, Guests: guests})
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrActivityNotFound):
			h.logger.Warn("GET /activities/{id}/quote - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getQuote.ErrGuestsOutOfRange):
			h.logger.Warn("GET /activities/{id}/quote - Guests out of range: activity_id=%s, guests=%d", activityID, guests)
			handlers.RespondBadRequest(w, msgGuestsOutOfRange)

		default:
			h.logger.Error("GET /activities/{id}/quote - Failed to get quote: activity_id=%s, error=%v", activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /activities/{id}/quote - Quote calculated: activity_id=%s, guests=%d, total=%d",
		activityID, result.Quote.Guests, result.Quote.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
