package list_reviews

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews"
)

const (
	msgNotFound = "activity not found"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	result, err := h.service.List(r.Context(), activityID)
	if err != nil {
		if errors.Is(err, reviews.ErrActivityNotFound) {
			h.logger.Warn("GET /activities/{id}/reviews - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /activities/{id}/reviews - Failed to list reviews: activity_id=%s, error=%v", activityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /activities/{id}/reviews - Reviews retrieved: activity_id=%s, count=%d",
		activityID, len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
