package add_review

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "activity not found"
	msgInvalidReview      = "review must have a rating from 1 to 5 and a comment"
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

// Handle POST /api/v1/activities/{activityId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	var req AddReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /activities/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /activities/{id}/reviews - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReview)
		return
	}

	review, err := h.service.Add(r.Context(), req.ToServiceRequest(activityID))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrActivityNotFound):
			h.logger.Warn("POST /activities/{id}/reviews - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /activities/{id}/reviews - Invalid review: activity_id=%s, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		default:
			h.logger.Error("POST /activities/{id}/reviews - Failed to add review: activity_id=%s, error=%v", activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /activities/{id}/reviews - Review added: activity_id=%s, review_id=%s", activityID, review.ID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
