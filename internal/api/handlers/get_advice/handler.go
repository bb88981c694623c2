package get_advice

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	getAdvice "github.com/m04kA/SMC-AdventureBooking/internal/usecase/get_advice"
)

const (
	msgNotFound = "activity not found"
)

// AdviceResponse HTTP response model
type AdviceResponse struct {
	ActivityID string `json:"activityId"`
	Location   string `json:"location"`
	Category   string `json:"category"`
	Text       string `json:"text"`
	Fallback   bool   `json:"fallback"`
}

type Handler struct {
	useCase GetAdviceUseCase
	logger  Logger
}

func NewHandler(useCase GetAdviceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/advice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	result, err := h.useCase.Execute(r.Context(), &getAdvice.Request{ActivityID: activityID})
	if err != nil {
		if errors.Is(err, getAdvice.ErrActivityNotFound) {
			h.logger.Warn("GET /activities/{id}/advice - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /activities/{id}/advice - Failed to get advice: activity_id=%s, error=%v", activityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /activities/{id}/advice - Advice retrieved: activity_id=%s, fallback=%t", activityID, result.Fallback)
	handlers.RespondJSON(w, http.StatusOK, AdviceResponse{
		ActivityID: result.ActivityID,
		Location:   result.Location,
		Category:   result.Category,
		Text:       result.Text,
		Fallback:   result.Fallback,
	})
}
