package get_activity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
)

const (
	msgNotFound = "activity not found"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	activity, err := h.catalog.GetByID(activityID)
	if err != nil {
		if errors.Is(err, catalog.ErrActivityNotFound) {
			h.logger.Warn("GET /activities/{id} - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /activities/{id} - Failed to get activity: activity_id=%s, error=%v", activityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /activities/{id} - Activity retrieved: activity_id=%s", activityID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainActivity(*activity))
}
