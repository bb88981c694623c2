package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/bookings"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-AdventureBooking/pkg/ptr"
)

const (
	msgInvalidStatus = "status must be one of confirmed, completed, cancelled"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=&activityId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Фильтры опциональны
	serviceReq := &models.ListBookingsRequest{}
	if status := query.Get("status"); status != "" {
		serviceReq.Status = ptr.Ptr(status)
	}
	if activityID := query.Get("activityId"); activityID != "" {
		serviceReq.ActivityID = ptr.Ptr(activityID)
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidStatus) {
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
