package list_activities

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/pkg/ptr"
)

const (
	msgInvalidGuests = "guests must be a positive integer"
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

// Handle GET /api/v1/activities?category=&q=&guests=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	criteria := catalog.Criteria{Text: query.Get("q")}

	// category и guests опциональны
	if category := query.Get("category"); category != "" {
		criteria.Category = ptr.Ptr(category)
	}
	if raw := query.Get("guests"); raw != "" {
		guests, err := strconv.Atoi(raw)
		if err != nil || guests < 0 {
			h.logger.Warn("GET /activities - Invalid guests: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidGuests)
			return
		}
		criteria.MinCapacity = ptr.Ptr(guests)
	}

	result := h.catalog.Search(criteria)

	h.logger.Info("GET /activities - Activities retrieved: q=%q, count=%d", criteria.Text, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainActivities(result))
}
