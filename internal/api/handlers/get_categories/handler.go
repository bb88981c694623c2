package get_categories

import (
	"net/http"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
)

// CategoryResponse категория каталога
type CategoryResponse struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

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

// Handle GET /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	categories := h.catalog.Categories()

	response := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, CategoryResponse{Name: c.Name, Icon: c.Icon})
	}

	h.logger.Info("GET /categories - Categories retrieved: count=%d", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
