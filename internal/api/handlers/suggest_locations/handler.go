package suggest_locations

import (
	"net/http"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// SuggestionResponse подсказка локации
type SuggestionResponse struct {
	DisplayName  string `json:"displayName"`
	CityName     string `json:"cityName"`
	CountryName  string `json:"countryName"`
	SuggestionID string `json:"suggestionId"`
}

type Handler struct {
	lookup LocationLookup
	logger Logger
}

func NewHandler(lookup LocationLookup, logger Logger) *Handler {
	return &Handler{
		lookup: lookup,
		logger: logger,
	}
}

// Handle GET /api/v1/locations/suggest?text=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")

	suggestions := h.lookup.Lookup(r.Context(), text)

	h.logger.Info("GET /locations/suggest - Suggestions retrieved: text=%q, count=%d", text, len(suggestions))
	handlers.RespondJSON(w, http.StatusOK, fromDomain(suggestions))
}

func fromDomain(list []domain.LocationSuggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, SuggestionResponse{
			DisplayName:  s.DisplayName,
			CityName:     s.CityName,
			CountryName:  s.CountryName,
			SuggestionID: s.SuggestionID,
		})
	}
	return out
}
