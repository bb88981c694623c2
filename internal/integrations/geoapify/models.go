package geoapify

import "github.com/m04kA/SMC-AdventureBooking/internal/domain"

// autocompleteResponse ответ /v1/geocode/autocomplete (GeoJSON FeatureCollection)
type autocompleteResponse struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties properties `json:"properties"`
}

type properties struct {
	Formatted string `json:"formatted"`
	City      string `json:"city"`
	Country   string `json:"country"`
	PlaceID   string `json:"place_id"`
}

func (p properties) toDomain() domain.LocationSuggestion {
	return domain.LocationSuggestion{
		DisplayName:  p.Formatted,
		CityName:     p.City,
		CountryName:  p.Country,
		SuggestionID: p.PlaceID,
	}
}
