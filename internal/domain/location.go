package domain

// LocationSuggestion is one autocomplete entry for the location search box
type LocationSuggestion struct {
	DisplayName  string
	CityName     string
	CountryName  string
	SuggestionID string
}
