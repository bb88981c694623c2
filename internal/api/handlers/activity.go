package handlers

import "github.com/m04kA/SMC-AdventureBooking/internal/domain"

// VendorResponse организатор активности
type VendorResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	AvatarURL  string  `json:"avatarUrl"`
	JoinedDate string  `json:"joinedDate"`
	Rating     float64 `json:"rating"`
}

// CoordinatesResponse точка сбора
type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ActivityResponse активность каталога
type ActivityResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Location    string              `json:"location"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Price       int64               `json:"price"`
	Rating      float64             `json:"rating"`
	ReviewCount int                 `json:"reviewCount"`
	Images      []string            `json:"images"`
	Difficulty  string              `json:"difficulty"`
	Duration    string              `json:"duration"`
	Vendor      VendorResponse      `json:"vendor"`
	Coordinates CoordinatesResponse `json:"coordinates"`
	Amenities   []string            `json:"amenities"`
	MaxGuests   int                 `json:"maxGuests"`
}

// FromDomainActivity конвертирует domain модель в response
func FromDomainActivity(a domain.Activity) ActivityResponse {
	images := append([]string{}, a.Images...)
	amenities := append([]string{}, a.Amenities...)
	return ActivityResponse{
		ID:          a.ID,
		Title:       a.Title,
		Location:    a.Location,
		Category:    a.Category,
		Description: a.Description,
		Price:       a.Price,
		Rating:      a.Rating,
		ReviewCount: a.ReviewCount,
		Images:      images,
		Difficulty:  string(a.Difficulty),
		Duration:    a.Duration,
		Vendor: VendorResponse{
			ID:         a.Vendor.ID,
			Name:       a.Vendor.Name,
			AvatarURL:  a.Vendor.AvatarURL,
			JoinedDate: a.Vendor.JoinedDate,
			Rating:     a.Vendor.Rating,
		},
		Coordinates: CoordinatesResponse{Lat: a.Coordinates.Lat, Lng: a.Coordinates.Lng},
		Amenities:   amenities,
		MaxGuests:   a.MaxGuests,
	}
}

// FromDomainActivities конвертирует список активностей
func FromDomainActivities(list []domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromDomainActivity(a))
	}
	return out
}
