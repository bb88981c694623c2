package domain

// Difficulty of an activity
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
	DifficultyExtreme  Difficulty = "Extreme"
)

// Vendor hosts one or more activities
type Vendor struct {
	ID         string
	Name       string
	AvatarURL  string
	JoinedDate string
	Rating     float64
}

// Coordinates of the meeting point
type Coordinates struct {
	Lat float64
	Lng float64
}

// Activity is a bookable adventure from the static catalog
type Activity struct {
	ID          string
	Title       string
	Location    string
	Category    string
	Description string
	Price       int64 // цена за одного гостя, целые единицы валюты
	Rating      float64
	ReviewCount int
	Images      []string
	Difficulty  Difficulty
	Duration    string
	Vendor      Vendor
	Coordinates Coordinates
	Amenities   []string
	MaxGuests   int
}

// CoverImage returns the first image or an empty string
func (a *Activity) CoverImage() string {
	if len(a.Images) == 0 {
		return ""
	}
	return a.Images[0]
}

// Category groups activities on the listing page
type Category struct {
	Name string
	Icon string
}

// Review left by a guest
type Review struct {
	ID           string
	ActivityID   string
	AuthorName   string
	AuthorAvatar string
	Rating       float64
	Date         string // "March 2025"
	Comment      string
	HelpfulCount int
}

// RatingBucket is one row of the rating breakdown
type RatingBucket struct {
	Stars      int
	Percentage int
}
