package domain

import "time"

// Pricing defaults
const (
	DefaultServiceFee = 15   // фиксированный сбор за бронирование
	DefaultTaxRate    = 0.05 // налог показывается только в сводке, в totalPrice не входит
)

// Guest bounds
const (
	DefaultMinGuests = 1
	DefaultMaxGuests = 20
)

// Booking flow timings observed in the storefront
const (
	DefaultSubmitLatency     = 2000 * time.Millisecond
	DefaultSubmitTimeout     = 10 * time.Second
	DefaultSubmitAttempts    = 3
	DefaultConfirmationDelay = 300 * time.Millisecond
)

// Search and advice timings
const (
	DefaultSuggestDebounce      = 300 * time.Millisecond
	DefaultSuggestMinQueryChars = 3
	DefaultAdviceLatency        = 1000 * time.Millisecond
)

// CategoryAll matches every category
const CategoryAll = "All"

// Validation constants
const (
	MaxReviewCommentLength = 1000
	MinReviewRating        = 1
	MaxReviewRating        = 5
)

// MonthFormat YYYY-MM для навигации календаря
const MonthFormat = "2006-01"
