package models

import "github.com/m04kA/SMC-AdventureBooking/internal/domain"

// AddReviewRequest новый отзыв от текущего пользователя
type AddReviewRequest struct {
	ActivityID string
	Rating     int
	Comment    string
}

// ReviewResponse отзыв
type ReviewResponse struct {
	ID           string  `json:"id"`
	AuthorName   string  `json:"authorName"`
	AuthorAvatar string  `json:"authorAvatar"`
	Rating       float64 `json:"rating"`
	Date         string  `json:"date"`
	Comment      string  `json:"comment"`
	HelpfulCount int     `json:"helpfulCount"`
}

// RatingBucketResponse строка распределения оценок
type RatingBucketResponse struct {
	Stars      int `json:"stars"`
	Percentage int `json:"percentage"`
}

// ReviewListResponse отзывы активности со сводкой
type ReviewListResponse struct {
	ActivityID  string                 `json:"activityId"`
	Rating      float64                `json:"rating"`
	ReviewCount int                    `json:"reviewCount"`
	Breakdown   []RatingBucketResponse `json:"breakdown"`
	Reviews     []ReviewResponse       `json:"reviews"`
}

// FromDomainReview конвертирует domain модель в response
func FromDomainReview(r domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		AuthorName:   r.AuthorName,
		AuthorAvatar: r.AuthorAvatar,
		Rating:       r.Rating,
		Date:         r.Date,
		Comment:      r.Comment,
		HelpfulCount: r.HelpfulCount,
	}
}

// FromDomainBreakdown конвертирует распределение оценок
func FromDomainBreakdown(buckets []domain.RatingBucket) []RatingBucketResponse {
	out := make([]RatingBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, RatingBucketResponse{Stars: b.Stars, Percentage: b.Percentage})
	}
	return out
}
