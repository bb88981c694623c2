package add_review

import "github.com/m04kA/SMC-AdventureBooking/internal/service/reviews/models"

// AddReviewRequest HTTP request model
type AddReviewRequest struct {
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,max=1000"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddReviewRequest) ToServiceRequest(activityID string) *models.AddReviewRequest {
	return &models.AddReviewRequest{
		ActivityID: activityID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}
