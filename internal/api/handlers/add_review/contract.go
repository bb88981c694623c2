package add_review

import (
	"context"

	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews/models"
)

type ReviewService interface {
	Add(ctx context.Context, req *models.AddReviewRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
