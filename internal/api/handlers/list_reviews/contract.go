package list_reviews

import (
	"context"

	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews/models"
)

type ReviewService interface {
	List(ctx context.Context, activityID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
