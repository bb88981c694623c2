package reviews

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews/models"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestService() *Service {
	s := NewService(catalog.NewDefault(), logger.Nop())
	s.timeProvider = fixedTime{now: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)}
	return s
}

func TestList_GeneratedReviews(t *testing.T) {
	s := newTestService()

	resp, err := s.List(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, resp.Reviews, 5)
	assert.Len(t, resp.Breakdown, 5)
	assert.Equal(t, 5, resp.Breakdown[0].Stars)

	_, err = s.List(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestAdd_PrependsOwnReview(t *testing.T) {
	s := newTestService()

	before, err := s.List(context.Background(), "3")
	require.NoError(t, err)

	added, err := s.Add(context.Background(), &models.AddReviewRequest{ActivityID: "3", Rating: 4, Comment: "  Great dive!  "})
	require.NoError(t, err)
	assert.Equal(t, "You", added.AuthorName)
	assert.Equal(t, "Great dive!", added.Comment)
	assert.Equal(t, "March 2025", added.Date)
	assert.Equal(t, 4.0, added.Rating)

	after, err := s.List(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, after.Reviews, len(before.Reviews)+1)
	assert.Equal(t, added.ID, after.Reviews[0].ID)
	assert.Equal(t, before.ReviewCount+1, after.ReviewCount)
}

func TestAdd_Validation(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name string
		req  *models.AddReviewRequest
		want error
	}{
		{name: "empty comment", req: &models.AddReviewRequest{ActivityID: "1", Rating: 5, Comment: "  "}, want: ErrInvalidInput},
		{name: "long comment", req: &models.AddReviewRequest{ActivityID: "1", Rating: 5, Comment: strings.Repeat("a", 1001)}, want: ErrInvalidInput},
		{name: "rating low", req: &models.AddReviewRequest{ActivityID: "1", Rating: 0, Comment: "ok"}, want: ErrInvalidInput},
		{name: "rating high", req: &models.AddReviewRequest{ActivityID: "1", Rating: 6, Comment: "ok"}, want: ErrInvalidInput},
		{name: "unknown activity", req: &models.AddReviewRequest{ActivityID: "x", Rating: 5, Comment: "ok"}, want: ErrActivityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
