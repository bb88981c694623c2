package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews/models"
)

const (
	ownAuthorName   = "You"
	ownAuthorAvatar = "https://ui-avatars.com/api/?name=You&background=random"
)

// Service отзывы активностей.
// Сгенерированные отзывы создаются при первом обращении, новые добавляются в начало.
// Хранятся только в памяти процесса.
type Service struct {
	catalog      ActivityCatalog
	timeProvider TimeProvider
	logger       Logger

	mu      sync.Mutex
	reviews map[string][]domain.Review
	added   map[string]int
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(activities ActivityCatalog, logger Logger) *Service {
	return &Service{
		catalog:      activities,
		timeProvider: realTimeProvider{},
		logger:       logger,
		reviews:      make(map[string][]domain.Review),
		added:        make(map[string]int),
	}
}

// List возвращает отзывы активности со сводкой рейтинга
func (s *Service) List(_ context.Context, activityID string) (*models.ReviewListResponse, error) {
	activity, err := s.getActivity(activityID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	list := s.loadLocked(activity.ID)
	out := make([]models.ReviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, models.FromDomainReview(r))
	}
	added := s.added[activity.ID]
	s.mu.Unlock()

	return &models.ReviewListResponse{
		ActivityID:  activity.ID,
		Rating:      activity.Rating,
		ReviewCount: activity.ReviewCount + added,
		Breakdown:   models.FromDomainBreakdown(catalog.RatingBreakdown()),
		Reviews:     out,
	}, nil
}

// Add добавляет отзыв текущего пользователя в начало списка
func (s *Service) Add(_ context.Context, req *models.AddReviewRequest) (*models.ReviewResponse, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrInvalidInput)
	}
	if len([]rune(comment)) > domain.MaxReviewCommentLength {
		return nil, fmt.Errorf("%w: comment is longer than %d characters", ErrInvalidInput, domain.MaxReviewCommentLength)
	}
	if req.Rating < domain.MinReviewRating || req.Rating > domain.MaxReviewRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinReviewRating, domain.MaxReviewRating)
	}

	activity, err := s.getActivity(req.ActivityID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	review := domain.Review{
		ID:           uuid.NewString(),
		ActivityID:   activity.ID,
		AuthorName:   ownAuthorName,
		AuthorAvatar: ownAuthorAvatar,
		Rating:       float64(req.Rating),
		Date:         now.Format(catalog.ReviewMonthFormat),
		Comment:      comment,
	}

	s.mu.Lock()
	existing := s.loadLocked(activity.ID)
	updated := make([]domain.Review, 0, len(existing)+1)
	updated = append(updated, review)
	s.reviews[activity.ID] = append(updated, existing...)
	s.added[activity.ID]++
	s.mu.Unlock()

	s.logger.Info("AddReview: review id=%s added to activity id=%s", review.ID, activity.ID)
	resp := models.FromDomainReview(review)
	return &resp, nil
}

func (s *Service) loadLocked(activityID string) []domain.Review {
	list, ok := s.reviews[activityID]
	if !ok {
		list = catalog.GenerateReviews(activityID, s.timeProvider.Now())
		s.reviews[activityID] = list
	}
	return list
}

func (s *Service) getActivity(id string) (*domain.Activity, error) {
	activity, err := s.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrActivityNotFound) {
			s.logger.Warn("Reviews: activity id=%s not found", id)
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}
	return activity, nil
}
