package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/bookings/models"
)

// Service чтение списка бронирований
type Service struct {
	store  BookingStore
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(store BookingStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	list, err := s.store.ReadAll(ctx)
	if err != nil {
		s.logger.Error("GetByID: store error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	for i := range list {
		if list[i].ID == id {
			return models.FromDomainBooking(&list[i]), nil
		}
	}

	s.logger.Warn("GetByID: booking id=%s not found", id)
	return nil, ErrBookingNotFound
}

// List возвращает бронирования в сохраненном порядке (новые первыми).
// Опционально фильтрует по статусу и активности.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	var status *domain.BookingStatus
	if req != nil && req.Status != nil {
		parsed, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		status = &parsed
	}

	list, err := s.store.ReadAll(ctx)
	if err != nil {
		s.logger.Error("List: store error: %v", err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrInternal, err)
	}

	filtered := make([]domain.Booking, 0, len(list))
	for _, b := range list {
		if status != nil && b.Status != *status {
			continue
		}
		if req != nil && req.ActivityID != nil && b.ActivityID != *req.ActivityID {
			continue
		}
		filtered = append(filtered, b)
	}

	s.logger.Info("List: returning %d of %d bookings", len(filtered), len(list))
	return models.FromDomainBookingList(filtered), nil
}
