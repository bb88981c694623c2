package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
	"github.com/m04kA/SMC-AdventureBooking/pkg/ptr"
	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

type stubStore struct {
	list []domain.Booking
	err  error
}

func (s stubStore) ReadAll(context.Context) ([]domain.Booking, error) {
	return s.list, s.err
}

func fixtures() []domain.Booking {
	at := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	return []domain.Booking{
		{ID: "c", ActivityID: "1", Date: types.NewLocalDate(2025, time.March, 10), Guests: 2, TotalPrice: 85, Status: domain.StatusConfirmed, BookedAt: at},
		{ID: "b", ActivityID: "2", Date: types.NewLocalDate(2025, time.February, 1), Guests: 1, TotalPrice: 90, Status: domain.StatusCompleted, BookedAt: at.Add(-time.Hour)},
		{ID: "a", ActivityID: "1", Date: types.NewLocalDate(2025, time.January, 5), Guests: 4, TotalPrice: 155, Status: domain.StatusCancelled, BookedAt: at.Add(-2 * time.Hour)},
	}
}

func TestList_KeepsOrder(t *testing.T) {
	s := NewService(stubStore{list: fixtures()}, logger.Nop())

	resp, err := s.List(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "c", resp.Bookings[0].ID)
	assert.Equal(t, "2025-03-10", resp.Bookings[0].Date)
	assert.Equal(t, "2025-03-01T08:00:00Z", resp.Bookings[0].BookedAt)
}

func TestList_Filters(t *testing.T) {
	s := NewService(stubStore{list: fixtures()}, logger.Nop())

	resp, err := s.List(context.Background(), &models.ListBookingsRequest{ActivityID: ptr.Ptr("1")})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = s.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("completed")})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "b", resp.Bookings[0].ID)

	_, err = s.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("pending")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_EmptyStoreGivesEmptyArray(t *testing.T) {
	s := NewService(stubStore{}, logger.Nop())

	resp, err := s.List(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Equal(t, 0, resp.Total)
}

func TestGetByID(t *testing.T) {
	s := NewService(stubStore{list: fixtures()}, logger.Nop())

	resp, err := s.GetByID(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, int64(90), resp.TotalPrice)

	_, err = s.GetByID(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = s.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStoreError(t *testing.T) {
	s := NewService(stubStore{err: errors.New("disk full")}, logger.Nop())

	_, err := s.List(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
	_, err = s.GetByID(context.Background(), "a")
	assert.ErrorIs(t, err, ErrInternal)
}
