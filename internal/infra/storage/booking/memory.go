package booking

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// MemoryStore хранит список в памяти процесса
type MemoryStore struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: []domain.Booking{}}
}

// ReadAll возвращает копию списка
func (s *MemoryStore) ReadAll(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

// WriteAll заменяет список копией переданного
func (s *MemoryStore) WriteAll(_ context.Context, bookings []domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make([]domain.Booking, len(bookings))
	copy(s.bookings, bookings)
	return nil
}
