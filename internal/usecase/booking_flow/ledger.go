package booking_flow

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// Ledger сериализует read-prepend-write над BookingStore.
// Хранилище не умеет атомарный append, поэтому все записи идут через один мьютекс.
type Ledger struct {
	store BookingStore
	mu    sync.Mutex
}

// NewLedger создает ledger поверх хранилища
func NewLedger(store BookingStore) *Ledger {
	return &Ledger{store: store}
}

// Prepend добавляет запись в начало списка
func (l *Ledger) Prepend(ctx context.Context, booking domain.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, err := l.store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: read bookings: %v", ErrInternal, err)
	}

	updated := make([]domain.Booking, 0, len(existing)+1)
	updated = append(updated, booking)
	updated = append(updated, existing...)

	if err := l.store.WriteAll(ctx, updated); err != nil {
		return fmt.Errorf("%w: write bookings: %v", ErrInternal, err)
	}
	return nil
}
