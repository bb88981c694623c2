// Package payment is a mocked payment collaborator for the booking flow.
package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

var (
	// ErrDeclined платеж отклонен
	ErrDeclined = errors.New("payment: declined")

	// ErrTimeout подтверждение не получено вовремя
	ErrTimeout = errors.New("payment: confirmation timed out")
)

// Outcome решает исход очередной попытки оплаты
type Outcome func(req domain.BookingRequest, attempt int) error

// AlwaysSucceed исход по умолчанию
func AlwaysSucceed(domain.BookingRequest, int) error {
	return nil
}

// FailFirst отклоняет первые n попыток
func FailFirst(n int) Outcome {
	return func(_ domain.BookingRequest, attempt int) error {
		if attempt <= n {
			return ErrDeclined
		}
		return nil
	}
}

// Gateway имитирует сетевой round-trip фиксированной длительности
type Gateway struct {
	latency time.Duration
	outcome Outcome

	mu       sync.Mutex
	attempts map[string]int
}

// NewGateway создает мок шлюза оплаты. outcome=nil означает успех всегда.
func NewGateway(latency time.Duration, outcome Outcome) *Gateway {
	if outcome == nil {
		outcome = AlwaysSucceed
	}
	return &Gateway{
		latency:  latency,
		outcome:  outcome,
		attempts: make(map[string]int),
	}
}

// Confirm ждет latency и возвращает исход. Отмена контекста прерывает ожидание.
func (g *Gateway) Confirm(ctx context.Context, req domain.BookingRequest) error {
	key := fmt.Sprintf("%s/%s/%d", req.ActivityID, req.Date, req.Guests)

	g.mu.Lock()
	g.attempts[key]++
	attempt := g.attempts[key]
	g.mu.Unlock()

	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrTimeout
			}
			return ctx.Err()
		case <-timer.C:
		}
	}

	return g.outcome(req, attempt)
}
