package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

var req = domain.BookingRequest{
	ActivityID: "1",
	Date:       types.NewLocalDate(2025, time.March, 10),
	Guests:     2,
	UnitPrice:  35,
	ServiceFee: 15,
}

func TestConfirm_DefaultSucceeds(t *testing.T) {
	g := NewGateway(time.Millisecond, nil)
	assert.NoError(t, g.Confirm(context.Background(), req))
}

func TestConfirm_FailFirst(t *testing.T) {
	g := NewGateway(0, FailFirst(1))

	assert.ErrorIs(t, g.Confirm(context.Background(), req), ErrDeclined)
	assert.NoError(t, g.Confirm(context.Background(), req))
}

func TestConfirm_Timeout(t *testing.T) {
	g := NewGateway(time.Second, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, g.Confirm(ctx, req), ErrTimeout)
}
