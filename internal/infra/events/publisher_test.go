package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

var confirmed = domain.Booking{
	ID:            "6f1c",
	ActivityID:    "1",
	ActivityTitle: "White Water Rafting",
	Date:          types.NewLocalDate(2025, time.March, 10),
	Guests:        2,
	TotalPrice:    85,
	Status:        domain.StatusConfirmed,
	BookedAt:      time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
}

func TestPublishBookingConfirmed(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisher(w, logger.Nop())

	require.NoError(t, p.PublishBookingConfirmed(context.Background(), confirmed))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "6f1c", string(msg.Key))

	var event BookingEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, TypeBookingConfirmed, event.Type)
	assert.Equal(t, "2025-03-10", event.Date)
	assert.Equal(t, int64(85), event.TotalPrice)
	assert.Equal(t, "confirmed", event.Status)
}

func TestPublishBookingConfirmed_WriterError(t *testing.T) {
	p := NewPublisher(&fakeWriter{err: errors.New("leader not available")}, logger.Nop())
	assert.ErrorIs(t, p.PublishBookingConfirmed(context.Background(), confirmed), ErrPublish)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisher(w, logger.Nop())

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
	assert.ErrorIs(t, p.PublishBookingConfirmed(context.Background(), confirmed), ErrPublisherClosed)
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "bookings", logger.Nop())
	assert.Error(t, err)

	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "", logger.Nop())
	assert.Error(t, err)

	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "bookings", logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
