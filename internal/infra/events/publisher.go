// Package events publishes booking lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// TypeBookingConfirmed тип события подтвержденного бронирования
const TypeBookingConfirmed = "booking.confirmed"

var (
	// ErrPublisherClosed возвращается после Close
	ErrPublisherClosed = errors.New("events: publisher closed")

	// ErrPublish возвращается при ошибке записи в Kafka
	ErrPublish = errors.New("events: failed to publish")
)

// MessageWriter подмножество *kafka.Writer
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingEvent тело сообщения
type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"bookingId"`
	ActivityID    string    `json:"activityId"`
	ActivityTitle string    `json:"activityTitle"`
	Date          string    `json:"date"`
	Guests        int       `json:"guests"`
	TotalPrice    int64     `json:"totalPrice"`
	Status        string    `json:"status"`
	BookedAt      time.Time `json:"bookedAt"`
}

// KafkaPublisher пишет события в один топик, ключ - id бронирования
type KafkaPublisher struct {
	writer MessageWriter
	log    Logger

	mu     sync.RWMutex
	closed bool
}

// NewKafkaPublisher создает publisher поверх kafka.Writer
func NewKafkaPublisher(brokers []string, topic string, log Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("events: at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("events: topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}

	return NewPublisher(writer, log), nil
}

// NewPublisher создает publisher с произвольным writer (для тестов)
func NewPublisher(writer MessageWriter, log Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, log: log}
}

// PublishBookingConfirmed публикует событие о новом бронировании
func (p *KafkaPublisher) PublishBookingConfirmed(ctx context.Context, b domain.Booking) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	payload, err := json.Marshal(BookingEvent{
		Type:          TypeBookingConfirmed,
		BookingID:     b.ID,
		ActivityID:    b.ActivityID,
		ActivityTitle: b.ActivityTitle,
		Date:          b.Date.String(),
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		BookedAt:      b.BookedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: encode event: %v", ErrPublish, err)
	}

	msg := kafka.Message{
		Key:   []byte(b.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(TypeBookingConfirmed)},
		},
		Time: b.BookedAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: booking id=%s: %v", ErrPublish, b.ID, err)
	}

	p.log.Info("Events: published %s for booking id=%s", TypeBookingConfirmed, b.ID)
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NoopPublisher используется, когда Kafka выключена
type NoopPublisher struct{}

// PublishBookingConfirmed ничего не делает
func (NoopPublisher) PublishBookingConfirmed(context.Context, domain.Booking) error {
	return nil
}

// Close ничего не делает
func (NoopPublisher) Close() error {
	return nil
}
