package domain

import (
	"time"

	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for the statuses a record may carry
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking is the persisted booking record.
// Records are immutable once created and kept newest-first.
type Booking struct {
	ID            string
	ActivityID    string
	ActivityTitle string // денормализовано для истории
	ActivityImage string
	Date          types.LocalDate
	Guests        int
	TotalPrice    int64 // unitPrice*guests + serviceFee, без налога
	Status        BookingStatus
	BookedAt      time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// BookingRequest is derived from the widget state and never stored
type BookingRequest struct {
	ActivityID string
	Date       types.LocalDate
	Guests     int
	UnitPrice  int64
	ServiceFee int64
}

// Total returns unitPrice*guests + serviceFee
func (r BookingRequest) Total() int64 {
	return r.UnitPrice*int64(r.Guests) + r.ServiceFee
}
