package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// ListBookingsRequest фильтр списка бронирований
type ListBookingsRequest struct {
	Status     *string `json:"status,omitempty"`
	ActivityID *string `json:"activityId,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string `json:"id"`
	ActivityID    string `json:"activityId"`
	ActivityTitle string `json:"activityTitle"`
	ActivityImage string `json:"activityImage"`
	Date          string `json:"date"` // "2025-03-10"
	Guests        int    `json:"guests"`
	TotalPrice    int64  `json:"totalPrice"`
	Status        string `json:"status"`
	BookedAt      string `json:"bookedAt"` // RFC3339
}

// BookingListResponse список бронирований, новые первыми
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// ToDomainBookingStatus конвертирует строку в статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		ActivityID:    b.ActivityID,
		ActivityTitle: b.ActivityTitle,
		ActivityImage: b.ActivityImage,
		Date:          b.Date.String(),
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		BookedAt:      b.BookedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список
func FromDomainBookingList(list []domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromDomainBooking(&list[i]))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
