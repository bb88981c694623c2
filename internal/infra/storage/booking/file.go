package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

// fileRecord формат записи в JSON файле
type fileRecord struct {
	ID            string          `json:"id"`
	ActivityID    string          `json:"activityId"`
	ActivityTitle string          `json:"activityTitle"`
	ActivityImage string          `json:"activityImage"`
	Date          types.LocalDate `json:"date"`
	Guests        int             `json:"guests"`
	TotalPrice    int64           `json:"totalPrice"`
	Status        string          `json:"status"`
	BookedAt      time.Time       `json:"bookedAt"`
}

// FileStore хранит список бронирований в одном JSON файле.
// Отсутствующий файл читается как пустой список.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileStore создает файловое хранилище
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ReadAll читает весь список
func (s *FileStore) ReadAll(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	if len(data) == 0 {
		return []domain.Booking{}, nil
	}

	var records []fileRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrReadFile, s.path, err)
	}

	bookings := make([]domain.Booking, 0, len(records))
	for _, r := range records {
		bookings = append(bookings, domain.Booking{
			ID:            r.ID,
			ActivityID:    r.ActivityID,
			ActivityTitle: r.ActivityTitle,
			ActivityImage: r.ActivityImage,
			Date:          r.Date,
			Guests:        r.Guests,
			TotalPrice:    r.TotalPrice,
			Status:        domain.BookingStatus(r.Status),
			BookedAt:      r.BookedAt,
		})
	}
	return bookings, nil
}

// WriteAll перезаписывает файл через временный файл и rename
func (s *FileStore) WriteAll(_ context.Context, bookings []domain.Booking) error {
	records := make([]fileRecord, 0, len(bookings))
	for _, b := range bookings {
		if !b.Status.IsValid() {
			return fmt.Errorf("%w: booking id=%s status=%q", ErrInvalidStatus, b.ID, b.Status)
		}
		records = append(records, fileRecord{
			ID:            b.ID,
			ActivityID:    b.ActivityID,
			ActivityTitle: b.ActivityTitle,
			ActivityImage: b.ActivityImage,
			Date:          b.Date,
			Guests:        b.Guests,
			TotalPrice:    b.TotalPrice,
			Status:        string(b.Status),
			BookedAt:      b.BookedAt.UTC(),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWriteFile, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	tmp, err := os.CreateTemp(dir, ".bookings-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	return nil
}
