package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/pkg/psqlbuilder"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"activity_id",
	"activity_title",
	"activity_image",
	"booking_date",
	"guests",
	"total_price",
	"status",
	"booked_at",
}

// Repository хранит список бронирований в PostgreSQL.
// Порядок списка (новые первыми) хранится в колонке position.
type Repository struct {
	db DB
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// ReadAll возвращает весь список в сохраненном порядке
func (r *Repository) ReadAll(ctx context.Context) ([]domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID,
			&b.ActivityID,
			&b.ActivityTitle,
			&b.ActivityImage,
			&b.Date,
			&b.Guests,
			&b.TotalPrice,
			&b.Status,
			&b.BookedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ReadAll - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReadAll - iterate rows: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// WriteAll заменяет список целиком в одной транзакции
func (r *Repository) WriteAll(ctx context.Context, bookings []domain.Booking) error {
	for _, b := range bookings {
		if !b.Status.IsValid() {
			return fmt.Errorf("%w: WriteAll - booking id=%s status=%q", ErrInvalidStatus, b.ID, b.Status)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: WriteAll - begin: %v", ErrTransaction, err)
	}
	defer func() {
		// после Commit вернет sql.ErrTxDone, это нормально
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(tableBookings).ToSql()
	if err != nil {
		return fmt.Errorf("%w: WriteAll - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: WriteAll - execute delete: %v", ErrExecQuery, err)
	}

	if len(bookings) > 0 {
		if err := insertAll(ctx, tx, bookings); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: WriteAll - commit: %v", ErrTransaction, err)
	}
	return nil
}

func insertAll(ctx context.Context, tx *sql.Tx, bookings []domain.Booking) error {
	insert := psqlbuilder.Insert(tableBookings).
		Columns(append(append([]string{}, bookingColumns...), "position")...)

	for i, b := range bookings {
		insert = insert.Values(
			b.ID,
			b.ActivityID,
			b.ActivityTitle,
			b.ActivityImage,
			b.Date,
			b.Guests,
			b.TotalPrice,
			string(b.Status),
			b.BookedAt,
			i,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: WriteAll - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: WriteAll - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}
