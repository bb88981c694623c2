package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar-day layout used on the wire and in storage.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDate возвращается при некорректной строке даты
	ErrInvalidDate = errors.New("invalid date string format")
)

// LocalDate is a calendar day in the local calendar.
// It never passes through UTC, so formatting cannot shift the day near midnight.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewLocalDate builds a normalized date (e.g. day 32 of January becomes February 1).
func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// LocalDateOf takes the calendar day of t in t's own location.
func LocalDateOf(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}
}

// Today returns the calendar day of now in the local zone of now.
func Today(now time.Time) LocalDate {
	return LocalDateOf(now)
}

// ParseLocalDate parses a strict YYYY-MM-DD string.
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return LocalDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return LocalDateOf(t), nil
}

// String formats the date as zero-padded YYYY-MM-DD.
func (d LocalDate) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether the date is unset.
func (d LocalDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns local midnight of the date in loc.
func (d LocalDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Compare returns -1, 0 or +1.
func (d LocalDate) Compare(other LocalDate) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d LocalDate) Before(other LocalDate) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other.
func (d LocalDate) After(other LocalDate) bool {
	return d.Compare(other) > 0
}

// Weekday returns the day of week, Sunday = 0.
func (d LocalDate) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// MarshalJSON пишет дату как строку YYYY-MM-DD
func (d LocalDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON читает дату из строки YYYY-MM-DD (пустая строка = нулевая дата)
func (d *LocalDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = LocalDate{}
		return nil
	}
	parsed, err := ParseLocalDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer
func (d LocalDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan реализует sql.Scanner. Поддерживает DATE (time.Time) и текстовые колонки.
func (d *LocalDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = LocalDate{}
		return nil
	case time.Time:
		// lib/pq отдаёт DATE как полночь UTC, день берём без сдвига зоны
		*d = LocalDate{Year: v.Year(), Month: v.Month(), Day: v.Day()}
		return nil
	case string:
		parsed, err := ParseLocalDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDate, src)
	}
}
