package booking_flow

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/calendar"
	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ActivityID) == "" {
		return fmt.Errorf("%w: activityId is required", ErrInvalidInput)
	}
	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrGuestsOutOfRange)
	}
	return nil
}

// selectDate проводит дату через календарь так же, как клик пользователя:
// пустая строка оставляет выбор пустым, день раньше сегодняшнего не выбирается.
func selectDate(raw string, now time.Time) (*calendar.DateSelector, error) {
	selector := calendar.New("", nil, now)
	if strings.TrimSpace(raw) == "" {
		return selector, nil
	}

	date, err := types.ParseLocalDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	year, month := selector.Displayed()
	selector.Navigate((date.Year-year)*12 + int(date.Month) - int(month))

	if _, ok := selector.SelectDay(date.Day); !ok {
		return nil, fmt.Errorf("%w: %s is before %s", ErrDateUnavailable, date, selector.MinDate())
	}
	return selector, nil
}
