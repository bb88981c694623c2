// Package calendar implements a single-day date picker bounded below by a minimum date.
package calendar

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

// Cell is one day of the rendered month grid
type Cell struct {
	Day      int
	Date     types.LocalDate
	Disabled bool
	Selected bool
	Today    bool
}

// Month is the rendered state of the displayed month
type Month struct {
	Year   int
	Month  time.Month
	Offset int // пустые ячейки перед 1-м числом, 0 = воскресенье
	Cells  []Cell
}

// DateSelector держит выбранный день, отображаемый месяц и нижнюю границу.
// Навигация по месяцам меняет только отображаемый месяц.
type DateSelector struct {
	mu sync.Mutex

	selected types.LocalDate
	minDate  types.LocalDate
	today    types.LocalDate

	year  int
	month time.Month

	onClose func()
}

// New создает селектор.
// Некорректная или пустая строка selected не ломает инициализацию: показывается текущий месяц.
// minDate по умолчанию - сегодняшний локальный день.
func New(selected string, minDate *types.LocalDate, now time.Time) *DateSelector {
	today := types.Today(now)

	s := &DateSelector{
		today:   today,
		minDate: today,
		year:    today.Year,
		month:   today.Month,
	}
	if minDate != nil && !minDate.IsZero() {
		s.minDate = *minDate
	}

	if parsed, err := types.ParseLocalDate(selected); err == nil {
		s.selected = parsed
		s.year = parsed.Year
		s.month = parsed.Month
	}

	return s
}

// OnClose задает хук, вызываемый после успешного выбора дня
func (s *DateSelector) OnClose(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClose = fn
}

// Selected возвращает выбранный день и признак наличия выбора
func (s *DateSelector) Selected() (types.LocalDate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, !s.selected.IsZero()
}

// MinDate возвращает нижнюю границу выбора
func (s *DateSelector) MinDate() types.LocalDate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minDate
}

// Displayed возвращает отображаемые год и месяц
func (s *DateSelector) Displayed() (int, time.Month) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.year, s.month
}

// IsDisabled сообщает, что день раньше minDate
func (s *DateSelector) IsDisabled(date types.LocalDate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return date.Before(s.minDate)
}

// Render строит сетку отображаемого месяца
func (s *DateSelector) Render() Month {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := types.NewLocalDate(s.year, s.month, 1)
	days := types.DaysInMonth(s.year, s.month)

	m := Month{
		Year:   s.year,
		Month:  s.month,
		Offset: int(first.Weekday()),
		Cells:  make([]Cell, 0, days),
	}

	for day := 1; day <= days; day++ {
		date := types.LocalDate{Year: s.year, Month: s.month, Day: day}
		m.Cells = append(m.Cells, Cell{
			Day:      day,
			Date:     date,
			Disabled: date.Before(s.minDate),
			Selected: date == s.selected,
			Today:    date == s.today,
		})
	}

	return m
}

// SelectDay выбирает день отображаемого месяца.
// Дни вне месяца и раньше minDate игнорируются (false, выбор не меняется).
// При успехе вызывает хук закрытия.
func (s *DateSelector) SelectDay(day int) (types.LocalDate, bool) {
	s.mu.Lock()

	if day < 1 || day > types.DaysInMonth(s.year, s.month) {
		s.mu.Unlock()
		return types.LocalDate{}, false
	}

	date := types.LocalDate{Year: s.year, Month: s.month, Day: day}
	if date.Before(s.minDate) {
		s.mu.Unlock()
		return types.LocalDate{}, false
	}

	s.selected = date
	onClose := s.onClose
	s.mu.Unlock()

	// хук вызывается без блокировки: хост может читать состояние селектора
	if onClose != nil {
		onClose()
	}
	return date, true
}

// Navigate сдвигает отображаемый месяц на delta месяцев
func (s *DateSelector) Navigate(delta int) (int, time.Month) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := types.NewLocalDate(s.year, s.month+time.Month(delta), 1)
	s.year = next.Year
	s.month = next.Month

	return s.year, s.month
}
