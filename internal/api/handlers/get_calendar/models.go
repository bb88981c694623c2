package get_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/calendar"
)

// CellResponse день сетки
type CellResponse struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Disabled bool   `json:"disabled"`
	Selected bool   `json:"selected"`
	Today    bool   `json:"today"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year     int            `json:"year"`
	Month    int            `json:"month"`
	Title    string         `json:"title"` // "March 2025"
	Offset   int            `json:"offset"`
	MinDate  string         `json:"minDate"`
	Selected string         `json:"selected,omitempty"`
	Cells    []CellResponse `json:"cells"`
}

// FromMonth конвертирует отрисованный месяц в HTTP response
func FromMonth(m calendar.Month, s *calendar.DateSelector) *CalendarResponse {
	resp := &CalendarResponse{
		Year:    m.Year,
		Month:   int(m.Month),
		Title:   fmt.Sprintf("%s %d", m.Month, m.Year),
		Offset:  m.Offset,
		MinDate: s.MinDate().String(),
		Cells:   make([]CellResponse, 0, len(m.Cells)),
	}
	if selected, ok := s.Selected(); ok {
		resp.Selected = selected.String()
	}
	for _, c := range m.Cells {
		resp.Cells = append(resp.Cells, CellResponse{
			Day:      c.Day,
			Date:     c.Date.String(),
			Disabled: c.Disabled,
			Selected: c.Selected,
			Today:    c.Today,
		})
	}
	return resp
}
