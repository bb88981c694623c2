package get_calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func render(t *testing.T, query string) (int, *CalendarResponse) {
	t.Helper()
	h := NewHandler(logger.Nop())
	h.timeProvider = fixedTime{now: time.Date(2025, time.March, 15, 23, 30, 0, 0, time.Local)}

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar"+query, nil))
	if rec.Code != http.StatusOK {
		return rec.Code, nil
	}
	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, &resp
}

func TestHandle_CurrentMonth(t *testing.T) {
	code, resp := render(t, "")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 3, resp.Month)
	assert.Equal(t, "March 2025", resp.Title)
	assert.Equal(t, 6, resp.Offset) // 1 марта 2025 - суббота
	assert.Len(t, resp.Cells, 31)
	assert.Equal(t, "2025-03-15", resp.MinDate)
	assert.True(t, resp.Cells[13].Disabled)
	assert.False(t, resp.Cells[14].Disabled)
	assert.True(t, resp.Cells[14].Today)
}

func TestHandle_MonthAndSelection(t *testing.T) {
	code, resp := render(t, "?month=2025-04&selected=2025-03-20")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, 4, resp.Month)
	assert.Equal(t, "2025-03-20", resp.Selected)
	for _, c := range resp.Cells {
		assert.False(t, c.Selected)
	}

	_, resp = render(t, "?selected=garbage")
	assert.Equal(t, 3, resp.Month)
	assert.Empty(t, resp.Selected)
}

func TestHandle_InvalidParams(t *testing.T) {
	code, _ := render(t, "?month=2025/04")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = render(t, "?minDate=tomorrow")
	assert.Equal(t, http.StatusBadRequest, code)
}
