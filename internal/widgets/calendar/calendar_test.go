package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

var now = time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)

func TestNew_InvalidSelectedFallsBackToCurrentMonth(t *testing.T) {
	for _, selected := range []string{"", "not-a-date", "2025-13-40"} {
		s := New(selected, nil, now)

		year, month := s.Displayed()
		assert.Equal(t, 2025, year)
		assert.Equal(t, time.March, month)

		_, ok := s.Selected()
		assert.False(t, ok)
	}
}

func TestNew_ValidSelectedShowsItsMonth(t *testing.T) {
	s := New("2025-07-14", nil, now)

	year, month := s.Displayed()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.July, month)

	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "2025-07-14", selected.String())
}

func TestRender_OffsetAndDisabledCells(t *testing.T) {
	s := New("", nil, now)
	m := s.Render()

	// 1 марта 2025 - суббота
	assert.Equal(t, 6, m.Offset)
	require.Len(t, m.Cells, 31)

	for _, c := range m.Cells {
		assert.Equal(t, c.Day < 5, c.Disabled, "day %d", c.Day)
		assert.Equal(t, c.Day == 5, c.Today, "day %d", c.Day)
	}
}

func TestSelectDay_BeforeMinDateIsNoop(t *testing.T) {
	s := New("2025-03-20", nil, now)

	for day := 1; day < 5; day++ {
		_, ok := s.SelectDay(day)
		assert.False(t, ok)
	}

	selected, _ := s.Selected()
	assert.Equal(t, "2025-03-20", selected.String())
}

func TestSelectDay_OutOfRangeIsNoop(t *testing.T) {
	s := New("", nil, now)

	_, ok := s.SelectDay(0)
	assert.False(t, ok)
	_, ok = s.SelectDay(32)
	assert.False(t, ok)
}

func TestSelectDay_CallsCloseHook(t *testing.T) {
	s := New("", nil, now)
	closed := 0
	s.OnClose(func() { closed++ })

	_, ok := s.SelectDay(2)
	assert.False(t, ok)
	assert.Equal(t, 0, closed)

	date, ok := s.SelectDay(10)
	require.True(t, ok)
	assert.Equal(t, "2025-03-10", date.String())
	assert.Equal(t, 1, closed)
}

func TestSelectDay_LocalDateIndependentOfOffset(t *testing.T) {
	zones := []*time.Location{
		time.FixedZone("UTC+14", 14*3600),
		time.FixedZone("UTC-12", -12*3600),
		time.FixedZone("UTC+5:30", 5*3600+1800),
	}

	for _, loc := range zones {
		// почти полночь в зоне хоста
		hostNow := time.Date(2025, time.March, 9, 23, 59, 0, 0, loc)
		s := New("", nil, hostNow)

		date, ok := s.SelectDay(9)
		require.True(t, ok, loc.String())
		assert.Equal(t, "2025-03-09", date.String(), loc.String())

		date, ok = s.SelectDay(10)
		require.True(t, ok, loc.String())
		assert.Equal(t, "2025-03-10", date.String(), loc.String())
	}
}

func TestNavigate_KeepsSelection(t *testing.T) {
	s := New("2025-03-20", nil, now)

	year, month := s.Navigate(10)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.January, month)

	year, month = s.Navigate(-11)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.February, month)

	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "2025-03-20", selected.String())

	// в феврале все дни раньше minDate
	for _, c := range s.Render().Cells {
		assert.True(t, c.Disabled)
		assert.False(t, c.Selected)
	}
}

func TestCustomMinDate(t *testing.T) {
	minDate := types.NewLocalDate(2025, time.March, 15)
	s := New("", &minDate, now)

	assert.True(t, s.IsDisabled(types.NewLocalDate(2025, time.March, 14)))
	assert.False(t, s.IsDisabled(minDate))

	_, ok := s.SelectDay(14)
	assert.False(t, ok)
	_, ok = s.SelectDay(15)
	assert.True(t, ok)
}
