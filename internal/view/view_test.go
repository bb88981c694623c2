package view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	bookingStore "github.com/m04kA/SMC-AdventureBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AdventureBooking/internal/integrations/advice"
	"github.com/m04kA/SMC-AdventureBooking/internal/integrations/payment"
	"github.com/m04kA/SMC-AdventureBooking/internal/usecase/booking_flow"
	"github.com/m04kA/SMC-AdventureBooking/internal/usecase/get_advice"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/dismiss"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/search"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
)

var regions = Regions{
	Location: dismiss.Rect{X: 0, Y: 0, Width: 300, Height: 400},
	Date:     dismiss.Rect{X: 310, Y: 0, Width: 300, Height: 400},
	Guests:   dismiss.Rect{X: 620, Y: 0, Width: 200, Height: 200},
}

var (
	insideGuests = dismiss.Point{X: 700, Y: 50}
	outsideAll   = dismiss.Point{X: 2000, Y: 2000}
)

type staticSuggester struct{}

func (staticSuggester) Suggest(_ context.Context, text string) ([]domain.LocationSuggestion, error) {
	return []domain.LocationSuggestion{{DisplayName: text + ", India", CityName: text, SuggestionID: "x"}}, nil
}

func newSearchBar() *SearchBar {
	location := search.NewLocationSearch(staticSuggester{}, logger.Nop(), search.Options{Debounce: 10 * time.Millisecond})
	return NewSearchBar(location, regions, time.Now())
}

func TestSearchBar_PopoversCloseIndependently(t *testing.T) {
	bar := newSearchBar()
	source := dismiss.NewBroadcaster()
	bar.Mount(source)
	bar.Mount(source)
	defer bar.Unmount()
	assert.Equal(t, 1, source.Subscribers())

	bar.TypeLocation("Goa")
	assert.True(t, bar.ToggleGuests())
	assert.Equal(t, []string{PopoverGuests, PopoverLocation}, bar.Coordinator().OpenIDs())

	source.Dispatch(insideGuests)
	assert.Equal(t, []string{PopoverGuests}, bar.Coordinator().OpenIDs())

	// +/- внутри поповера не переключают его
	assert.True(t, bar.IncrementGuests())
	assert.True(t, bar.Coordinator().IsOpen(PopoverGuests))

	source.Dispatch(outsideAll)
	assert.Empty(t, bar.Coordinator().OpenIDs())
}

func TestSearchBar_UnmountRemovesListener(t *testing.T) {
	bar := newSearchBar()
	source := dismiss.NewBroadcaster()
	bar.Mount(source)
	bar.Unmount()
	assert.Equal(t, 0, source.Subscribers())
}

func TestSearchBar_SuggestionsAndPick(t *testing.T) {
	bar := newSearchBar()
	defer bar.Unmount()

	bar.TypeLocation("Varkala")
	assert.Eventually(t, func() bool { return len(bar.Suggestions()) == 1 }, time.Second, 5*time.Millisecond)

	bar.PickSuggestion(bar.Suggestions()[0])
	assert.False(t, bar.Coordinator().IsOpen(PopoverLocation))
	assert.Equal(t, "Varkala", bar.Criteria().Text)
}

func TestSearchBar_DateSelectionClosesCalendar(t *testing.T) {
	bar := newSearchBar()
	defer bar.Unmount()

	assert.True(t, bar.ToggleDate())
	bar.Calendar().Navigate(1)
	assert.True(t, bar.SelectDay(10))
	assert.False(t, bar.Coordinator().IsOpen(PopoverDate))
}

func TestSearchBar_Results(t *testing.T) {
	bar := newSearchBar()
	defer bar.Unmount()
	c := catalog.NewDefault()

	assert.Len(t, bar.Results(c), 10)

	bar.SetCategory("Water Sports")
	for bar.Guests().Value() < 8 {
		bar.IncrementGuests()
	}
	got := bar.Results(c)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	bar.SetCategory("")
	assert.Equal(t, domain.CategoryAll, *bar.Criteria().Category)
}

func TestSearchBar_GuestsUnsetUntilTouched(t *testing.T) {
	bar := newSearchBar()
	defer bar.Unmount()

	assert.Nil(t, bar.Criteria().MinCapacity)

	require.True(t, bar.IncrementGuests())
	require.NotNil(t, bar.Criteria().MinCapacity)
	assert.Equal(t, 2, *bar.Criteria().MinCapacity)

	require.True(t, bar.DecrementGuests())
	require.NotNil(t, bar.Criteria().MinCapacity)
	assert.Equal(t, 1, *bar.Criteria().MinCapacity)

	bar.ClearGuests()
	assert.Nil(t, bar.Criteria().MinCapacity)
	assert.Equal(t, 1, bar.Guests().Value())
}

func newWidget(t *testing.T) (*BookingWidget, *bookingStore.MemoryStore) {
	t.Helper()
	c := catalog.NewDefault()
	activity, err := c.GetByID("1")
	require.NoError(t, err)

	store := bookingStore.NewMemoryStore()
	flows := booking_flow.NewUseCase(c, store, payment.NewGateway(5*time.Millisecond, nil), nil, nil, booking_flow.Config{
		ServiceFee:        domain.DefaultServiceFee,
		TaxRate:           domain.DefaultTaxRate,
		SubmitTimeout:     time.Second,
		MaxAttempts:       2,
		ConfirmationDelay: 20 * time.Millisecond,
	}, logger.Nop())

	loader := get_advice.NewLoader(advice.NewProvider(advice.Config{Enabled: true, Latency: time.Millisecond}, logger.Nop()), nil)
	return NewBookingWidget(*activity, flows, loader, regions, time.Now()), store
}

func TestBookingWidget_ReserveWithoutDateGuidesUser(t *testing.T) {
	w, _ := newWidget(t)
	defer w.Unmount()

	assert.ErrorIs(t, w.Reserve(), booking_flow.ErrDateRequired)
	assert.Equal(t, booking_flow.MsgPickDate, w.Guidance())
	assert.True(t, w.Coordinator().IsOpen(PopoverDate))
	assert.Equal(t, booking_flow.StateIdle, w.Flow().State())

	w.NavigateMonth(1)
	require.True(t, w.SelectDay(10))
	assert.Empty(t, w.Guidance())
	assert.False(t, w.Coordinator().IsOpen(PopoverDate))
}

func TestBookingWidget_FullBooking(t *testing.T) {
	w, store := newWidget(t)
	source := dismiss.NewBroadcaster()
	w.Mount(context.Background(), source)
	defer w.Unmount()

	w.NavigateMonth(1)
	require.True(t, w.SelectDay(10))
	assert.True(t, w.IncrementGuests())
	assert.Equal(t, int64(85), w.Quote().GrandTotal)
	assert.Equal(t, int64(89), w.Quote().TotalWithTax)

	require.NoError(t, w.Reserve())
	require.NoError(t, w.Confirm(context.Background()))
	assert.False(t, w.SubmitDisabled())

	assert.Eventually(t, func() bool {
		_, ok := w.Confirmation()
		return ok
	}, time.Second, 5*time.Millisecond)

	b, _ := w.Confirmation()
	assert.Equal(t, int64(85), b.TotalPrice)
	assert.Equal(t, 2, b.Guests)

	list, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	assert.Eventually(t, func() bool {
		text, loading := w.Advice()
		return !loading && text != ""
	}, time.Second, 5*time.Millisecond)
}
