package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/pricing"
	bookingFlow "github.com/m04kA/SMC-AdventureBooking/internal/usecase/booking_flow"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

type fakeUseCase struct {
	got  *bookingFlow.Request
	resp *bookingFlow.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookingFlow.Request) (*bookingFlow.Response, error) {
	f.got = req
	return f.resp, f.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &bookingFlow.Response{
		Booking: domain.Booking{
			ID:            "7f1c2b8e-3d4a-4b6c-9e0f-1a2b3c4d5e6f",
			ActivityID:    "1",
			ActivityTitle: "Surfing",
			Date:          types.NewLocalDate(2025, time.March, 10),
			Guests:        2,
			TotalPrice:    85,
			Status:        domain.StatusConfirmed,
			BookedAt:      time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		},
		Quote:    pricing.Calculate(35, 2, 15, 0.05),
		Attempts: 1,
	}}
	h := NewHandler(uc, logger.Nop())

	rec := post(h, `{"activityId":"1","date":"2025-03-10","guests":2}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, &bookingFlow.Request{ActivityID: "1", Date: "2025-03-10", Guests: 2}, uc.got)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(85), resp.Booking.TotalPrice)
	assert.Equal(t, "2025-03-10", resp.Booking.Date)
	assert.Equal(t, "confirmed", resp.Booking.Status)
	assert.Equal(t, int64(4), resp.Tax)
	assert.Equal(t, int64(89), resp.TotalWithTax)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		msg    string
	}{
		{"bad json", `{`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"unknown field", `{"activityId":"1","guests":1,"x":1}`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"missing activity id", `{"guests":1}`, nil, http.StatusBadRequest, msgInvalidInput},
		{"zero guests", `{"activityId":"1","guests":0}`, nil, http.StatusBadRequest, msgInvalidInput},
		{"no date", `{"activityId":"1","guests":1}`, bookingFlow.ErrDateRequired, http.StatusBadRequest, bookingFlow.MsgPickDate},
		{"not found", `{"activityId":"99","date":"2025-03-10","guests":1}`, bookingFlow.ErrActivityNotFound, http.StatusNotFound, msgActivityNotFound},
		{"past date", `{"activityId":"1","date":"2020-01-01","guests":1}`, bookingFlow.ErrDateUnavailable, http.StatusBadRequest, msgDateUnavailable},
		{"too many guests", `{"activityId":"2","date":"2025-03-10","guests":5}`, bookingFlow.ErrGuestsOutOfRange, http.StatusBadRequest, msgGuestsOutOfRange},
		{"declined", `{"activityId":"1","date":"2025-03-10","guests":1}`, fmt.Errorf("%w: declined", bookingFlow.ErrSubmitFailed), http.StatusBadGateway, msgSubmitFailed},
		{"internal", `{"activityId":"1","date":"2025-03-10","guests":1}`, bookingFlow.ErrInternal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.Nop())
			rec := post(h, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.msg), rec.Body.String())
		})
	}
}
