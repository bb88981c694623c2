package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdventureBooking/internal/service/bookings"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
)

const knownID = "7f1c2b8e-3d4a-4b6c-9e0f-1a2b3c4d5e6f"

type fakeService struct{}

func (fakeService) GetByID(_ context.Context, id string) (*models.BookingResponse, error) {
	if id != knownID {
		return nil, bookings.ErrBookingNotFound
	}
	return &models.BookingResponse{ID: id, ActivityID: "1", Status: "confirmed"}, nil
}

func get(id string) *httptest.ResponseRecorder {
	h := NewHandler(fakeService{}, logger.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := get(knownID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"`+knownID+`"`)

	rec = get("0b8f4a52-0000-4000-8000-000000000000")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get("not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
