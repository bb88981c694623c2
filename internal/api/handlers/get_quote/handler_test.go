package get_quote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	getQuote "github.com/m04kA/SMC-AdventureBooking/internal/usecase/get_quote"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
)

func quote(id, query string) *httptest.ResponseRecorder {
	uc := getQuote.NewUseCase(catalog.NewDefault(), 15, 0.05, logger.Nop())
	h := NewHandler(uc, logger.Nop())
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/activities/"+id+"/quote"+query, nil),
		map[string]string{"activityId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := quote("1", "?guests=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(70), resp.LineTotal)
	assert.Equal(t, int64(85), resp.TotalPrice)
	assert.Equal(t, int64(4), resp.Tax)
	assert.Equal(t, int64(89), resp.TotalWithTax)
	assert.Equal(t, 8, resp.MaxGuests)
}

func TestHandle_DefaultsToMinimumGuests(t *testing.T) {
	rec := quote("1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Guests)
	assert.Equal(t, int64(50), resp.TotalPrice)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, quote("404", "").Code)
	assert.Equal(t, http.StatusBadRequest, quote("2", "?guests=2").Code)
	assert.Equal(t, http.StatusBadRequest, quote("1", "?guests=two").Code)
}
