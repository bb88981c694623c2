package add_review

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews/models"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
)

func post(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/api/v1/activities/"+id+"/reviews", strings.NewReader(body)),
		map[string]string{"activityId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	h := NewHandler(reviews.NewService(catalog.NewDefault(), logger.Nop()), logger.Nop())

	rec := post(h, "1", `{"rating":5,"comment":"Great day out"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "You", resp.AuthorName)
	assert.Equal(t, "Great day out", resp.Comment)
	assert.Equal(t, float64(5), resp.Rating)
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(reviews.NewService(catalog.NewDefault(), logger.Nop()), logger.Nop())

	assert.Equal(t, http.StatusBadRequest, post(h, "1", `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, "1", `{"rating":6,"comment":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, "1", `{"rating":4}`).Code)
	assert.Equal(t, http.StatusNotFound, post(h, "404", `{"rating":4,"comment":"x"}`).Code)
}
