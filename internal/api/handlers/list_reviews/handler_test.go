package list_reviews

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews"
	"github.com/m04kA/SMC-AdventureBooking/internal/service/reviews/models"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
)

func get(id string) *httptest.ResponseRecorder {
	h := NewHandler(reviews.NewService(catalog.NewDefault(), logger.Nop()), logger.Nop())
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/activities/"+id+"/reviews", nil),
		map[string]string{"activityId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := get("1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ReviewListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.ActivityID)
	assert.GreaterOrEqual(t, len(resp.Reviews), 4)
	assert.LessOrEqual(t, len(resp.Reviews), 7)
	assert.Len(t, resp.Breakdown, 5)

	assert.Equal(t, http.StatusNotFound, get("404").Code)
}
