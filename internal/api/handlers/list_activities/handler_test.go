package list_activities

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
)

func list(t *testing.T, query string) (int, []handlers.ActivityResponse) {
	t.Helper()
	h := NewHandler(catalog.NewDefault(), logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/activities"+query, nil))

	var resp []handlers.ActivityResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

func ids(list []handlers.ActivityResponse) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestHandle(t *testing.T) {
	code, all := list(t, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, all, 10)

	_, water := list(t, "?category=Water+Sports")
	assert.Equal(t, []string{"1", "3", "9"}, ids(water))

	_, big := list(t, "?category=Water+Sports&guests=8")
	assert.Equal(t, []string{"1"}, ids(big))

	_, everything := list(t, "?category=All&guests=0")
	assert.Len(t, everything, 10)

	code, _ = list(t, "?guests=abc")
	assert.Equal(t, http.StatusBadRequest, code)
}
