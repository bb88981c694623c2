package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/pkg/ptr"
)

func ids(activities []domain.Activity) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.ID)
	}
	return out
}

func TestFilter_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	all := NewDefault().Activities()

	got := Filter(all, Criteria{Category: ptr.Ptr(domain.CategoryAll), Text: "", MinCapacity: ptr.Ptr(0)})
	assert.Equal(t, ids(all), ids(got))

	got = Filter(all, Criteria{})
	assert.Equal(t, ids(all), ids(got))
}

func TestFilter_Category(t *testing.T) {
	all := NewDefault().Activities()

	got := Filter(all, Criteria{Category: ptr.Ptr("Water Sports")})
	assert.Equal(t, []string{"1", "3", "9"}, ids(got))

	got = Filter(all, Criteria{Category: ptr.Ptr("Unknown")})
	assert.Empty(t, got)
}

func TestFilter_TextMatchesLocationOrTitleCaseInsensitive(t *testing.T) {
	all := []domain.Activity{
		{ID: "a", Title: "River Rafting", Location: "Rishikesh"},
		{ID: "b", Title: "Scuba", Location: "Goa"},
		{ID: "c", Title: "Goa Sunset Cruise", Location: "Panaji"},
	}

	assert.Equal(t, []string{"b", "c"}, ids(Filter(all, Criteria{Text: "GOA"})))
	assert.Equal(t, []string{"a"}, ids(Filter(all, Criteria{Text: "rafting"})))
}

func TestFilter_TextIsNotTrimmed(t *testing.T) {
	all := []domain.Activity{
		{ID: "a", Title: "Temple Trek", Location: "Bali"},
		{ID: "b", Title: "Island Hopping", Location: "North Bali"},
	}

	assert.Equal(t, []string{"a", "b"}, ids(Filter(all, Criteria{Text: "bali"})))
	assert.Equal(t, []string{"b"}, ids(Filter(all, Criteria{Text: " bali"})))
	assert.Empty(t, Filter(all, Criteria{Text: "   "}))
}

func TestFilter_MinCapacity(t *testing.T) {
	all := []domain.Activity{
		{ID: "a", MaxGuests: 1},
		{ID: "b", MaxGuests: 8},
		{ID: "c", MaxGuests: 12},
	}

	assert.Equal(t, []string{"b", "c"}, ids(Filter(all, Criteria{MinCapacity: ptr.Ptr(8)})))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Filter(all, Criteria{MinCapacity: ptr.Ptr(0)})))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Filter(all, Criteria{MinCapacity: ptr.Ptr(-3)})))
	assert.Empty(t, Filter(all, Criteria{MinCapacity: ptr.Ptr(13)}))
}

func TestFilter_CriteriaAreAndCombined(t *testing.T) {
	all := NewDefault().Activities()

	got := Filter(all, Criteria{
		Category:    ptr.Ptr("Trekking"),
		Text:        "kerala",
		MinCapacity: ptr.Ptr(2),
	})
	for _, a := range got {
		assert.Equal(t, "Trekking", a.Category)
		assert.GreaterOrEqual(t, a.MaxGuests, 2)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	all := NewDefault().Activities()
	criteria := Criteria{Category: ptr.Ptr("Safari"), MinCapacity: ptr.Ptr(6)}

	once := Filter(all, criteria)
	twice := Filter(once, criteria)
	assert.Equal(t, ids(once), ids(twice))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	all := NewDefault().Activities()
	before := ids(all)

	_ = Filter(all, Criteria{Category: ptr.Ptr("Flying")})
	assert.Equal(t, before, ids(all))
}
