package catalog

import (
	"strings"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// Criteria фильтр списка активностей.
// Каждое измерение опционально: nil / пустое значение означает "без ограничения".
type Criteria struct {
	Category    *string // nil или "All" - все категории
	Text        string  // подстрока по location или title, без учёта регистра
	MinCapacity *int    // nil или <= 0 - без ограничения по гостям
}

// Filter возвращает подмножество активностей, подходящих под критерии.
// Порядок исходного списка сохраняется, входной слайс не изменяется.
func Filter(activities []domain.Activity, criteria Criteria) []domain.Activity {
	text := strings.ToLower(criteria.Text)

	result := make([]domain.Activity, 0, len(activities))
	for _, activity := range activities {
		if !matchesCategory(activity, criteria.Category) {
			continue
		}
		if !matchesText(activity, text) {
			continue
		}
		if !matchesCapacity(activity, criteria.MinCapacity) {
			continue
		}
		result = append(result, activity)
	}

	return result
}

func matchesCategory(activity domain.Activity, category *string) bool {
	if category == nil || *category == "" || *category == domain.CategoryAll {
		return true
	}
	return activity.Category == *category
}

// matchesText ожидает уже приведённый к нижнему регистру текст
func matchesText(activity domain.Activity, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(activity.Location), text) ||
		strings.Contains(strings.ToLower(activity.Title), text)
}

func matchesCapacity(activity domain.Activity, minCapacity *int) bool {
	if minCapacity == nil || *minCapacity <= 0 {
		return true
	}
	return activity.MaxGuests >= *minCapacity
}
