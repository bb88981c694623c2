package catalog

import (
	"errors"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

var (
	// ErrActivityNotFound возвращается, когда активность не найдена в каталоге
	ErrActivityNotFound = errors.New("catalog: activity not found")
)

// Catalog read-only каталог активностей и категорий
type Catalog struct {
	activities []domain.Activity
	categories []domain.Category
	byID       map[string]int
}

// New создает каталог из переданных данных
func New(activities []domain.Activity, categories []domain.Category) *Catalog {
	byID := make(map[string]int, len(activities))
	for i, a := range activities {
		byID[a.ID] = i
	}
	return &Catalog{
		activities: activities,
		categories: categories,
		byID:       byID,
	}
}

// NewDefault создает каталог со встроенными данными витрины
func NewDefault() *Catalog {
	return New(seedActivities, seedCategories)
}

// Activities возвращает копию списка активностей
func (c *Catalog) Activities() []domain.Activity {
	out := make([]domain.Activity, len(c.activities))
	copy(out, c.activities)
	return out
}

// Categories возвращает копию списка категорий
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// GetByID ищет активность по ID
func (c *Catalog) GetByID(id string) (*domain.Activity, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, ErrActivityNotFound
	}
	activity := c.activities[idx]
	return &activity, nil
}

// Search применяет ActivityFilter к каталогу
func (c *Catalog) Search(criteria Criteria) []domain.Activity {
	return Filter(c.activities, criteria)
}
