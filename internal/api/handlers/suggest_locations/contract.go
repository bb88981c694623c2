package suggest_locations

import (
	"context"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// LocationLookup поиск подсказок без debounce. Сбои деградируют до пустого списка.
type LocationLookup interface {
	Lookup(ctx context.Context, text string) []domain.LocationSuggestion
}

type Logger interface {
	Info(format string, v ...interface{})
}
