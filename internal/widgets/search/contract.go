package search

import (
	"context"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// Suggester внешний сервис подсказок локаций
type Suggester interface {
	Suggest(ctx context.Context, text string) ([]domain.LocationSuggestion, error)
}

// Metrics счетчик поисковых запросов
type Metrics interface {
	SuggestionLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
