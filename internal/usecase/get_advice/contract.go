package get_advice

import (
	"context"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// AdviceProvider генератор советов, не возвращает ошибок
type AdviceProvider interface {
	Advice(ctx context.Context, location, category string) string
}

// ActivityCatalog источник активностей
type ActivityCatalog interface {
	GetByID(id string) (*domain.Activity, error)
}

// Metrics счетчик запросов советов
type Metrics interface {
	AdviceRequest(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
