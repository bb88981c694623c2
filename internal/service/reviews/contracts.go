package reviews

import (
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// ActivityCatalog источник активностей
type ActivityCatalog interface {
	GetByID(id string) (*domain.Activity, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
