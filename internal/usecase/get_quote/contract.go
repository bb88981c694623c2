package get_quote

import "github.com/m04kA/SMC-AdventureBooking/internal/domain"

// ActivityCatalog источник активностей
type ActivityCatalog interface {
	GetByID(id string) (*domain.Activity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
