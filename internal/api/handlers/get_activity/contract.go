package get_activity

import "github.com/m04kA/SMC-AdventureBooking/internal/domain"

type Catalog interface {
	GetByID(id string) (*domain.Activity, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
