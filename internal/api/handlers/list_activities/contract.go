package list_activities

import (
	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

type Catalog interface {
	Search(criteria catalog.Criteria) []domain.Activity
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
