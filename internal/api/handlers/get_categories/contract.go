package get_categories

import "github.com/m04kA/SMC-AdventureBooking/internal/domain"

type Catalog interface {
	Categories() []domain.Category
}

type Logger interface {
	Info(format string, v ...interface{})
}
