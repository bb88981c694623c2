package get_advice

import (
	"context"

	getAdvice "github.com/m04kA/SMC-AdventureBooking/internal/usecase/get_advice"
)

type GetAdviceUseCase interface {
	Execute(ctx context.Context, req *getAdvice.Request) (*getAdvice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
