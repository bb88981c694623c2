package get_advice

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/integrations/advice"
)

// Результаты для метрик
const (
	resultOK       = "ok"
	resultFallback = "fallback"
	resultStale    = "stale"
)

// UseCase советы по поездке для страницы активности
type UseCase struct {
	catalog  ActivityCatalog
	provider AdviceProvider
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(activities ActivityCatalog, provider AdviceProvider, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		catalog:  activities,
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute возвращает совет для активности.
// Недоступность провайдера не ошибка: в ответе будет текст-заглушка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	activity, err := uc.catalog.GetByID(req.ActivityID)
	if err != nil {
		if errors.Is(err, catalog.ErrActivityNotFound) {
			uc.logger.Warn("GetAdvice: activity id=%s not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	text := uc.provider.Advice(ctx, activity.Location, activity.Category)
	fallback := IsFallback(text)
	if fallback {
		uc.observe(resultFallback)
		uc.logger.Warn("GetAdvice: fallback text for activity id=%s", activity.ID)
	} else {
		uc.observe(resultOK)
	}

	return &Response{
		ActivityID: activity.ID,
		Location:   activity.Location,
		Category:   activity.Category,
		Text:       text,
		Fallback:   fallback,
	}, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.AdviceRequest(result)
	}
}

// IsFallback сообщает, что текст является заглушкой провайдера
func IsFallback(text string) bool {
	return text == "" || text == advice.FallbackText || text == advice.UnavailableText
}
