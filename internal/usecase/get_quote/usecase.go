package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/pricing"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/guests"
)

// UseCase расчет стоимости для сводки бронирования
type UseCase struct {
	catalog    ActivityCatalog
	serviceFee int64
	taxRate    float64
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(activities ActivityCatalog, serviceFee int64, taxRate float64, logger Logger) *UseCase {
	return &UseCase{
		catalog:    activities,
		serviceFee: serviceFee,
		taxRate:    taxRate,
		logger:     logger,
	}
}

// Execute выполняет расчет
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	activity, err := uc.catalog.GetByID(req.ActivityID)
	if err != nil {
		if errors.Is(err, catalog.ErrActivityNotFound) {
			uc.logger.Warn("GetQuote: activity id=%s not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	counter := guests.New(domain.DefaultMinGuests, domain.DefaultMinGuests, activity.MaxGuests)
	if req.Guests != 0 && !counter.Set(req.Guests) {
		uc.logger.Warn("GetQuote: guests=%d out of range for activity id=%s", req.Guests, activity.ID)
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrGuestsOutOfRange, req.Guests, counter.Min(), counter.Max())
	}

	return &Response{
		ActivityID: activity.ID,
		MinGuests:  counter.Min(),
		MaxGuests:  counter.Max(),
		Quote:      pricing.Calculate(activity.Price, int64(counter.Value()), uc.serviceFee, uc.taxRate),
	}, nil
}
