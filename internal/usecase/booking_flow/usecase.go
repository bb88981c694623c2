package booking_flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/calendar"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/guests"
)

// UseCase use case бронирования: прогоняет весь поток за один запрос
type UseCase struct {
	catalog      ActivityCatalog
	ledger       *Ledger
	payment      PaymentGateway
	publisher    EventPublisher
	metrics      Metrics
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	activities ActivityCatalog,
	store BookingStore,
	payment PaymentGateway,
	publisher EventPublisher,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      activities,
		ledger:       NewLedger(store),
		payment:      payment,
		publisher:    publisher,
		metrics:      metrics,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// NewFlow создает поток для страницы активности с общими зависимостями use case
func (uc *UseCase) NewFlow(activity domain.Activity, date *calendar.DateSelector, guestSelector *guests.GuestSelector) *Flow {
	return NewFlow(activity, date, guestSelector, uc.cfg, Deps{
		Ledger:       uc.ledger,
		Payment:      uc.payment,
		Publisher:    uc.publisher,
		Metrics:      uc.metrics,
		TimeProvider: uc.timeProvider,
		Logger:       uc.logger,
	})
}

// Execute выполняет use case бронирования.
// Сбой отправки повторяется, пока не исчерпан MaxAttempts.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookingFlow: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookingFlow: activity=%s, date=%q, guests=%d", req.ActivityID, req.Date, req.Guests)

	activity, err := uc.catalog.GetByID(req.ActivityID)
	if err != nil {
		if errors.Is(err, catalog.ErrActivityNotFound) {
			uc.logger.Warn("BookingFlow: activity id=%s not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("BookingFlow: failed to get activity id=%s: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	// 1. Дата через календарь
	date, err := selectDate(req.Date, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("BookingFlow: date rejected: %v", err)
		return nil, err
	}

	// 2. Гости через счетчик с лимитом активности
	guestSelector := guests.New(domain.DefaultMinGuests, domain.DefaultMinGuests, activity.MaxGuests)
	if !guestSelector.Set(req.Guests) {
		uc.logger.Warn("BookingFlow: guests=%d out of [%d, %d] for activity id=%s",
			req.Guests, guestSelector.Min(), guestSelector.Max(), activity.ID)
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrGuestsOutOfRange, req.Guests, guestSelector.Min(), guestSelector.Max())
	}

	flow := uc.NewFlow(*activity, date, guestSelector)

	// 3. Без даты поток не двигается
	if err := flow.Reserve(); err != nil {
		uc.logger.Info("BookingFlow: reserve refused for activity id=%s: %v", activity.ID, err)
		return nil, err
	}

	// 4. Отправка с ограниченным числом повторов
	err = flow.Submit(ctx)
	for err != nil && flow.CanRetry() && ctx.Err() == nil {
		uc.logger.Warn("BookingFlow: attempt %d failed, retrying: %v", flow.Attempts(), err)
		err = flow.Retry(ctx)
	}
	if err != nil {
		uc.logger.Error("BookingFlow: booking failed for activity id=%s after %d attempts: %v",
			activity.ID, flow.Attempts(), err)
		return nil, err
	}

	booking, ok := flow.Booking()
	if !ok {
		return nil, fmt.Errorf("%w: flow finished in state %s without a booking", ErrInternal, flow.State())
	}

	return &Response{
		Booking:  booking,
		Quote:    flow.Quote(),
		Attempts: flow.Attempts(),
	}, nil
}
