package booking_flow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/pricing"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/calendar"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/guests"
)

// Deps внешние зависимости потока
type Deps struct {
	Ledger       *Ledger
	Payment      PaymentGateway
	Publisher    EventPublisher
	Metrics      Metrics
	TimeProvider TimeProvider
	Logger       Logger
}

// Flow один сеанс бронирования на странице активности.
//
//	idle -> awaiting_confirmation -> submitting -> confirmed
//	                                            -> failed -> submitting (Retry)
//
// Отправка не зависит от отмены контекста вызывающего: если хост закрыл окно,
// попытка дорабатывает в фоне, но не дольше SubmitTimeout.
type Flow struct {
	activity domain.Activity
	date     *calendar.DateSelector
	guests   *guests.GuestSelector
	cfg      Config
	deps     Deps

	mu          sync.Mutex
	state       State
	attempts    int
	lastErr     error
	record      *domain.Booking
	// оплата уже прошла для этого запроса, повтор ее не списывает
	paid        *domain.BookingRequest
	done        chan struct{}
	onConfirmed func(domain.Booking)
}

// NewFlow создает поток в состоянии idle
func NewFlow(
	activity domain.Activity,
	date *calendar.DateSelector,
	guestSelector *guests.GuestSelector,
	cfg Config,
	deps Deps,
) *Flow {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = domain.DefaultSubmitAttempts
	}
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = domain.DefaultSubmitTimeout
	}
	if deps.TimeProvider == nil {
		deps.TimeProvider = &RealTimeProvider{}
	}

	return &Flow{
		activity: activity,
		date:     date,
		guests:   guestSelector,
		cfg:      cfg,
		deps:     deps,
		state:    StateIdle,
	}
}

// OnConfirmed задает хук показа экрана подтверждения.
// Вызывается через ConfirmationDelay после перехода в confirmed.
func (f *Flow) OnConfirmed(fn func(domain.Booking)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onConfirmed = fn
}

// State текущее состояние
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err причина последнего сбоя (nil вне failed)
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Attempts число выполненных попыток отправки
func (f *Flow) Attempts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}

// Booking созданная запись, если поток подтвержден
func (f *Flow) Booking() (domain.Booking, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.record == nil {
		return domain.Booking{}, false
	}
	return *f.record, true
}

// Done закрывается по завершении текущей попытки. nil, если отправки не было.
func (f *Flow) Done() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Quote текущая стоимость по выбранному числу гостей
func (f *Flow) Quote() pricing.Quote {
	return pricing.Calculate(f.activity.Price, int64(f.guests.Value()), f.cfg.ServiceFee, f.cfg.TaxRate)
}

// Request собирает запрос из состояния виджетов
func (f *Flow) Request() (domain.BookingRequest, error) {
	date, ok := f.date.Selected()
	if !ok {
		return domain.BookingRequest{}, ErrDateRequired
	}
	return domain.BookingRequest{
		ActivityID: f.activity.ID,
		Date:       date,
		Guests:     f.guests.Value(),
		UnitPrice:  f.activity.Price,
		ServiceFee: f.cfg.ServiceFee,
	}, nil
}

// Reserve открывает подтверждение. Без выбранной даты поток не двигается.
func (f *Flow) Reserve() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateIdle {
		return fmt.Errorf("%w: reserve from %s", ErrInvalidState, f.state)
	}
	if _, ok := f.date.Selected(); !ok {
		f.observe(outcomeDateRequired)
		return ErrDateRequired
	}

	f.state = StateAwaitingConfirmation
	return nil
}

// Cancel закрывает окно подтверждения до отправки.
// Во время submitting ничего не делает: попытка дорабатывает в фоне.
func (f *Flow) Cancel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateAwaitingConfirmation {
		return false
	}
	f.state = StateIdle
	return true
}

// Submit отправляет бронирование и ждет исхода или отмены ctx.
// Отмена ctx прекращает только ожидание.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateAwaitingConfirmation {
		state := f.state
		f.mu.Unlock()
		return fmt.Errorf("%w: submit from %s", ErrInvalidState, state)
	}

	done, err := f.startLocked(ctx)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	return f.wait(ctx, done)
}

// Retry повторяет отправку из failed, пока не исчерпан MaxAttempts
func (f *Flow) Retry(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateFailed {
		state := f.state
		f.mu.Unlock()
		return fmt.Errorf("%w: retry from %s", ErrInvalidState, state)
	}
	if f.attempts >= f.cfg.MaxAttempts {
		f.mu.Unlock()
		return fmt.Errorf("%w: %d of %d used", ErrRetryExhausted, f.attempts, f.cfg.MaxAttempts)
	}

	done, err := f.startLocked(ctx)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	return f.wait(ctx, done)
}

// CanRetry сообщает, доступен ли повтор
func (f *Flow) CanRetry() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == StateFailed && f.attempts < f.cfg.MaxAttempts
}

func (f *Flow) startLocked(ctx context.Context) (chan struct{}, error) {
	req, err := f.Request()
	if err != nil {
		return nil, err
	}

	f.state = StateSubmitting
	f.attempts++
	f.lastErr = nil
	done := make(chan struct{})
	f.done = done

	go f.run(context.WithoutCancel(ctx), req, f.attempts, done)
	return done, nil
}

func (f *Flow) wait(ctx context.Context, done chan struct{}) error {
	select {
	case <-done:
		return f.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Flow) run(base context.Context, req domain.BookingRequest, attempt int, done chan struct{}) {
	defer close(done)

	ctx, cancel := context.WithTimeout(base, f.cfg.SubmitTimeout)
	defer cancel()

	f.logInfo("BookingFlow: submitting activity=%s date=%s guests=%d attempt=%d",
		req.ActivityID, req.Date, req.Guests, attempt)

	if f.alreadyPaid(req) {
		f.logInfo("BookingFlow: payment already confirmed for activity=%s, skipping", req.ActivityID)
	} else {
		if err := f.deps.Payment.Confirm(ctx, req); err != nil {
			f.fail(fmt.Errorf("%w: %w", ErrSubmitFailed, err))
			return
		}
		f.mu.Lock()
		paid := req
		f.paid = &paid
		f.mu.Unlock()
	}

	record := domain.Booking{
		ID:            uuid.NewString(),
		ActivityID:    f.activity.ID,
		ActivityTitle: f.activity.Title,
		ActivityImage: f.activity.CoverImage(),
		Date:          req.Date,
		Guests:        req.Guests,
		TotalPrice:    req.Total(),
		Status:        domain.StatusConfirmed,
		BookedAt:      f.deps.TimeProvider.Now(),
	}

	if err := f.deps.Ledger.Prepend(ctx, record); err != nil {
		f.fail(err)
		return
	}

	if f.deps.Publisher != nil {
		if err := f.deps.Publisher.PublishBookingConfirmed(ctx, record); err != nil {
			f.logWarn("BookingFlow: failed to publish event for booking id=%s: %v", record.ID, err)
		}
	}

	f.mu.Lock()
	f.state = StateConfirmed
	f.record = &record
	hook := f.onConfirmed
	f.mu.Unlock()

	f.observe(outcomeConfirmed)
	f.logInfo("BookingFlow: booking id=%s confirmed, total=%d", record.ID, record.TotalPrice)

	if hook != nil {
		time.AfterFunc(f.cfg.ConfirmationDelay, func() { hook(record) })
	}
}

func (f *Flow) alreadyPaid(req domain.BookingRequest) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paid != nil && *f.paid == req
}

func (f *Flow) fail(err error) {
	f.mu.Lock()
	f.state = StateFailed
	f.lastErr = err
	f.mu.Unlock()

	f.observe(outcomeFailed)
	f.logWarn("BookingFlow: submission failed for activity=%s: %v", f.activity.ID, err)
}

func (f *Flow) observe(outcome string) {
	if f.deps.Metrics != nil {
		f.deps.Metrics.BookingOutcome(outcome)
	}
}

func (f *Flow) logInfo(format string, v ...interface{}) {
	if f.deps.Logger != nil {
		f.deps.Logger.Info(format, v...)
	}
}

func (f *Flow) logWarn(format string, v ...interface{}) {
	if f.deps.Logger != nil {
		f.deps.Logger.Warn(format, v...)
	}
}
