package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/pricing"
	"github.com/m04kA/SMC-AdventureBooking/internal/usecase/booking_flow"
	"github.com/m04kA/SMC-AdventureBooking/internal/usecase/get_advice"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/calendar"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/dismiss"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/guests"
)

// FlowFactory создает поток бронирования для виджета
type FlowFactory interface {
	NewFlow(activity domain.Activity, date *calendar.DateSelector, guestSelector *guests.GuestSelector) *booking_flow.Flow
}

// BookingWidget боковая панель бронирования на странице активности
type BookingWidget struct {
	activity    domain.Activity
	coordinator *dismiss.Coordinator
	date        *calendar.DateSelector
	guests      *guests.GuestSelector
	flow        *booking_flow.Flow
	advice      *get_advice.Loader

	mu           sync.Mutex
	guidance     string
	confirmation *domain.Booking

	deregister []func()
}

// NewBookingWidget собирает виджет для активности
func NewBookingWidget(
	activity domain.Activity,
	flows FlowFactory,
	adviceLoader *get_advice.Loader,
	regions Regions,
	now time.Time,
) *BookingWidget {
	w := &BookingWidget{
		activity:    activity,
		coordinator: dismiss.NewCoordinator(),
		date:        calendar.New("", nil, now),
		guests:      guests.New(domain.DefaultMinGuests, domain.DefaultMinGuests, activity.MaxGuests),
		advice:      adviceLoader,
	}
	w.flow = flows.NewFlow(activity, w.date, w.guests)

	w.deregister = append(w.deregister,
		w.coordinator.Register(PopoverDate, regions.Date, nil),
		w.coordinator.Register(PopoverGuests, regions.Guests, nil),
	)
	w.date.OnClose(func() {
		w.coordinator.Close(PopoverDate)
		w.setGuidance("")
	})
	w.flow.OnConfirmed(func(b domain.Booking) {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.confirmation = &b
	})

	return w
}

// Mount подписывает страницу на pointer-down и запускает загрузку советов
func (w *BookingWidget) Mount(ctx context.Context, source dismiss.PointerSource) {
	w.coordinator.Mount(source)
	if w.advice != nil {
		w.advice.Load(ctx, w.activity.Location, w.activity.Category)
	}
}

// Unmount снимает подписку и регистрации. Отправка в полете дорабатывает в фоне.
func (w *BookingWidget) Unmount() {
	w.coordinator.Unmount()
	for _, deregister := range w.deregister {
		deregister()
	}
	w.deregister = nil
	if w.advice != nil {
		w.advice.Reset()
	}
}

// Coordinator координатор поповеров виджета
func (w *BookingWidget) Coordinator() *dismiss.Coordinator {
	return w.coordinator
}

// Flow поток бронирования
func (w *BookingWidget) Flow() *booking_flow.Flow {
	return w.flow
}

// ToggleDate открывает/закрывает календарь
func (w *BookingWidget) ToggleDate() bool {
	return w.coordinator.Toggle(PopoverDate)
}

// NavigateMonth листает календарь, выбор не меняется
func (w *BookingWidget) NavigateMonth(delta int) {
	w.date.Navigate(delta)
}

// SelectDay выбирает день; успешный выбор закрывает календарь
func (w *BookingWidget) SelectDay(day int) bool {
	_, ok := w.date.SelectDay(day)
	return ok
}

// Calendar текущая сетка месяца
func (w *BookingWidget) Calendar() calendar.Month {
	return w.date.Render()
}

// ToggleGuests открывает/закрывает счетчик
func (w *BookingWidget) ToggleGuests() bool {
	return w.coordinator.Toggle(PopoverGuests)
}

// IncrementGuests "+" внутри поповера, поповер не переключается
func (w *BookingWidget) IncrementGuests() bool {
	return w.guests.Increment()
}

// DecrementGuests "-" внутри поповера, поповер не переключается
func (w *BookingWidget) DecrementGuests() bool {
	return w.guests.Decrement()
}

// Guests текущее число гостей
func (w *BookingWidget) Guests() int {
	return w.guests.Value()
}

// Quote стоимость для отображения
func (w *BookingWidget) Quote() pricing.Quote {
	return w.flow.Quote()
}

// Reserve кнопка "Reserve". Без даты показывает подсказку и открывает календарь.
func (w *BookingWidget) Reserve() error {
	err := w.flow.Reserve()
	if errors.Is(err, booking_flow.ErrDateRequired) {
		w.setGuidance(booking_flow.MsgPickDate)
		w.coordinator.Open(PopoverDate)
	}
	return err
}

// Guidance текст подсказки пользователю (пустой, если нет)
func (w *BookingWidget) Guidance() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.guidance
}

// Confirm отправка формы подтверждения
func (w *BookingWidget) Confirm(ctx context.Context) error {
	return w.flow.Submit(ctx)
}

// Retry повтор после сбоя
func (w *BookingWidget) Retry(ctx context.Context) error {
	return w.flow.Retry(ctx)
}

// CloseModal закрывает окно подтверждения
func (w *BookingWidget) CloseModal() bool {
	return w.flow.Cancel()
}

// SubmitDisabled кнопка отправки неактивна во время submitting
func (w *BookingWidget) SubmitDisabled() bool {
	return w.flow.State() == booking_flow.StateSubmitting
}

// Confirmation запись для экрана подтверждения, появляется после паузы
func (w *BookingWidget) Confirmation() (domain.Booking, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.confirmation == nil {
		return domain.Booking{}, false
	}
	return *w.confirmation, true
}

// Advice последний загруженный совет
func (w *BookingWidget) Advice() (string, bool) {
	if w.advice == nil {
		return "", false
	}
	return w.advice.Text()
}

func (w *BookingWidget) setGuidance(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.guidance = msg
}
