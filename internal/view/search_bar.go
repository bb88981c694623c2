package view

import (
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/calendar"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/dismiss"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/guests"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/search"
)

// Regions области привязки поповеров на странице
type Regions struct {
	Location dismiss.Region
	Date     dismiss.Region
	Guests   dismiss.Region
}

// SearchBar состояние строки поиска на странице списка
type SearchBar struct {
	coordinator *dismiss.Coordinator
	location    *search.LocationSearch
	date        *calendar.DateSelector
	guests      *guests.GuestSelector

	category string
	text     string
	// пока счетчик не трогали, ограничения по гостям нет
	guestsSet bool

	deregister []func()
}

// NewSearchBar собирает строку поиска и регистрирует ее поповеры
func NewSearchBar(location *search.LocationSearch, regions Regions, now time.Time) *SearchBar {
	b := &SearchBar{
		coordinator: dismiss.NewCoordinator(),
		location:    location,
		date:        calendar.New("", nil, now),
		guests:      guests.New(domain.DefaultMinGuests, domain.DefaultMinGuests, domain.DefaultMaxGuests),
		category:    domain.CategoryAll,
	}

	b.deregister = append(b.deregister,
		b.coordinator.Register(PopoverLocation, regions.Location, nil),
		b.coordinator.Register(PopoverDate, regions.Date, nil),
		b.coordinator.Register(PopoverGuests, regions.Guests, nil),
	)
	b.date.OnClose(func() { b.coordinator.Close(PopoverDate) })

	return b
}

// Mount подписывает страницу на pointer-down один раз
func (b *SearchBar) Mount(source dismiss.PointerSource) {
	b.coordinator.Mount(source)
}

// Unmount снимает подписку, регистрации поповеров и останавливает поиск
func (b *SearchBar) Unmount() {
	b.coordinator.Unmount()
	for _, deregister := range b.deregister {
		deregister()
	}
	b.deregister = nil
	if b.location != nil {
		b.location.Close()
	}
}

// Coordinator координатор поповеров страницы
func (b *SearchBar) Coordinator() *dismiss.Coordinator {
	return b.coordinator
}

// TypeLocation обрабатывает ввод в поле локации
func (b *SearchBar) TypeLocation(text string) {
	b.text = text
	b.coordinator.Open(PopoverLocation)
	if b.location != nil {
		b.location.Input(text)
	}
}

// PickSuggestion подставляет город (или полное название) и закрывает подсказки
func (b *SearchBar) PickSuggestion(s domain.LocationSuggestion) {
	b.text = s.CityName
	if b.text == "" {
		b.text = s.DisplayName
	}
	b.coordinator.Close(PopoverLocation)
}

// Suggestions текущие подсказки
func (b *SearchBar) Suggestions() []domain.LocationSuggestion {
	if b.location == nil {
		return []domain.LocationSuggestion{}
	}
	return b.location.Results()
}

// ToggleDate открывает/закрывает календарь
func (b *SearchBar) ToggleDate() bool {
	return b.coordinator.Toggle(PopoverDate)
}

// Calendar календарь строки поиска
func (b *SearchBar) Calendar() *calendar.DateSelector {
	return b.date
}

// SelectDay выбирает день; успешный выбор закрывает календарь
func (b *SearchBar) SelectDay(day int) bool {
	_, ok := b.date.SelectDay(day)
	return ok
}

// ToggleGuests открывает/закрывает счетчик гостей
func (b *SearchBar) ToggleGuests() bool {
	return b.coordinator.Toggle(PopoverGuests)
}

// IncrementGuests "+" внутри поповера, поповер не переключается
func (b *SearchBar) IncrementGuests() bool {
	b.guestsSet = true
	return b.guests.Increment()
}

// DecrementGuests "-" внутри поповера, поповер не переключается
func (b *SearchBar) DecrementGuests() bool {
	b.guestsSet = true
	return b.guests.Decrement()
}

// ClearGuests снимает ограничение по гостям
func (b *SearchBar) ClearGuests() {
	b.guestsSet = false
	b.guests.Set(b.guests.Min())
}

// Guests счетчик гостей
func (b *SearchBar) Guests() *guests.GuestSelector {
	return b.guests
}

// SetCategory выбирает категорию, "All" снимает фильтр
func (b *SearchBar) SetCategory(name string) {
	if name == "" {
		name = domain.CategoryAll
	}
	b.category = name
}

// Criteria критерии фильтра по текущему состоянию
func (b *SearchBar) Criteria() catalog.Criteria {
	category := b.category
	criteria := catalog.Criteria{
		Category: &category,
		Text:     b.text,
	}
	if b.guestsSet {
		capacity := b.guests.Value()
		criteria.MinCapacity = &capacity
	}
	return criteria
}

// Results видимые активности
func (b *SearchBar) Results(c *catalog.Catalog) []domain.Activity {
	return c.Search(b.Criteria())
}
