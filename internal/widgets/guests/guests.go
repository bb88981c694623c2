// Package guests implements a bounded guest counter.
package guests

import (
	"sync"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// GuestSelector ограниченный счетчик гостей, min <= value <= max всегда.
// Попытки выйти за границы - no-op, а не ошибка.
type GuestSelector struct {
	mu    sync.Mutex
	value int
	min   int
	max   int
}

// New создает счетчик. Границы <= 0 заменяются значениями по умолчанию (1/20),
// value приводится в диапазон при создании.
func New(value, min, max int) *GuestSelector {
	if min <= 0 {
		min = domain.DefaultMinGuests
	}
	if max <= 0 {
		max = domain.DefaultMaxGuests
	}
	if max < min {
		max = min
	}

	switch {
	case value < min:
		value = min
	case value > max:
		value = max
	}

	return &GuestSelector{value: value, min: min, max: max}
}

// Value текущее число гостей
func (g *GuestSelector) Value() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value
}

// Min нижняя граница
func (g *GuestSelector) Min() int {
	return g.min
}

// Max верхняя граница
func (g *GuestSelector) Max() int {
	return g.max
}

// Increment увеличивает счетчик, на max ничего не делает
func (g *GuestSelector) Increment() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.value >= g.max {
		return false
	}
	g.value++
	return true
}

// Decrement уменьшает счетчик, на min ничего не делает
func (g *GuestSelector) Decrement() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.value <= g.min {
		return false
	}
	g.value--
	return true
}

// Set устанавливает значение, вне диапазона ничего не делает
func (g *GuestSelector) Set(n int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n < g.min || n > g.max {
		return false
	}
	g.value = n
	return true
}

// CanIncrement для отрисовки неактивной кнопки "+"
func (g *GuestSelector) CanIncrement() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value < g.max
}

// CanDecrement для отрисовки неактивной кнопки "-"
func (g *GuestSelector) CanDecrement() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value > g.min
}
