package dismiss

import "sync"

// Broadcaster простой PointerSource для хоста и тестов
type Broadcaster struct {
	mu       sync.Mutex
	handlers map[int]func(Point)
	next     int
}

// NewBroadcaster создает источник без подписчиков
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{handlers: make(map[int]func(Point))}
}

// Subscribe реализует PointerSource
func (b *Broadcaster) Subscribe(handler func(Point)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.handlers[id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers, id)
		})
	}
}

// Subscribers число активных подписчиков
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// Dispatch рассылает событие pointer-down всем подписчикам
func (b *Broadcaster) Dispatch(p Point) {
	b.mu.Lock()
	handlers := make([]func(Point), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(p)
	}
}
