package get_advice

import (
	"context"
	"sync"
)

// Loader держит последний примененный совет для страницы.
// Каждый Load получает токен; результат применяется, только если токен все еще последний.
type Loader struct {
	provider AdviceProvider
	metrics  Metrics

	mu      sync.Mutex
	token   uint64
	text    string
	loading bool
	cancel  context.CancelFunc
}

// NewLoader создает загрузчик поверх провайдера
func NewLoader(provider AdviceProvider, metrics Metrics) *Loader {
	return &Loader{provider: provider, metrics: metrics}
}

// Load запускает загрузку в фоне и возвращает канал, закрываемый по ее завершении.
// Предыдущая незавершенная загрузка отменяется.
func (l *Loader) Load(ctx context.Context, location, category string) <-chan struct{} {
	l.mu.Lock()
	l.token++
	token := l.token
	if l.cancel != nil {
		l.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.loading = true
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		text := l.provider.Advice(loadCtx, location, category)

		l.mu.Lock()
		defer l.mu.Unlock()
		if token != l.token {
			if l.metrics != nil {
				l.metrics.AdviceRequest(resultStale)
			}
			return
		}
		l.text = text
		l.loading = false
		l.cancel = nil
	}()

	return done
}

// Text последний примененный совет и признак незавершенной загрузки
func (l *Loader) Text() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text, l.loading
}

// Reset отменяет загрузку и очищает текст (например, при смене активности)
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.token++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.text = ""
	l.loading = false
}
