// Package search implements the debounced location autocomplete.
package search

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

// Результаты запроса для метрик
const (
	ResultOK      = "ok"
	ResultEmpty   = "empty"
	ResultError   = "error"
	ResultSkipped = "skipped"
	ResultStale   = "stale"
)

// Options настройки поиска
type Options struct {
	Debounce      time.Duration
	MinQueryChars int
	Timeout       time.Duration // таймаут одного запроса к Suggester, 0 - без таймаута
	Metrics       Metrics
}

// LocationSearch дебаунс ввода + last-request-wins.
// Каждый ввод получает номер поколения; результат применяется, только если номер всё ещё последний.
type LocationSearch struct {
	suggester Suggester
	logger    Logger
	opts      Options

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	cancel     context.CancelFunc
	query      string
	results    []domain.LocationSuggestion
	onResults  func(query string, results []domain.LocationSuggestion)
	closed     bool
}

// NewLocationSearch создает поиск. Нулевые опции заменяются значениями по умолчанию.
func NewLocationSearch(suggester Suggester, logger Logger, opts Options) *LocationSearch {
	if opts.Debounce <= 0 {
		opts.Debounce = domain.DefaultSuggestDebounce
	}
	if opts.MinQueryChars <= 0 {
		opts.MinQueryChars = domain.DefaultSuggestMinQueryChars
	}
	return &LocationSearch{
		suggester: suggester,
		logger:    logger,
		opts:      opts,
		results:   []domain.LocationSuggestion{},
	}
}

// OnResults задает колбэк, вызываемый при применении свежих результатов
func (s *LocationSearch) OnResults(fn func(query string, results []domain.LocationSuggestion)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResults = fn
}

// Input обрабатывает очередное изменение текста.
// Запрос уходит после паузы Debounce и только с последним текстом.
// Короткий текст сразу очищает подсказки без запроса.
func (s *LocationSearch) Input(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.generation++
	gen := s.generation
	s.query = text
	s.stopPendingLocked()

	if !s.queryLongEnough(text) {
		s.results = []domain.LocationSuggestion{}
		onResults := s.onResults
		s.mu.Unlock()
		s.observe(ResultSkipped)
		if onResults != nil {
			onResults(text, []domain.LocationSuggestion{})
		}
		return
	}

	s.timer = time.AfterFunc(s.opts.Debounce, func() {
		s.fire(gen, text)
	})
	s.mu.Unlock()
}

// Results последние примененные подсказки
func (s *LocationSearch) Results() []domain.LocationSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LocationSuggestion, len(s.results))
	copy(out, s.results)
	return out
}

// Query последний введенный текст
func (s *LocationSearch) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Close останавливает таймер и отменяет запрос в полете
func (s *LocationSearch) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.generation++
	s.stopPendingLocked()
}

// Lookup выполняет один запрос без дебаунса.
// Ошибки сервиса не возвращаются: логируются и превращаются в пустой список.
func (s *LocationSearch) Lookup(ctx context.Context, text string) []domain.LocationSuggestion {
	if !s.queryLongEnough(text) {
		s.observe(ResultSkipped)
		return []domain.LocationSuggestion{}
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	suggestions, err := s.suggester.Suggest(ctx, strings.TrimSpace(text))
	if err != nil {
		s.logger.Warn("LocationSearch: suggest failed for query=%q: %v", text, err)
		s.observe(ResultError)
		return []domain.LocationSuggestion{}
	}
	if len(suggestions) == 0 {
		s.observe(ResultEmpty)
		return []domain.LocationSuggestion{}
	}

	s.observe(ResultOK)
	return suggestions
}

func (s *LocationSearch) fire(gen uint64, text string) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	suggestions := s.Lookup(ctx, text)
	cancel()

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Info("LocationSearch: discarding stale results for query=%q", text)
		s.observe(ResultStale)
		return
	}
	s.results = suggestions
	s.cancel = nil
	onResults := s.onResults
	s.mu.Unlock()

	if onResults != nil {
		onResults(text, suggestions)
	}
}

func (s *LocationSearch) stopPendingLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *LocationSearch) queryLongEnough(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= s.opts.MinQueryChars
}

func (s *LocationSearch) observe(result string) {
	if s.opts.Metrics != nil {
		s.opts.Metrics.SuggestionLookup(result)
	}
}
