// Package advice produces travel tips for an activity's location and category.
package advice

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

const (
	// FallbackText возвращается, когда совет не удалось получить
	FallbackText = "Could not retrieve travel tips at this time."

	// UnavailableText возвращается, когда провайдер выключен в конфиге
	UnavailableText = "AI services are currently unavailable. Please check your API configuration."

	tipsTemplate = "Tips for %s in %s:\n1. Wear breathable layers.\n2. Arrive 15 mins early.\n3. Bring a water bottle."
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки провайдера
type Config struct {
	Enabled      bool
	Latency      time.Duration
	FallbackText string
}

// Provider симулирует генерацию совета с задержкой.
// Ошибок не возвращает: при недоступности отдает фиксированный текст.
type Provider struct {
	cfg Config
	log Logger
}

// NewProvider создает провайдер советов
func NewProvider(cfg Config, log Logger) *Provider {
	if cfg.Latency < 0 {
		cfg.Latency = domain.DefaultAdviceLatency
	}
	if cfg.FallbackText == "" {
		cfg.FallbackText = FallbackText
	}
	return &Provider{cfg: cfg, log: log}
}

// Advice возвращает советы для локации и категории.
// Отмена контекста во время ожидания дает FallbackText.
func (p *Provider) Advice(ctx context.Context, location, category string) string {
	if !p.cfg.Enabled {
		p.log.Warn("Advice: provider disabled, location=%q category=%q", location, category)
		return UnavailableText
	}

	if p.cfg.Latency > 0 {
		timer := time.NewTimer(p.cfg.Latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			p.log.Warn("Advice: request cancelled for location=%q: %v", location, ctx.Err())
			return p.cfg.FallbackText
		case <-timer.C:
		}
	}

	return fmt.Sprintf(tipsTemplate, category, location)
}
