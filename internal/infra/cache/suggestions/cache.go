// Package suggestions caches location suggestions in Redis in front of the geocoding client.
package suggestions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

const keyPrefix = "location-suggest:"

// Redis подмножество redis.Cmdable, нужное кэшу
type Redis interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Suggester источник подсказок за кэшем
type Suggester interface {
	Suggest(ctx context.Context, text string) ([]domain.LocationSuggestion, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type cachedSuggestion struct {
	DisplayName  string `json:"displayName"`
	CityName     string `json:"cityName,omitempty"`
	CountryName  string `json:"countryName,omitempty"`
	SuggestionID string `json:"suggestionId"`
}

// CachedSuggester read-through кэш. Ошибки Redis не ломают поиск: идем напрямую в источник.
// Ошибки источника не кэшируются.
type CachedSuggester struct {
	next   Suggester
	client Redis
	ttl    time.Duration
	log    Logger
}

// NewCachedSuggester оборачивает источник подсказок кэшем
func NewCachedSuggester(next Suggester, client Redis, ttl time.Duration, log Logger) *CachedSuggester {
	return &CachedSuggester{next: next, client: client, ttl: ttl, log: log}
}

// Suggest реализует Suggester
func (c *CachedSuggester) Suggest(ctx context.Context, text string) ([]domain.LocationSuggestion, error) {
	key := Key(text)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		cached, decodeErr := decode(raw)
		if decodeErr == nil {
			return cached, nil
		}
		c.log.Warn("SuggestionsCache: corrupt entry key=%s: %v", key, decodeErr)
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn("SuggestionsCache: get key=%s failed: %v", key, err)
	}

	suggestions, err := c.next.Suggest(ctx, text)
	if err != nil {
		return nil, err
	}

	payload, err := encode(suggestions)
	if err != nil {
		c.log.Warn("SuggestionsCache: encode key=%s failed: %v", key, err)
		return suggestions, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("SuggestionsCache: set key=%s failed: %v", key, err)
	}

	return suggestions, nil
}

// Key ключ кэша для текста запроса
func Key(text string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(text))
}

func encode(list []domain.LocationSuggestion) ([]byte, error) {
	out := make([]cachedSuggestion, 0, len(list))
	for _, s := range list {
		out = append(out, cachedSuggestion{
			DisplayName:  s.DisplayName,
			CityName:     s.CityName,
			CountryName:  s.CountryName,
			SuggestionID: s.SuggestionID,
		})
	}
	return json.Marshal(out)
}

func decode(raw []byte) ([]domain.LocationSuggestion, error) {
	var in []cachedSuggestion
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	out := make([]domain.LocationSuggestion, 0, len(in))
	for _, s := range in {
		out = append(out, domain.LocationSuggestion{
			DisplayName:  s.DisplayName,
			CityName:     s.CityName,
			CountryName:  s.CountryName,
			SuggestionID: s.SuggestionID,
		})
	}
	return out, nil
}
