package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/integrations/geoapify"
)

// Драйверы хранилища бронирований
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Booking  BookingConfig  `toml:"booking"`
	Geoapify GeoapifyConfig `toml:"geoapify"`
	Advice   AdviceConfig   `toml:"advice"`
	Redis    RedisConfig    `toml:"redis"`
	Kafka    KafkaConfig    `toml:"kafka"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	JSON  bool   `toml:"json"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type BookingConfig struct {
	ServiceFee          int64   `toml:"service_fee"`
	TaxRate             float64 `toml:"tax_rate"`
	SubmitLatencyMs     int     `toml:"submit_latency_ms"`
	SubmitTimeoutMs     int     `toml:"submit_timeout_ms"`
	MaxAttempts         int     `toml:"max_attempts"`
	ConfirmationDelayMs int     `toml:"confirmation_delay_ms"`
	MinGuests           int     `toml:"min_guests"`
	MaxGuests           int     `toml:"max_guests"`
}

func (b BookingConfig) SubmitLatency() time.Duration {
	return time.Duration(b.SubmitLatencyMs) * time.Millisecond
}

func (b BookingConfig) SubmitTimeout() time.Duration {
	return time.Duration(b.SubmitTimeoutMs) * time.Millisecond
}

func (b BookingConfig) ConfirmationDelay() time.Duration {
	return time.Duration(b.ConfirmationDelayMs) * time.Millisecond
}

type GeoapifyConfig struct {
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	Timeout        int    `toml:"timeout"` // секунды
	DebounceMs     int    `toml:"debounce_ms"`
	MinQueryLength int    `toml:"min_query_length"`
}

func (g GeoapifyConfig) Debounce() time.Duration {
	return time.Duration(g.DebounceMs) * time.Millisecond
}

type AdviceConfig struct {
	Enabled      bool   `toml:"enabled"`
	LatencyMs    int    `toml:"latency_ms"`
	FallbackText string `toml:"fallback_text"`
}

func (a AdviceConfig) Latency() time.Duration {
	return time.Duration(a.LatencyMs) * time.Millisecond
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// Load читает config.toml, подтягивает .env (если есть) и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация без файла
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEOAPIFY_API_KEY"); v != "" {
		c.Geoapify.APIKey = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

func (c *Config) applyDefaults() {
	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 15)
	setInt(&c.Server.WriteTimeout, 15)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 10)

	setString(&c.Logs.Level, "info")

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "adventure_booking")

	setString(&c.Storage.Driver, StorageFile)
	setString(&c.Storage.Path, "data/bookings.json")

	setString(&c.Database.Host, "localhost")
	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 10)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)

	if c.Booking.ServiceFee == 0 {
		c.Booking.ServiceFee = domain.DefaultServiceFee
	}
	if c.Booking.TaxRate == 0 {
		c.Booking.TaxRate = domain.DefaultTaxRate
	}
	setInt(&c.Booking.SubmitLatencyMs, int(domain.DefaultSubmitLatency/time.Millisecond))
	setInt(&c.Booking.SubmitTimeoutMs, int(domain.DefaultSubmitTimeout/time.Millisecond))
	setInt(&c.Booking.MaxAttempts, domain.DefaultSubmitAttempts)
	setInt(&c.Booking.ConfirmationDelayMs, int(domain.DefaultConfirmationDelay/time.Millisecond))
	setInt(&c.Booking.MinGuests, domain.DefaultMinGuests)
	setInt(&c.Booking.MaxGuests, domain.DefaultMaxGuests)

	setString(&c.Geoapify.URL, geoapify.DefaultURL)
	setInt(&c.Geoapify.Timeout, 5)
	setInt(&c.Geoapify.DebounceMs, int(domain.DefaultSuggestDebounce/time.Millisecond))
	setInt(&c.Geoapify.MinQueryLength, domain.DefaultSuggestMinQueryChars)

	setInt(&c.Advice.LatencyMs, int(domain.DefaultAdviceLatency/time.Millisecond))

	setString(&c.Redis.Addr, "localhost:6379")
	setInt(&c.Redis.TTL, 3600)

	setString(&c.Kafka.Topic, "adventure-bookings")
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(c.Storage.Driver)
	switch c.Storage.Driver {
	case StorageFile, StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Booking.MinGuests > c.Booking.MaxGuests {
		return fmt.Errorf("%w: booking.min_guests > booking.max_guests", ErrInvalidConfig)
	}
	if c.Booking.TaxRate < 0 || c.Booking.ServiceFee < 0 {
		return fmt.Errorf("%w: negative booking fee or tax", ErrInvalidConfig)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("%w: kafka.brokers is empty", ErrInvalidConfig)
	}
	return nil
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
