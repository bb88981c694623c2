package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	addReviewHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/add_review"
	createBookingHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/create_booking"
	getActivityHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/get_activity"
	getAdviceHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/get_advice"
	getBookingHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/get_calendar"
	getCategoriesHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/get_categories"
	getQuoteHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/get_quote"
	listActivitiesHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/list_activities"
	listBookingsHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/list_bookings"
	listReviewsHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/list_reviews"
	suggestLocationsHandler "github.com/m04kA/SMC-AdventureBooking/internal/api/handlers/suggest_locations"
	"github.com/m04kA/SMC-AdventureBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AdventureBooking/internal/catalog"
	"github.com/m04kA/SMC-AdventureBooking/internal/config"
	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	suggestionsCache "github.com/m04kA/SMC-AdventureBooking/internal/infra/cache/suggestions"
	"github.com/m04kA/SMC-AdventureBooking/internal/infra/events"
	bookingStore "github.com/m04kA/SMC-AdventureBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AdventureBooking/internal/integrations/advice"
	"github.com/m04kA/SMC-AdventureBooking/internal/integrations/geoapify"
	"github.com/m04kA/SMC-AdventureBooking/internal/integrations/payment"
	bookingsService "github.com/m04kA/SMC-AdventureBooking/internal/service/bookings"
	reviewsService "github.com/m04kA/SMC-AdventureBooking/internal/service/reviews"
	bookingFlowUC "github.com/m04kA/SMC-AdventureBooking/internal/usecase/booking_flow"
	getAdviceUC "github.com/m04kA/SMC-AdventureBooking/internal/usecase/get_advice"
	getQuoteUC "github.com/m04kA/SMC-AdventureBooking/internal/usecase/get_quote"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/search"
	"github.com/m04kA/SMC-AdventureBooking/pkg/logger"
	"github.com/m04kA/SMC-AdventureBooking/pkg/metrics"
)

// BookingStore хранилище списка бронирований (file, postgres или memory)
type BookingStore interface {
	ReadAll(ctx context.Context) ([]domain.Booking, error)
	WriteAll(ctx context.Context, bookings []domain.Booking) error
}

// Publisher публикация событий бронирования
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, booking domain.Booking) error
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithFormat(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.JSON)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AdventureBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище бронирований
	var store BookingStore
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		store = bookingStore.NewRepository(db)

	case config.StorageMemory:
		log.Warn("Using in-memory booking store, bookings are lost on restart")
		store = bookingStore.NewMemoryStore()

	default:
		log.Info("Using file booking store at %s", cfg.Storage.Path)
		store = bookingStore.NewFileStore(cfg.Storage.Path)
	}

	// Каталог активностей
	activities := catalog.NewDefault()

	// Подсказки локаций: geoapify + опциональный кеш в redis
	var suggester search.Suggester = geoapify.NewClient(
		cfg.Geoapify.URL,
		cfg.Geoapify.APIKey,
		time.Duration(cfg.Geoapify.Timeout)*time.Second,
		log,
	)
	if cfg.Geoapify.APIKey == "" {
		log.Warn("GEOAPIFY_API_KEY is not set, location suggestions will be empty")
	}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, cache will fall through: %v", cfg.Redis.Addr, err)
		}
		cancel()

		suggester = suggestionsCache.NewCachedSuggester(suggester, redisClient,
			time.Duration(cfg.Redis.TTL)*time.Second, log)
		log.Info("Location suggestions cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}
	locationSearch := search.NewLocationSearch(suggester, log, search.Options{
		Debounce:      cfg.Geoapify.Debounce(),
		MinQueryChars: cfg.Geoapify.MinQueryLength,
		Timeout:       time.Duration(cfg.Geoapify.Timeout) * time.Second,
		Metrics:       metricsCollector,
	})
	defer locationSearch.Close()

	// Публикация событий
	var publisher Publisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Fatal("Failed to create kafka publisher: %v", err)
		}
		publisher = kafkaPublisher
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close publisher: %v", err)
		}
	}()

	// Интеграции
	adviceProvider := advice.NewProvider(advice.Config{
		Enabled:      cfg.Advice.Enabled,
		Latency:      cfg.Advice.Latency(),
		FallbackText: cfg.Advice.FallbackText,
	}, log)
	paymentGateway := payment.NewGateway(cfg.Booking.SubmitLatency(), payment.AlwaysSucceed)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store, log)
	reviewSvc := reviewsService.NewService(activities, log)

	// Инициализируем use cases
	bookingFlowUseCase := bookingFlowUC.NewUseCase(
		activities,
		store,
		paymentGateway,
		publisher,
		metricsCollector,
		bookingFlowUC.Config{
			ServiceFee:        cfg.Booking.ServiceFee,
			TaxRate:           cfg.Booking.TaxRate,
			SubmitTimeout:     cfg.Booking.SubmitTimeout(),
			MaxAttempts:       cfg.Booking.MaxAttempts,
			ConfirmationDelay: cfg.Booking.ConfirmationDelay(),
		},
		log,
	)
	getQuoteUseCase := getQuoteUC.NewUseCase(activities, cfg.Booking.ServiceFee, cfg.Booking.TaxRate, log)
	getAdviceUseCase := getAdviceUC.NewUseCase(activities, adviceProvider, metricsCollector, log)

	// Инициализируем handlers
	getCategories := getCategoriesHandler.NewHandler(activities, log)
	listActivities := listActivitiesHandler.NewHandler(activities, log)
	getActivity := getActivityHandler.NewHandler(activities, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	getAdvice := getAdviceHandler.NewHandler(getAdviceUseCase, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	addReview := addReviewHandler.NewHandler(reviewSvc, log)
	getCalendar := getCalendarHandler.NewHandler(log)
	suggestLocations := suggestLocationsHandler.NewHandler(locationSearch, log)
	createBooking := createBookingHandler.NewHandler(bookingFlowUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Logging(log))

	// --- Каталог ---
	api.HandleFunc("/categories", getCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities", listActivities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}", getActivity.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}/advice", getAdvice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}/reviews", listReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}/reviews", addReview.Handle).Methods(http.MethodPost)

	// --- Виджеты ---
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/suggest", suggestLocations.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
