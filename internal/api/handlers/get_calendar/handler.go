package get_calendar

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
	"github.com/m04kA/SMC-AdventureBooking/internal/widgets/calendar"
	"github.com/m04kA/SMC-AdventureBooking/pkg/types"
)

const (
	msgInvalidMonth   = "month must be in YYYY-MM format"
	msgInvalidMinDate = "minDate must be in YYYY-MM-DD format"
)

type Handler struct {
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/calendar?month=YYYY-MM&selected=YYYY-MM-DD&minDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	now := h.timeProvider.Now()

	// minDate опционален, по умолчанию сегодня
	var minDate *types.LocalDate
	if raw := query.Get("minDate"); raw != "" {
		parsed, err := types.ParseLocalDate(raw)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid minDate: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidMinDate)
			return
		}
		minDate = &parsed
	}

	// некорректный selected не ошибка: показываем текущий месяц
	selector := calendar.New(query.Get("selected"), minDate, now)

	if raw := query.Get("month"); raw != "" {
		month, err := time.ParseInLocation(domain.MonthFormat, raw, now.Location())
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid month: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		year, displayed := selector.Displayed()
		delta := (month.Year()-year)*12 + int(month.Month()) - int(displayed)
		selector.Navigate(delta)
	}

	response := FromMonth(selector.Render(), selector)

	h.logger.Info("GET /calendar - Calendar rendered: %d-%02d", response.Year, response.Month)
	handlers.RespondJSON(w, http.StatusOK, response)
}
