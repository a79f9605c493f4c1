package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/urbanseva/booking-service/internal/api/handlers"
	getAvailableDates "github.com/urbanseva/booking-service/internal/usecase/get_available_dates"
)

const (
	msgMissingCategory = "category is required"
	msgInvalidDays     = "invalid days parameter"
	msgInvalidInput    = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/dates
// Query params: category (required), city (optional), days (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category := query.Get("category")
	if category == "" {
		h.logger.Warn("GET /availability/dates - Missing category")
		handlers.RespondBadRequest(w, msgMissingCategory)
		return
	}

	// Optional on public routes, used for logging only
	userID, _ := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)

	useCaseReq, err := ToUseCaseRequest(userID, category, query.Get("city"), query.Get("days"))
	if err != nil {
		h.logger.Warn("GET /availability/dates - Invalid days parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidRange):
			h.logger.Warn("GET /availability/dates - Invalid range: category=%s, error=%v", category, err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /availability/dates - Invalid input: category=%s, error=%v", category, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability/dates - Failed to get dates: category=%s, error=%v", category, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/dates - Dates retrieved successfully: category=%s, dates_count=%d",
		category, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
