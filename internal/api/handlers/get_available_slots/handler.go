package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/urbanseva/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/urbanseva/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingCategory = "category is required"
	msgMissingDate     = "date is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgDateOutOfWindow = "date is outside the bookable window"
	msgInvalidInput    = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots
// Query params: category (required), date (required, YYYY-MM-DD), city (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category := query.Get("category")
	if category == "" {
		h.logger.Warn("GET /availability/slots - Missing category")
		handlers.RespondBadRequest(w, msgMissingCategory)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Optional on public routes, used for logging only
	userID, _ := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)

	useCaseReq, err := ToUseCaseRequest(userID, category, query.Get("city"), dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDateOutOfWindow):
			h.logger.Warn("GET /availability/slots - Date out of window: category=%s, date=%s", category, dateStr)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: category=%s, error=%v", category, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability/slots - Failed to get slots: category=%s, date=%s, error=%v",
				category, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/slots - Slots retrieved successfully: category=%s, date=%s, slots_count=%d",
		category, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
