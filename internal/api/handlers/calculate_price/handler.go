package calculate_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/urbanseva/booking-service/internal/api/handlers"
	calculatePrice "github.com/urbanseva/booking-service/internal/usecase/calculate_price"
)

const (
	msgInvalidBody       = "invalid request body"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgDateOutOfWindow   = "date is outside the bookable window"
	msgInvalidQuantity   = "sub-service quantity must be at least 1"
	msgUnknownSubService = "sub-service is not offered under this category"
	msgInvalidInput      = "invalid request parameters"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing/calculate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/calculate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Optional on public routes, used for logging only
	userID, _ := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /pricing/calculate - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrDateOutOfWindow):
			h.logger.Warn("POST /pricing/calculate - Date out of window: category=%s, date=%s",
				req.Category, req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, calculatePrice.ErrInvalidQuantity):
			h.logger.Warn("POST /pricing/calculate - Invalid quantity: category=%s, error=%v",
				req.Category, err)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, calculatePrice.ErrUnknownSubService):
			h.logger.Warn("POST /pricing/calculate - Unknown sub-service: category=%s, error=%v",
				req.Category, err)
			handlers.RespondBadRequest(w, msgUnknownSubService)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /pricing/calculate - Invalid input: category=%s, error=%v",
				req.Category, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			// ErrInvalidRule means broken configuration, not a bad request
			h.logger.Error("POST /pricing/calculate - Failed to calculate price: category=%s, error=%v",
				req.Category, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing/calculate - Price calculated successfully: category=%s, total=%.2f",
		req.Category, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
