package create_job

import (
	"errors"
	"net/http"

	"github.com/urbanseva/booking-service/internal/api/handlers"
	"github.com/urbanseva/booking-service/internal/api/middleware"
	createJob "github.com/urbanseva/booking-service/internal/usecase/create_job"
)

const (
	msgMissingUserID     = "missing user ID"
	msgInvalidBody       = "invalid request body"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgDateOutOfWindow   = "date is outside the bookable window"
	msgSlotUnavailable   = "slot is not available"
	msgInvalidQuantity   = "sub-service quantity must be at least 1"
	msgUnknownSubService = "sub-service is not offered under this category"
	msgInvalidInput      = "invalid request parameters"
)

type Handler struct {
	useCase CreateJobUseCase
	logger  Logger
}

func NewHandler(useCase CreateJobUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/jobs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /jobs - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateJobRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /jobs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /jobs - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createJob.ErrDateOutOfWindow):
			h.logger.Warn("POST /jobs - Date out of window: customer=%d, date=%s", customerID, req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, createJob.ErrSlotUnavailable):
			h.logger.Warn("POST /jobs - Slot unavailable: customer=%d, date=%s, slot=%s",
				customerID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createJob.ErrInvalidQuantity):
			h.logger.Warn("POST /jobs - Invalid quantity: customer=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, createJob.ErrUnknownSubService):
			h.logger.Warn("POST /jobs - Unknown sub-service: customer=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgUnknownSubService)

		case errors.Is(err, createJob.ErrInvalidInput):
			h.logger.Warn("POST /jobs - Invalid input: customer=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /jobs - Failed to create job: customer=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /jobs - Job created successfully: id=%d, customer=%d", result.JobID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
