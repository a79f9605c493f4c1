package cancel_job

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/urbanseva/booking-service/internal/api/handlers"
	"github.com/urbanseva/booking-service/internal/api/middleware"
	jobsService "github.com/urbanseva/booking-service/internal/service/jobs"
)

const (
	msgMissingUserID = "missing user ID"
	msgInvalidJobID  = "invalid job ID"
	msgInvalidBody   = "invalid request body"
	msgJobNotFound   = "job not found"
	msgAccessDenied  = "access denied"
	msgCannotCancel  = "job cannot be cancelled in its current status"
	msgInvalidInput  = "invalid request parameters"
)

type Handler struct {
	service JobsService
	logger  Logger
}

func NewHandler(service JobsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/jobs/{jobId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /jobs/{id}/cancel - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	jobID, err := strconv.ParseInt(mux.Vars(r)["jobId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /jobs/{id}/cancel - Invalid job ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJobID)
		return
	}

	var req CancelJobRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /jobs/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)
			return
		}
	}

	if err := h.service.Cancel(r.Context(), jobID, req.ToServiceRequest(userID)); err != nil {
		switch {
		case errors.Is(err, jobsService.ErrJobNotFound):
			h.logger.Warn("PATCH /jobs/{id}/cancel - Job not found: id=%d", jobID)
			handlers.RespondNotFound(w, msgJobNotFound)

		case errors.Is(err, jobsService.ErrAccessDenied):
			h.logger.Warn("PATCH /jobs/{id}/cancel - Access denied: id=%d, user=%d", jobID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, jobsService.ErrCannotCancel):
			h.logger.Warn("PATCH /jobs/{id}/cancel - Cannot cancel: id=%d, user=%d", jobID, userID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, jobsService.ErrInvalidInput):
			h.logger.Warn("PATCH /jobs/{id}/cancel - Invalid input: id=%d, error=%v", jobID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /jobs/{id}/cancel - Failed to cancel job: id=%d, error=%v", jobID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /jobs/{id}/cancel - Job cancelled successfully: id=%d, user=%d", jobID, userID)
	w.WriteHeader(http.StatusNoContent)
}
