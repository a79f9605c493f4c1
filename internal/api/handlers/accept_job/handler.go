package accept_job

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/urbanseva/booking-service/internal/api/handlers"
	"github.com/urbanseva/booking-service/internal/api/middleware"
	jobsService "github.com/urbanseva/booking-service/internal/service/jobs"
	"github.com/urbanseva/booking-service/internal/service/jobs/models"
)

const (
	msgMissingUserID = "missing user ID"
	msgInvalidJobID  = "invalid job ID"
	msgJobNotFound   = "job not found"
	msgAccessDenied  = "access denied"
	msgCannotAccept  = "job is no longer open for acceptance"
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

// Handle PATCH /api/v1/jobs/{jobId}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /jobs/{id}/accept - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	jobID, err := strconv.ParseInt(mux.Vars(r)["jobId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /jobs/{id}/accept - Invalid job ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJobID)
		return
	}

	req := &models.AcceptJobRequest{WorkerID: workerID}

	if err := h.service.Accept(r.Context(), jobID, req); err != nil {
		switch {
		case errors.Is(err, jobsService.ErrJobNotFound):
			h.logger.Warn("PATCH /jobs/{id}/accept - Job not found: id=%d", jobID)
			handlers.RespondNotFound(w, msgJobNotFound)

		case errors.Is(err, jobsService.ErrAccessDenied):
			h.logger.Warn("PATCH /jobs/{id}/accept - Access denied: id=%d, worker=%d", jobID, workerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, jobsService.ErrCannotAccept):
			h.logger.Warn("PATCH /jobs/{id}/accept - Cannot accept: id=%d, worker=%d", jobID, workerID)
			handlers.RespondConflict(w, msgCannotAccept)

		default:
			h.logger.Error("PATCH /jobs/{id}/accept - Failed to accept job: id=%d, error=%v", jobID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /jobs/{id}/accept - Job accepted successfully: id=%d, worker=%d", jobID, workerID)
	w.WriteHeader(http.StatusNoContent)
}
