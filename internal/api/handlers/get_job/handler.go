package get_job

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
	msgJobNotFound   = "job not found"
	msgAccessDenied  = "access denied"
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

// Handle GET /api/v1/jobs/{jobId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /jobs/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	jobID, err := strconv.ParseInt(mux.Vars(r)["jobId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /jobs/{id} - Invalid job ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJobID)
		return
	}

	job, err := h.service.GetByID(r.Context(), jobID, userID)
	if err != nil {
		switch {
		case errors.Is(err, jobsService.ErrJobNotFound):
			h.logger.Warn("GET /jobs/{id} - Job not found: id=%d", jobID)
			handlers.RespondNotFound(w, msgJobNotFound)

		case errors.Is(err, jobsService.ErrAccessDenied):
			h.logger.Warn("GET /jobs/{id} - Access denied: id=%d, user=%d", jobID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /jobs/{id} - Failed to get job: id=%d, error=%v", jobID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /jobs/{id} - Job retrieved successfully: id=%d, user=%d", jobID, userID)
	handlers.RespondJSON(w, http.StatusOK, job)
}
