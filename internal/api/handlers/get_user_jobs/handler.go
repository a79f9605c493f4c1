package get_user_jobs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/urbanseva/booking-service/internal/api/handlers"
	"github.com/urbanseva/booking-service/internal/api/middleware"
	jobsService "github.com/urbanseva/booking-service/internal/service/jobs"
	"github.com/urbanseva/booking-service/internal/service/jobs/models"
	"github.com/urbanseva/booking-service/pkg/ptr"
)

const (
	msgMissingUserID = "missing user ID"
	msgInvalidUserID = "invalid user ID"
	msgAccessDenied  = "access denied"
	msgInvalidStatus = "invalid status filter"
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

// Handle GET /api/v1/users/{userId}/jobs
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/jobs - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/jobs - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Customers can only list their own jobs
	if userID != authUserID {
		h.logger.Warn("GET /users/{id}/jobs - Access denied: user=%d requested jobs of user=%d",
			authUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetUserJobsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetUserJobs(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, jobsService.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/jobs - Invalid status filter: user=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/jobs - Failed to get jobs: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/jobs - Jobs retrieved successfully: user=%d, count=%d",
		userID, len(result.Jobs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
