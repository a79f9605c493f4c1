package get_pricing_rules

import (
	"net/http"

	"github.com/urbanseva/booking-service/internal/api/handlers"
	"github.com/urbanseva/booking-service/internal/api/middleware"
	"github.com/urbanseva/booking-service/pkg/ptr"
)

const msgMissingUserID = "missing user ID"

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing/rules
// Query params: category, city (optional). When either is present the
// handler resolves the effective rule set for that scope instead of
// listing all stored rule sets.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /pricing/rules - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	var categorySlug, city *string
	if v := query.Get("category"); v != "" {
		categorySlug = ptr.Ptr(v)
	}
	if v := query.Get("city"); v != "" {
		city = ptr.Ptr(v)
	}

	if categorySlug != nil || city != nil {
		result, err := h.service.Resolve(r.Context(), categorySlug, city)
		if err != nil {
			h.logger.Error("GET /pricing/rules - Failed to resolve rules: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /pricing/rules - Rules resolved successfully: user=%d", userID)
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /pricing/rules - Failed to list rules: user=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pricing/rules - Rules listed successfully: user=%d, count=%d",
		userID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
