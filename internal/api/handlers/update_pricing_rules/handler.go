package update_pricing_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/urbanseva/booking-service/internal/api/handlers"
	"github.com/urbanseva/booking-service/internal/api/middleware"
	rulesService "github.com/urbanseva/booking-service/internal/service/rules"
	"github.com/urbanseva/booking-service/internal/service/rules/models"
)

const (
	msgMissingUserID = "missing user ID"
	msgInvalidRuleID = "invalid rule ID"
	msgInvalidBody   = "invalid request body"
	msgInvalidRule   = "invalid rule values"
	msgRulesNotFound = "rule set not found"
)

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

// HandleCreate POST /api/v1/pricing/rules
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /pricing/rules - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpsertRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rulesService.ErrInvalidRule), errors.Is(err, rulesService.ErrInvalidInput):
			h.logger.Warn("POST /pricing/rules - Invalid rule values: user=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("POST /pricing/rules - Failed to create rules: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing/rules - Rules created successfully: id=%d, user=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/pricing/rules/{ruleId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /pricing/rules/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	ruleID, err := strconv.ParseInt(mux.Vars(r)["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /pricing/rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req models.UpsertRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pricing/rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rulesService.ErrRulesNotFound):
			h.logger.Warn("PUT /pricing/rules/{id} - Rules not found: id=%d", ruleID)
			handlers.RespondNotFound(w, msgRulesNotFound)

		case errors.Is(err, rulesService.ErrInvalidRule), errors.Is(err, rulesService.ErrInvalidInput):
			h.logger.Warn("PUT /pricing/rules/{id} - Invalid rule values: id=%d, error=%v", ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PUT /pricing/rules/{id} - Failed to update rules: id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /pricing/rules/{id} - Rules updated successfully: id=%d, user=%d", ruleID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/pricing/rules/{ruleId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /pricing/rules/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	ruleID, err := strconv.ParseInt(mux.Vars(r)["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /pricing/rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.Delete(r.Context(), ruleID); err != nil {
		switch {
		case errors.Is(err, rulesService.ErrRulesNotFound):
			h.logger.Warn("DELETE /pricing/rules/{id} - Rules not found: id=%d", ruleID)
			handlers.RespondNotFound(w, msgRulesNotFound)

		default:
			h.logger.Error("DELETE /pricing/rules/{id} - Failed to delete rules: id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /pricing/rules/{id} - Rules deleted successfully: id=%d, user=%d", ruleID, userID)
	w.WriteHeader(http.StatusNoContent)
}
