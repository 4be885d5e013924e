// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/mzaikin/wakecall/internal/middleware"
	"github.com/mzaikin/wakecall/internal/models"
	"github.com/mzaikin/wakecall/internal/refresher"
	"github.com/mzaikin/wakecall/internal/repository"
	"github.com/mzaikin/wakecall/internal/service"
)

const (
	errorCodeValidation              = "VALIDATION_FAILED"
	errorCodeInvalidBody             = "INVALID_REQUEST_BODY"
	errorCodeCallNotFound            = "CALL_NOT_FOUND"
	errorCodeStoreNotProvisioned     = "STORE_NOT_PROVISIONED"
	errorCodeStoreUnavailable        = "STORE_UNAVAILABLE"
	errorCodeRefresherAlreadyRunning = "REFRESHER_ALREADY_RUNNING"
	errorCodeRefresherNotRunning     = "REFRESHER_NOT_RUNNING"
)

const (
	errorMessageValidation          = "The scheduling form has invalid fields"
	errorMessageInvalidBody         = "Request body could not be parsed"
	errorMessageCallNotFound        = "No cancellable wake-up call with this id"
	errorMessageStoreNotProvisioned = "The wake-up call table has not been provisioned yet"
	errorMessageStoreUnavailable    = "The wake-up call store is unavailable"
	errorMessageFailedToLoadCalls   = "Failed to retrieve wake-up calls"
	errorMessageFailedToCancel      = "Failed to cancel the wake-up call"
	errorMessageFailedToLoadStats   = "Failed to retrieve call statistics"
	errorMessageFailedToLoadDraft   = "Failed to load the saved form draft"
	errorMessageFailedToSaveDraft   = "Failed to save the form draft"
	errorMessageFailedToClearDraft  = "Failed to clear the form draft"
	errorMessageRefresherRunning    = "Stats refresher is already running"
	errorMessageRefresherNotRunning = "Stats refresher is not running"
	errorMessageRefresherStart      = "Failed to start the stats refresher"
	errorMessageRefresherStop       = "Failed to stop the stats refresher"
)

const (
	refresherMessageStarted = "Stats refresher started successfully"
	refresherMessageStopped = "Stats refresher stopped successfully"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SubmitCall runs the dual-write submission and maps the reconciled
// outcome onto a status code. Every outcome kind reaches the client in
// the body: a 5xx reply still says which channel failed.
func (h *Handler) SubmitCall(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.sendError(w, r, http.StatusUnauthorized, middleware.ErrorCodeUnauthorized, middleware.ErrorMessageUnauthorized, nil)
		return
	}

	var req models.ScheduleRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, errorMessageInvalidBody, nil)
		return
	}

	outcome, err := h.service.Schedule.Submit(r.Context(), identity, &req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeValidation, errorMessageValidation, validationErr.Fields)
			return
		}

		h.logger.Error("Submission failed before any write",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal, nil)
		return
	}

	switch outcome.Kind {
	case service.OutcomeBothOK:
		render.Status(r, http.StatusCreated)
	case service.OutcomeWebhookFailedOnly:
		render.Status(r, http.StatusBadGateway)
	default:
		render.Status(r, http.StatusInternalServerError)
	}

	render.JSON(w, r, SubmitResponse{
		Outcome: outcome.Kind,
		Message: outcome.Message,
		CallID:  outcome.CallID,
	})
}

// ListCalls returns the user's wake calls, newest first.
func (h *Handler) ListCalls(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.sendError(w, r, http.StatusUnauthorized, middleware.ErrorCodeUnauthorized, middleware.ErrorMessageUnauthorized, nil)
		return
	}

	calls, err := h.service.Schedule.ListCalls(identity)
	if err != nil {
		h.sendStoreError(w, r, err, errorMessageFailedToLoadCalls)
		return
	}

	render.JSON(w, r, ListCallsResponse{
		Calls: calls,
		Total: len(calls),
	})
}

// CancelCall deletes a still-scheduled future call owned by the caller.
func (h *Handler) CancelCall(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.sendError(w, r, http.StatusUnauthorized, middleware.ErrorCodeUnauthorized, middleware.ErrorMessageUnauthorized, nil)
		return
	}

	callID := chi.URLParam(r, "id")
	if err := h.service.Schedule.Cancel(identity, callID); err != nil {
		if repository.KindOf(err) == repository.KindNotFound {
			h.sendError(w, r, http.StatusNotFound, errorCodeCallNotFound, errorMessageCallNotFound, nil)
			return
		}
		h.sendStoreError(w, r, err, errorMessageFailedToCancel)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStats serves the caller's dashboard aggregate snapshot.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.sendError(w, r, http.StatusUnauthorized, middleware.ErrorCodeUnauthorized, middleware.ErrorMessageUnauthorized, nil)
		return
	}

	stats, err := h.service.Stats.GetStats(r.Context(), identity.ID)
	if err != nil {
		h.sendStoreError(w, r, err, errorMessageFailedToLoadStats)
		return
	}

	render.JSON(w, r, stats)
}

// GetDraft returns the caller's saved form draft, empty when none exists.
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.sendError(w, r, http.StatusUnauthorized, middleware.ErrorCodeUnauthorized, middleware.ErrorMessageUnauthorized, nil)
		return
	}

	draft, err := h.service.Drafts.Load(r.Context(), identity.ID)
	if err != nil {
		h.logger.Error("Failed to load draft",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToLoadDraft, nil)
		return
	}

	render.JSON(w, r, draft)
}

// SaveDraft merges the submitted fields onto the stored draft and returns
// the merged result.
func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.sendError(w, r, http.StatusUnauthorized, middleware.ErrorCodeUnauthorized, middleware.ErrorMessageUnauthorized, nil)
		return
	}

	var patch models.DraftPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, errorMessageInvalidBody, nil)
		return
	}

	draft, err := h.service.Drafts.Save(r.Context(), identity.ID, &patch)
	if err != nil {
		h.logger.Error("Failed to save draft",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToSaveDraft, nil)
		return
	}

	render.JSON(w, r, draft)
}

// DeleteDraft discards the caller's draft entirely.
func (h *Handler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.sendError(w, r, http.StatusUnauthorized, middleware.ErrorCodeUnauthorized, middleware.ErrorMessageUnauthorized, nil)
		return
	}

	if err := h.service.Drafts.Clear(r.Context(), identity.ID); err != nil {
		h.logger.Error("Failed to clear draft",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToClearDraft, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StartRefresher starts the periodic stats snapshot task.
func (h *Handler) StartRefresher(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresher.Start(); err != nil {
		if errors.Is(err, refresher.ErrRefresherAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeRefresherAlreadyRunning, errorMessageRefresherRunning, nil)
			return
		}

		h.logger.Error("Failed to start refresher",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageRefresherStart, nil)
		return
	}

	render.JSON(w, r, RefresherResponse{
		Status:  RefresherStatusStarted,
		Message: refresherMessageStarted,
	})
}

// StopRefresher stops the periodic stats snapshot task.
func (h *Handler) StopRefresher(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresher.Stop(); err != nil {
		if errors.Is(err, refresher.ErrRefresherNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeRefresherNotRunning, errorMessageRefresherNotRunning, nil)
			return
		}

		h.logger.Error("Failed to stop refresher",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageRefresherStop, nil)
		return
	}

	render.JSON(w, r, RefresherResponse{
		Status:  RefresherStatusStopped,
		Message: refresherMessageStopped,
	})
}

// HealthCheck reports component states. Unhealthy answers 503, degraded
// stays 200 so monitors can see an open breaker without taking the
// service out of rotation.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := HealthResponse{
		Status:               health.Status,
		RefresherStatus:      health.RefresherStatus,
		DatabaseStatus:       health.DatabaseStatus,
		RedisStatus:          health.RedisStatus,
		CircuitBreakerStatus: health.CircuitBreakerStatus,
		CircuitBreakerState:  health.CircuitBreakerState,
		Timestamp:            time.Now(),
	}

	if health.Status == service.HealthStateUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// sendStoreError maps tagged repository failures onto status codes. A
// missing relation is a provisioning state and reported as such instead
// of a generic 500.
func (h *Handler) sendStoreError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	requestID := middleware.GetRequestID(r.Context())

	switch repository.KindOf(err) {
	case repository.KindRelationMissing:
		h.logger.Warn("Store schema not provisioned",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusServiceUnavailable, errorCodeStoreNotProvisioned, errorMessageStoreNotProvisioned, nil)
	case repository.KindUnavailable:
		h.logger.Error("Store unavailable",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusServiceUnavailable, errorCodeStoreUnavailable, errorMessageStoreUnavailable, nil)
	default:
		h.logger.Error("Store operation failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, fallbackMessage, nil)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string, details map[string]string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	})
}
