package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	apphttp "github.com/chainsafe/helisync/pkg/app/http"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/webhook"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// maxIngestBodyBytes caps a single provider delivery.
const maxIngestBodyBytes = 5 << 20

type ingestResponse struct {
	Success bool `json:"success"`
}

// RegisterIngestRoutes registers the public provider delivery endpoint.
func RegisterIngestRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.With(middleware.RequestSize(maxIngestBodyBytes)).
		Post("/webhook/{userId}", apphttp.HandleError(h.ingest))
}

// RegisterRoutes registers the authenticated webhook management endpoints.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/webhook", func(r chi.Router) {
		r.Post("/register", apphttp.HandleError(h.register))
		r.Get("/logs", apphttp.HandleError(h.logs))
		r.Delete("/{webhookId}", apphttp.HandleError(h.unregister))
	})
}

func (h *HTTP) ingest(w http.ResponseWriter, r *http.Request) error {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil || userID <= 0 {
		return apperrors.BadRequestError(err, "Invalid user ID")
	}

	var payload webhook.Payload
	if err := apphttp.DecodeJSON(r, &payload); err != nil {
		return err
	}

	res, err := h.service.Ingest(r.Context(), userID, &payload)
	if err != nil {
		if !apperrors.IsInternalError(err) {
			return err
		}
		h.logger.Error("webhook processing failed", zap.Int64("user_id", userID), zap.Error(err))
		return &apperrors.ServiceError{
			Category: apperrors.CategoryGeneralError,
			Message:  "Failed to process webhook",
			Err:      err,
		}
	}

	h.logger.Debug("webhook processed",
		zap.Int64("user_id", userID),
		zap.Int("event_count", res.EventCount),
	)
	return apphttp.WriteJSON(w, http.StatusOK, &ingestResponse{Success: true})
}

func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	var req webhook.RegisterRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	created, err := h.service.Register(r.Context(), u.ID, &req)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusCreated, created)
}

func (h *HTTP) unregister(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Unregister(r.Context(), chi.URLParam(r, "webhookId"))
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, resp)
}

func (h *HTTP) logs(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return apperrors.BadRequestError(err, "Invalid limit")
		}
		limit = n
	}

	entries, err := h.service.Logs(r.Context(), u.ID, limit)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, entries)
}
