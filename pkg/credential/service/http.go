package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	apphttp "github.com/chainsafe/helisync/pkg/app/http"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/credential"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the credential endpoints. The router must already
// resolve the calling user.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/database", func(r chi.Router) {
		r.Get("/credentials", apphttp.HandleError(h.get))
		r.Post("/credentials", apphttp.HandleError(h.save))
		r.Post("/validate", apphttp.HandleError(h.validate))
	})
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	c, err := h.service.Get(r.Context(), u.ID)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, c)
}

func (h *HTTP) save(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	var req credential.SaveRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	c, created, err := h.service.Save(r.Context(), u.ID, &req)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return apphttp.WriteJSON(w, status, c)
}

func (h *HTTP) validate(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	resp, err := h.service.Validate(r.Context(), u.ID)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, resp)
}
