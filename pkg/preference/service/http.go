package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	apphttp "github.com/chainsafe/helisync/pkg/app/http"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/preference"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the preference endpoints
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/indexing/preferences", apphttp.HandleError(h.get))
	r.Post("/indexing/preferences", apphttp.HandleError(h.save))
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	p, err := h.service.Get(r.Context(), u.ID)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, p)
}

func (h *HTTP) save(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	var patch preference.Patch
	if err := apphttp.DecodeJSON(r, &patch); err != nil {
		return apperrors.BadRequestError(err, "Invalid preferences data")
	}

	p, created, err := h.service.Save(r.Context(), u.ID, &patch)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return apphttp.WriteJSON(w, status, p)
}
