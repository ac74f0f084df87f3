package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/helisync/pkg/analytics"
	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	apphttp "github.com/chainsafe/helisync/pkg/app/http"
	"github.com/chainsafe/helisync/pkg/auth"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the analytics endpoints
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/summary", apphttp.HandleError(h.summary))
		r.Get("/historical-data", apphttp.HandleError(h.historical))
	})
}

func (h *HTTP) summary(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	summary, err := h.service.Summary(r.Context(), u.ID)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, summary)
}

func (h *HTTP) historical(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	q, err := analytics.ParseHistoricalQuery(r.URL.Query())
	if err != nil {
		return err
	}

	points, err := h.service.Historical(r.Context(), u.ID, q.Metric, q.Timeframe)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, points)
}
