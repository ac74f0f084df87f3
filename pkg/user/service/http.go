package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	apphttp "github.com/chainsafe/helisync/pkg/app/http"
	"github.com/chainsafe/helisync/pkg/auth"
	"github.com/chainsafe/helisync/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterAuthRoutes registers the unauthenticated account endpoints under /auth.
// limit guards signup and login; pass nil to disable it.
func RegisterAuthRoutes(r chi.Router, service Service, limit func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if limit != nil {
				r.Use(limit)
			}
			r.Post("/signup", apphttp.HandleError(h.signup))
			r.Post("/login", apphttp.HandleError(h.login))
		})
		r.Post("/logout", apphttp.HandleError(h.logout))
		r.Post("/register", apphttp.HandleError(h.registerExternal))
	})
}

// RegisterRoutes registers the authenticated user endpoints. The router must
// already carry auth.RequireAuth and RequireUser.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/user/profile", apphttp.HandleError(h.profile))
}

func (h *HTTP) signup(w http.ResponseWriter, r *http.Request) error {
	var req user.SignupRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusCreated, resp)
}

func (h *HTTP) login(w http.ResponseWriter, r *http.Request) error {
	var req user.LoginRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, resp)
}

// logout is stateless; clients drop their token.
func (h *HTTP) logout(w http.ResponseWriter, _ *http.Request) error {
	return apphttp.WriteJSON(w, http.StatusOK, &logoutResponse{Success: true, Message: "Logged out successfully"})
}

func (h *HTTP) registerExternal(w http.ResponseWriter, r *http.Request) error {
	var req user.ExternalRegisterRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	u, created, err := h.service.RegisterExternal(r.Context(), &req)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return apphttp.WriteJSON(w, status, u)
}

func (h *HTTP) profile(w http.ResponseWriter, r *http.Request) error {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		return apperrors.ResourceNotFoundError(nil, "User not found")
	}

	profile, err := h.service.Profile(r.Context(), u)
	if err != nil {
		return err
	}
	return apphttp.WriteJSON(w, http.StatusOK, profile)
}
