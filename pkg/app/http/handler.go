// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
// This allows using clean error-returning handlers with any router (chi, http.ServeMux, etc.)
//
// Usage with chi:
//
//	r.Post("/credentials", http.HandleError(handler.saveCredentials))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DefaultErrorHandler handles errors returned from HTTP handlers
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError

	if errors.As(err, &svcErr) {
		_ = WriteJSON(w, svcErr.StatusCode(), &ErrorResponse{
			Message: svcErr.Message,
			Code:    svcErr.StatusCode(),
		})
		return
	}

	// Handle unknown errors
	_ = WriteJSON(w, http.StatusInternalServerError, &ErrorResponse{
		Message: "Unexpected Service Error",
		Code:    http.StatusInternalServerError,
	})
}

// WriteJSON writes v as a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// DecodeJSON decodes the request body into v, reporting malformed input as a bad request.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperrors.PayloadTooLargeError(err, "Request body too large")
		}
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}
