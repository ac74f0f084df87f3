package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode_ByCategory(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", BadRequestError(nil, "bad"), http.StatusBadRequest},
		{"auth", UnAuthorizedError(nil, "no token"), http.StatusUnauthorized},
		{"not found", ResourceNotFoundError(nil, "missing"), http.StatusNotFound},
		{"conflict", ConflictError(nil, "taken"), http.StatusConflict},
		{"payload too large", PayloadTooLargeError(nil, "too big"), http.StatusRequestEntityTooLarge},
		{"rate limit", TooManyRequestsError("slow down"), http.StatusTooManyRequests},
		{"external service", ExternalServiceError(nil, "provider failed"), http.StatusInternalServerError},
		{"internal", GeneralError(nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var svcErr *ServiceError
			if !errors.As(tc.err, &svcErr) {
				t.Fatalf("expected *ServiceError, got %T", tc.err)
			}
			if got := svcErr.StatusCode(); got != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, got)
			}
		})
	}
}

func TestIs_MatchesWrappedCategory(t *testing.T) {
	base := ResourceNotFoundError(nil, "preferences not found")
	wrapped := fmt.Errorf("ingest: %w", base)

	if !Is(wrapped, CategoryResourceNotFound) {
		t.Fatalf("expected wrapped error to match CategoryResourceNotFound")
	}
	if Is(wrapped, CategoryDataError) {
		t.Fatalf("did not expect CategoryDataError match")
	}
	if Is(errors.New("plain"), CategoryResourceNotFound) {
		t.Fatalf("plain errors must not match any category")
	}
}

func TestIsInternalError(t *testing.T) {
	if IsInternalError(BadRequestError(nil, "bad")) {
		t.Fatalf("validation errors are not internal")
	}
	if !IsInternalError(ExternalServiceError(nil, "provider")) {
		t.Fatalf("provider failures are internal")
	}
	if !IsInternalError(errors.New("boom")) {
		t.Fatalf("unknown errors are internal")
	}
}

func TestServiceError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := ExternalServiceError(cause, "Failed to register webhook")

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
	if err.Error() != cause.Error() {
		t.Fatalf("expected Error() to report cause, got %q", err.Error())
	}
}
