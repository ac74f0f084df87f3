package auth

import (
	"net/http"
	"strings"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	apphttp "github.com/chainsafe/helisync/pkg/app/http"
)

const bearerPrefix = "Bearer "

// RequireAuth rejects requests without a valid bearer token and stores the
// verified principal in the request context.
func RequireAuth(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "Unauthorized: No token provided"))
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			// browsers serialise a missing token as these literals
			if token == "" || token == "null" || token == "undefined" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "Unauthorized: Invalid token format"))
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "Unauthorized: Invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}
