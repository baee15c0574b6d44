package middleware

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-proxy/internal/api"
	"github.com/DanielPopoola/checkout-proxy/internal/application"
	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest"
)

// ValidateRequest rejects requests that do not match the documented
// operation at path before the handler runs. The body is capped at
// rest.MaxRequestBody before the validator reads it.
func ValidateRequest(v *api.RequestValidator, path string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, rest.MaxRequestBody)
			}

			if err := v.Validate(r, path); err != nil {
				logger.WarnContext(r.Context(), "request failed contract validation",
					"method", r.Method,
					"path", path,
					"error", err,
				)
				rest.WriteError(w, application.NewValidationError(err), logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
