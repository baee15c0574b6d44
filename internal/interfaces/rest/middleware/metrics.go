package middleware

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-proxy/internal/observability"
)

// RouteResolver returns the low-cardinality route label for a request.
type RouteResolver func(*http.Request) string

// MuxRoute labels requests with the ServeMux pattern they match.
func MuxRoute(mux *http.ServeMux) RouteResolver {
	return func(r *http.Request) string {
		if _, pattern := mux.Handler(r); pattern != "" {
			return pattern
		}
		return "unmatched"
	}
}

func Metrics(m *observability.Metrics, route RouteResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.ObserveHTTP(r.Method, route(r), rec.status, time.Since(start))
		})
	}
}
