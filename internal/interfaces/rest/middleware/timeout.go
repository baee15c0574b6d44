package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest"
)

var timeoutBody = func() string {
	body, _ := json.Marshal(rest.ErrorResponse{Error: rest.MsgRequestTimeout})
	return string(body)
}()

// Timeout bounds the whole request, including every processor call made on
// its behalf. Expired requests get 503 with the JSON error envelope.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		timeoutHandler := http.TimeoutHandler(next, timeout, timeoutBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			timeoutHandler.ServeHTTP(jsonTimeoutWriter{w}, r)
		})
	}
}

// jsonTimeoutWriter labels the timeout body, which http.TimeoutHandler writes
// without a Content-Type.
type jsonTimeoutWriter struct {
	http.ResponseWriter
}

func (w jsonTimeoutWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(code)
}
