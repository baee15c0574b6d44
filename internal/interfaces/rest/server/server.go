// Package server assembles the HTTP routes and middleware chain.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-proxy/internal/api"
	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest"
	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/checkout-proxy/internal/observability"
	"github.com/getkin/kin-openapi/openapi3"
)

const (
	pathCreateOrder  = "/api/create-order"
	pathCaptureOrder = "/api/capture-order"
	pathGetOrder     = "/api/orders/{orderID}"
)

type Options struct {
	Handlers       *handlers.Handlers
	Spec           *openapi3.T
	Metrics        *observability.Metrics
	Logger         *slog.Logger
	RequestTimeout time.Duration
	// StaticDir, when set, serves the checkout page and its assets at /.
	StaticDir string
}

// NewHandler builds the routed handler wrapped in
// Recovery, RequestLogger, Metrics, CORS and Timeout, outermost first.
func NewHandler(opts Options) http.Handler {
	h := opts.Handlers
	logger := opts.Logger
	validator := api.NewRequestValidator(opts.Spec)

	validated := func(path string, fn http.HandlerFunc) http.Handler {
		return middleware.ValidateRequest(validator, path, logger)(fn)
	}

	mux := http.NewServeMux()

	mux.Handle("POST "+pathCreateOrder, validated(pathCreateOrder, h.CreateOrder))
	mux.HandleFunc("OPTIONS "+pathCreateOrder, handlers.Preflight)
	mux.HandleFunc(pathCreateOrder, h.MethodNotAllowed)

	mux.Handle("POST "+pathCaptureOrder, validated(pathCaptureOrder, h.CaptureOrder))
	mux.HandleFunc("OPTIONS "+pathCaptureOrder, handlers.Preflight)
	mux.HandleFunc(pathCaptureOrder, h.MethodNotAllowed)

	mux.Handle("GET "+pathGetOrder, validated(pathGetOrder, h.GetOrder))
	mux.HandleFunc(pathGetOrder, h.MethodNotAllowed)

	mux.HandleFunc("GET /healthz", h.Health)
	mux.Handle("GET /metrics", opts.Metrics.Handler())
	mux.HandleFunc("GET /docs/openapi.json", specHandler(opts.Spec, logger))

	mux.Handle("/", fallback(opts.StaticDir, h, logger))

	var handler http.Handler = mux
	handler = middleware.Timeout(opts.RequestTimeout)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Metrics(opts.Metrics, middleware.MuxRoute(mux))(handler)
	handler = middleware.RequestLogger(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}

func specHandler(spec *openapi3.T, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		body, err := json.Marshal(spec)
		if err != nil {
			rest.WriteError(w, err, logger)
			return
		}
		rest.WriteRaw(w, http.StatusOK, body, logger)
	}
}

// fallback serves static files for GET and HEAD when a directory is
// configured, and a JSON 404 otherwise.
func fallback(staticDir string, h *handlers.Handlers, logger *slog.Logger) http.Handler {
	var files http.Handler
	if staticDir != "" {
		files = http.FileServer(http.Dir(staticDir))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if files == nil {
			rest.WriteJSON(w, http.StatusNotFound, rest.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, logger)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			h.MethodNotAllowed(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
