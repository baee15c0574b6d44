package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-proxy/internal/application/services"
	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest"
)

type Handlers struct {
	createService  *services.CreateOrderService
	captureService *services.CaptureOrderService
	queryService   *services.QueryService
	logger         *slog.Logger
}

func NewHandlers(
	createService *services.CreateOrderService,
	captureService *services.CaptureOrderService,
	queryService *services.QueryService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		createService:  createService,
		captureService: captureService,
		queryService:   queryService,
		logger:         logger,
	}
}

// Preflight answers CORS preflight requests. The headers themselves are set
// by the CORS middleware.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// MethodNotAllowed answers any method a route does not serve without reading
// the request body.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	rest.WriteJSON(w, http.StatusMethodNotAllowed, rest.ErrorResponse{Error: rest.MsgMethodNotAllowed}, h.logger)
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
