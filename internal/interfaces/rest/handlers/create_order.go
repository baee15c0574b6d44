package handlers

import (
	"net/http"

	"github.com/DanielPopoola/checkout-proxy/internal/application/services"
	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest"
)

// CreateOrder starts a checkout. The request body is ignored; the purchase is
// fixed by configuration.
func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	cmd := services.CreateOrderCommand{
		UserAgent: r.UserAgent(),
	}

	result, err := h.createService.CreateOrder(r.Context(), cmd)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteRaw(w, result.StatusCode, result.Body, h.logger)
}
