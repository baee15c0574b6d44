package handlers

import (
	"net/http"
	"net/url"

	"github.com/DanielPopoola/checkout-proxy/internal/application"
	"github.com/DanielPopoola/checkout-proxy/internal/application/services"
	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	var orderID string

	// PathValue is already unescaped and the binder unescapes again.
	raw := url.PathEscape(r.PathValue("orderID"))
	err := runtime.BindStyledParameterWithOptions("simple", "orderID", raw, &orderID, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		rest.WriteError(w, application.NewValidationError(err), h.logger)
		return
	}

	result, err := h.queryService.GetOrder(r.Context(), services.GetOrderCommand{OrderID: orderID})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteRaw(w, result.StatusCode, result.Body, h.logger)
}
