package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/checkout-proxy/internal/application"
	"github.com/DanielPopoola/checkout-proxy/internal/application/services"
	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest"
)

var errInvalidBody = errors.New("request body must be a JSON object")

type captureOrderRequest struct {
	OrderID string `json:"orderID"`
}

func (h *Handlers) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	var req captureOrderRequest

	body := http.MaxBytesReader(w, r.Body, rest.MaxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		rest.WriteError(w, application.NewValidationError(fmt.Errorf("%w: %v", errInvalidBody, err)), h.logger)
		return
	}

	cmd := services.CaptureOrderCommand{
		OrderID: req.OrderID,
	}

	result, err := h.captureService.Capture(r.Context(), cmd)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteRaw(w, result.StatusCode, result.Body, h.logger)
}
