package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-proxy/internal/application"
)

const (
	MsgMethodNotAllowed = "Method not allowed"
	MsgRequestTimeout   = "Request timeout"
)

// ErrorResponse is the failure envelope every endpoint returns.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Status  string          `json:"status,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// BuildErrorResponse maps an error to its status code and envelope. Errors that
// are not ServiceErrors never expose their text.
func BuildErrorResponse(err error) (int, ErrorResponse) {
	statusCode := application.ToHTTPStatus(err)

	svcErr, ok := application.IsServiceError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return statusCode, ErrorResponse{Error: MsgRequestTimeout}
		}
		return statusCode, ErrorResponse{Error: application.MsgInternal}
	}

	resp := ErrorResponse{
		Error:  svcErr.Message,
		Status: string(svcErr.OrderStatus),
	}
	if len(svcErr.Details) > 0 && json.Valid(svcErr.Details) {
		resp.Details = svcErr.Details
	}

	return statusCode, resp
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)

	var svcErr *application.ServiceError
	if !errors.As(err, &svcErr) {
		logger.Error("unmapped error reached the boundary", "status", statusCode, "error", err)
	}

	WriteJSON(w, statusCode, response, logger)
}
