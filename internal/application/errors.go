package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/checkout-proxy/internal/domain"
	"github.com/DanielPopoola/checkout-proxy/internal/infrastructure/paypal"
)

// ErrorKind classifies how a request failed. Each kind maps to one response
// shape at the HTTP boundary.
type ErrorKind string

const (
	KindValidation        ErrorKind = "VALIDATION_ERROR"
	KindAuth              ErrorKind = "AUTH_ERROR"
	KindPrecondition      ErrorKind = "PRECONDITION_ERROR"
	KindStatusUnavailable ErrorKind = "STATUS_UNAVAILABLE"
	KindUpstream          ErrorKind = "UPSTREAM_ERROR"
	KindCapture           ErrorKind = "CAPTURE_ERROR"
	KindInternal          ErrorKind = "INTERNAL_ERROR"
)

const (
	MsgAccessTokenFailed = "Failed to get access token"
	MsgOrderNotApproved  = "Order not approved"
	MsgOrderStatusFailed = "Failed to fetch order status"
	MsgCreateFailed      = "Failed to create order"
	MsgCaptureFailed     = "Failed to capture order"
	MsgFetchFailed       = "Failed to fetch order"
	MsgInternal          = "An internal error occurred"
)

type ServiceError struct {
	Kind        ErrorKind
	Message     string
	HTTPStatus  int
	OrderStatus domain.OrderStatus
	Details     json.RawMessage
	Err         error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error) *ServiceError {
	return &ServiceError{
		Kind:       KindValidation,
		Message:    err.Error(),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewAuthError reports a failed credential exchange. The processor's body is
// not echoed; it can describe the credentials that were rejected.
func NewAuthError(err error) *ServiceError {
	return &ServiceError{
		Kind:       KindAuth,
		Message:    MsgAccessTokenFailed,
		HTTPStatus: upstreamStatus(err),
		Err:        err,
	}
}

// NewPreconditionError reports an order whose status was read successfully but
// does not allow a capture. This is an expected outcome, not a fault.
func NewPreconditionError(order *domain.Order) *ServiceError {
	return &ServiceError{
		Kind:        KindPrecondition,
		Message:     MsgOrderNotApproved,
		HTTPStatus:  http.StatusBadRequest,
		OrderStatus: order.Status,
		Details:     order.Raw,
	}
}

// NewStatusUnavailableError reports that the order status could not be
// determined at all. Unlike a precondition failure, retrying may succeed.
func NewStatusUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Kind:       KindStatusUnavailable,
		Message:    MsgOrderStatusFailed,
		HTTPStatus: upstreamStatus(err),
		Details:    upstreamBody(err),
		Err:        err,
	}
}

func NewUpstreamError(message string, err error) *ServiceError {
	return &ServiceError{
		Kind:       KindUpstream,
		Message:    message,
		HTTPStatus: upstreamStatus(err),
		Details:    upstreamBody(err),
		Err:        err,
	}
}

func NewCaptureError(err error) *ServiceError {
	return &ServiceError{
		Kind:       KindCapture,
		Message:    MsgCaptureFailed,
		HTTPStatus: upstreamStatus(err),
		Details:    upstreamBody(err),
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Kind:       KindInternal,
		Message:    MsgInternal,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// upstreamStatus relays the processor's status code. Failures with no
// processor reply (transport errors, malformed bodies) become 502.
func upstreamStatus(err error) int {
	if apiErr, ok := paypal.IsAPIError(err); ok {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

func upstreamBody(err error) json.RawMessage {
	if apiErr, ok := paypal.IsAPIError(err); ok {
		return apiErr.Body
	}
	return nil
}
