package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/checkout-proxy/internal/infrastructure/paypal"
)

// ErrorCategory represents the nature of an error for logging and client hints
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category. Nothing in the proxy retries;
// the category is logged and tells the caller whether trying again can help.
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Kind {
		case KindValidation:
			return CategoryClientError
		case KindPrecondition:
			return CategoryBusinessRule
		case KindInternal:
			return CategoryInfrastructure
		}
	}

	if apiErr, ok := paypal.IsAPIError(err); ok {
		switch {
		case apiErr.IsRetryable():
			return CategoryTransient
		case apiErr.StatusCode == http.StatusNotFound:
			return CategoryClientError
		default:
			return CategoryPermanent
		}
	}

	if errors.Is(err, paypal.ErrMalformedResponse) {
		return CategoryPermanent
	}

	// Transport failures: no processor reply was seen.
	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}

	if apiErr, ok := paypal.IsAPIError(err); ok {
		return apiErr.StatusCode
	}

	return http.StatusInternalServerError
}
