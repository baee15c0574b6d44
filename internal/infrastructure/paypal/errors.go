package paypal

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedResponse = errors.New("malformed processor response")

// APIError is a non-2xx reply from the processor. Body holds the processor's
// JSON exactly as received (or a JSON string when the body was not JSON).
type APIError struct {
	Operation  string
	StatusCode int
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal %s returned status %d", e.Operation, e.StatusCode)
}

func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func newAPIError(operation string, status int, body []byte) *APIError {
	return &APIError{
		Operation:  operation,
		StatusCode: status,
		Body:       asJSON(body),
	}
}

func asJSON(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
