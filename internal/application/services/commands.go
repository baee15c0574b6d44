package services

import "encoding/json"

type CreateOrderCommand struct {
	UserAgent string
}

type CaptureOrderCommand struct {
	OrderID string `validate:"required"`
}

type GetOrderCommand struct {
	OrderID string `validate:"required"`
}

// OrderResult is a processor reply relayed to the caller without modification.
type OrderResult struct {
	StatusCode int
	Body       json.RawMessage
}
