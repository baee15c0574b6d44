// Package domain defines the order model the proxy reads from the payment processor.
package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// OrderStatus is the processor's lifecycle status for a checkout order.
type OrderStatus string

const (
	OrderStatusCreated             OrderStatus = "CREATED"
	OrderStatusSaved               OrderStatus = "SAVED"
	OrderStatusApproved            OrderStatus = "APPROVED"
	OrderStatusVoided              OrderStatus = "VOIDED"
	OrderStatusCompleted           OrderStatus = "COMPLETED"
	OrderStatusPayerActionRequired OrderStatus = "PAYER_ACTION_REQUIRED"
)

// Order is a read-only snapshot of the processor's order. The processor owns the
// canonical state; Raw is the body exactly as it was received.
type Order struct {
	ID     OrderID
	Status OrderStatus
	Raw    json.RawMessage
}

// ParseOrder extracts the id and status from a processor order body.
func ParseOrder(raw json.RawMessage) (*Order, error) {
	var body struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decoding order: %w", err)
	}
	if body.Status == "" {
		return nil, ErrMissingOrderStatus
	}

	return &Order{
		ID:     OrderID(body.ID),
		Status: OrderStatus(body.Status),
		Raw:    raw,
	}, nil
}

// IsCapturable reports whether the buyer has approved the order. This is the
// only state guard in front of a capture call.
func (o *Order) IsCapturable() bool {
	return o.Status == OrderStatusApproved
}

// captureKeyNamespace scopes capture idempotency keys so they cannot collide
// with keys derived for any other purpose.
var captureKeyNamespace = uuid.MustParse("0b3f6a52-7c1e-4f0a-9d8e-5a4c2b1e7f60")

// CaptureRequest is the value sent with a capture call.
type CaptureRequest struct {
	OrderID        OrderID
	IdempotencyKey string
}

// NewCaptureRequest derives the idempotency key from the order id alone, so
// every capture attempt for the same order carries the same key and the
// processor can collapse duplicates into one charge.
func NewCaptureRequest(orderID OrderID) CaptureRequest {
	return CaptureRequest{
		OrderID:        orderID,
		IdempotencyKey: CaptureIdempotencyKey(orderID),
	}
}

func CaptureIdempotencyKey(orderID OrderID) string {
	return uuid.NewSHA1(captureKeyNamespace, []byte(orderID)).String()
}
