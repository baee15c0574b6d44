package domain

import "errors"

var (
	ErrMissingOrderID     = errors.New("orderID is required")
	ErrInvalidAmount      = errors.New("amount must be a positive decimal")
	ErrInvalidCurrency    = errors.New("currency must be a three letter ISO code")
	ErrMissingOrderStatus = errors.New("order response has no status")
	ErrInvalidTransition  = errors.New("invalid capture state transition")
)
