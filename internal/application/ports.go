package application

import (
	"context"

	"github.com/DanielPopoola/checkout-proxy/internal/domain"
	"github.com/DanielPopoola/checkout-proxy/internal/infrastructure/paypal"
)

// TokenProvider is the port for the processor's client-credentials exchange.
type TokenProvider interface {
	GetAccessToken(ctx context.Context) (*domain.AccessToken, error)
}

// TokenInvalidator is implemented by token providers that hold tokens across
// requests. Services call it when the processor rejects a token.
type TokenInvalidator interface {
	Invalidate()
}

// OrderGateway is the port for the processor's checkout orders API.
type OrderGateway interface {
	CreateOrder(ctx context.Context, accessToken string, req paypal.CreateOrderRequest) (*paypal.Response, error)
	GetOrder(ctx context.Context, accessToken string, orderID domain.OrderID) (*paypal.Response, error)
	CaptureOrder(ctx context.Context, accessToken string, req domain.CaptureRequest) (*paypal.Response, error)
}

// OutcomeRecorder counts terminal capture states.
type OutcomeRecorder interface {
	ObserveCaptureOutcome(state string)
}
