package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-proxy/internal/application"
)

// QueryService relays order lookups so the checkout page can poll status.
type QueryService struct {
	tokens  application.TokenProvider
	gateway application.OrderGateway
	logger  *slog.Logger
}

func NewQueryService(
	tokens application.TokenProvider,
	gateway application.OrderGateway,
	logger *slog.Logger,
) *QueryService {
	return &QueryService{
		tokens:  tokens,
		gateway: gateway,
		logger:  logger,
	}
}

func (s *QueryService) GetOrder(ctx context.Context, cmd GetOrderCommand) (*OrderResult, error) {
	cmd.OrderID = trimCommandID(cmd.OrderID)

	orderID, err := parseOrderID(cmd, cmd.OrderID)
	if err != nil {
		s.logger.WarnContext(ctx, "order lookup rejected: invalid input", "event", "get_order", "error", err)
		return nil, application.NewValidationError(err)
	}

	logger := s.logger.With("event", "get_order", "order_id", orderID)

	token, err := acquireToken(ctx, s.tokens, logger, "get_order")
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.GetOrder(ctx, token, orderID)
	if err != nil {
		invalidateOnUnauthorized(s.tokens, err)
		svcErr := application.NewUpstreamError(application.MsgFetchFailed, err)
		logger.ErrorContext(ctx, "order lookup failed", "status", svcErr.HTTPStatus, "error", err)
		return nil, svcErr
	}

	return &OrderResult{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}
